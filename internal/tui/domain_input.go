package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DevDhruvJoshi/PrecociousInstallationSetup/internal/lampsetup"
)

type domainInputModel struct {
	state  *wizardState
	input  textinput.Model
	errMsg string
}

func newDomainInputModel(state *wizardState) *domainInputModel {
	ti := textinput.New()
	ti.Placeholder = lampsetup.DefaultDomain
	ti.CharLimit = 253
	ti.Width = 40

	return &domainInputModel{
		state: state,
		input: ti,
	}
}

func (m *domainInputModel) Init() tea.Cmd {
	if m.state.opts.Domain != "" {
		m.input.SetValue(m.state.opts.Domain)
	}
	m.input.Focus()
	return textinput.Blink
}

func (m *domainInputModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keymap.Back) {
			return m, navigate(screenWelcome)
		}
		if key.Matches(msg, keymap.Select) {
			domain, err := lampsetup.NormalizeDomain(m.input.Value())
			if err != nil {
				m.errMsg = "Invalid domain: use letters, digits, '.' and '-', not only dots"
				return m, nil
			}
			m.errMsg = ""
			m.state.opts.Domain = domain
			return m, navigate(screenModeSelect)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *domainInputModel) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Domain"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Enter the domain to serve. Leave empty for " + lampsetup.DefaultDomain + "."))
	b.WriteString("\n\n")
	b.WriteString("  " + m.input.View())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n  " + failStyle.Render(m.errMsg))
	}

	b.WriteString(hintStyle.Render("\n  enter: confirm  esc: back"))
	return b.String()
}
