package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DevDhruvJoshi/PrecociousInstallationSetup/internal/lampsetup"
)

type dnsDoneMsg struct {
	result lampsetup.DNSResult
	err    error
}

type dnsCheckModel struct {
	state   *wizardState
	spinner spinner.Model
	running bool
	cursor  int // 0=Continue, 1=Cancel
}

func newDNSCheckModel(state *wizardState) *dnsCheckModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &dnsCheckModel{state: state, spinner: sp}
}

func (m *dnsCheckModel) Init() tea.Cmd {
	m.running = true
	m.cursor = 1
	if v := m.state.answers.ContinueOnDNSMismatch; v != nil && *v {
		m.cursor = 0
	}
	return tea.Batch(m.spinner.Tick, m.check())
}

func (m *dnsCheckModel) check() tea.Cmd {
	state := m.state
	domain := state.opts.Domain
	return func() tea.Msg {
		res, err := state.deps.DNS.Check(state.ctx, domain)
		return dnsDoneMsg{result: res, err: err}
	}
}

// next is the screen after a passed (or accepted) DNS check.
func (m *dnsCheckModel) next() tea.Cmd {
	if m.state.opts.NewServer {
		m.state.opts.Packages = lampsetup.AllPackages()
		return navigate(screenComposerSelect)
	}
	return navigate(screenPackageSelect)
}

func (m *dnsCheckModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case dnsDoneMsg:
		m.running = false
		if msg.err != nil {
			return m, m.state.fail(msg.err)
		}
		m.state.dns = msg.result
		if msg.result.Match {
			return m, m.next()
		}
		return m, nil

	case tea.KeyMsg:
		if m.running {
			return m, nil
		}
		if key.Matches(msg, keymap.Back) {
			return m, navigate(screenModeSelect)
		}
		if key.Matches(msg, keymap.Left) && m.cursor > 0 {
			m.cursor--
		}
		if key.Matches(msg, keymap.Right) && m.cursor < 1 {
			m.cursor++
		}
		if key.Matches(msg, keymap.Select) {
			if m.cursor == 0 {
				return m, m.next()
			}
			return m, m.state.fail(fmt.Errorf("%w: %s does not point to this server",
				lampsetup.ErrAborted, m.state.opts.Domain))
		}
	}
	return m, nil
}

func (m *dnsCheckModel) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("DNS Check"))
	b.WriteString("\n\n")

	if m.running {
		b.WriteString(fmt.Sprintf("  %s Resolving %s...\n", m.spinner.View(), m.state.opts.Domain))
		return b.String()
	}

	res := m.state.dns
	b.WriteString(fmt.Sprintf("  %-12s %s\n", dimStyle.Render("Domain:"), plainStyle.Render(res.Domain)))
	b.WriteString(fmt.Sprintf("  %-12s %s\n", dimStyle.Render("Server IP:"), plainStyle.Render(lampsetup.DisplayIP(res.ServerIP))))
	b.WriteString(fmt.Sprintf("  %-12s %s\n", dimStyle.Render("Resolves to:"), plainStyle.Render(lampsetup.DisplayIP(res.ResolvedIP))))
	b.WriteString("\n")
	b.WriteString(warnStyle.Render(fmt.Sprintf("  WARNING: %s does not point to this server. Continue anyway?", res.Domain)))
	b.WriteString("\n\n")
	b.WriteString(renderButtons([]string{"Continue", "Cancel"}, m.cursor))
	b.WriteString(hintStyle.Render("\n\n  left/right: navigate  enter: select  esc: back"))
	return b.String()
}
