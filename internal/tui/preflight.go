package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DevDhruvJoshi/PrecociousInstallationSetup/internal/lampsetup"
)

type checksDoneMsg struct {
	results []lampsetup.CheckResult
}

type preflightModel struct {
	state   *wizardState
	spinner spinner.Model
	running bool
	results []lampsetup.CheckResult
	hasWarn bool
	cursor  int // 0=Continue, 1=Cancel
}

func newPreflightModel(state *wizardState) *preflightModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &preflightModel{
		state:   state,
		spinner: sp,
	}
}

func (m *preflightModel) Init() tea.Cmd {
	m.running = true
	m.results = nil
	m.hasWarn = false
	m.cursor = 0
	return tea.Batch(m.spinner.Tick, m.runChecks())
}

func (m *preflightModel) runChecks() tea.Cmd {
	state := m.state
	return func() tea.Msg {
		host := state.deps.Host
		return checksDoneMsg{results: lampsetup.RunChecks(state.ctx, host.Config, host.Runner)}
	}
}

func (m *preflightModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case checksDoneMsg:
		m.running = false
		m.results = msg.results
		for _, r := range m.results {
			if !r.OK {
				m.hasWarn = true
				break
			}
		}
		if !m.hasWarn {
			return m, navigate(screenProgress)
		}
		return m, nil

	case tea.KeyMsg:
		if !m.running && m.hasWarn {
			if key.Matches(msg, keymap.Left) && m.cursor > 0 {
				m.cursor--
			}
			if key.Matches(msg, keymap.Right) && m.cursor < 1 {
				m.cursor++
			}
			if key.Matches(msg, keymap.Select) {
				if m.cursor == 0 {
					return m, navigate(screenProgress)
				}
				return m, m.state.fail(fmt.Errorf("%w: pre-flight checks failed", lampsetup.ErrAborted))
			}
		}
	}
	return m, nil
}

func (m *preflightModel) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Pre-flight Checks"))
	b.WriteString("\n\n")

	if m.running {
		b.WriteString(fmt.Sprintf("  %s Running system checks...\n", m.spinner.View()))
		return b.String()
	}

	for _, r := range m.results {
		if r.OK {
			b.WriteString(fmt.Sprintf("  %s %s\n", okStyle.Render("OK"), plainStyle.Render(r.Name)))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s: %s\n",
				warnStyle.Render("!!"),
				plainStyle.Render(r.Name),
				dimStyle.Render(r.Err.Error())))
		}
	}

	if m.hasWarn {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("  Some checks have warnings. Continue anyway?"))
		b.WriteString("\n\n")
		b.WriteString(renderButtons([]string{"Continue", "Cancel"}, m.cursor))
		b.WriteString(hintStyle.Render("\n\n  left/right: navigate  enter: select"))
	}

	return b.String()
}
