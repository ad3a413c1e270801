package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DevDhruvJoshi/PrecociousInstallationSetup/internal/lampsetup"
)

type confirmModel struct {
	state  *wizardState
	cursor int
}

func newConfirmModel(state *wizardState) *confirmModel {
	return &confirmModel{state: state}
}

func (m *confirmModel) Init() tea.Cmd {
	m.cursor = 0
	return nil
}

func (m *confirmModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keymap.Back) {
			return m, navigate(screenComposerSelect)
		}
		if (key.Matches(msg, keymap.Left) || key.Matches(msg, keymap.Up)) && m.cursor > 0 {
			m.cursor--
		}
		if (key.Matches(msg, keymap.Right) || key.Matches(msg, keymap.Down)) && m.cursor < 2 {
			m.cursor++
		}
		if key.Matches(msg, keymap.Select) {
			switch m.cursor {
			case 0: // Confirm
				return m, navigate(screenPreflight)
			case 1: // Back
				return m, navigate(screenComposerSelect)
			case 2: // Cancel
				return m, m.state.fail(fmt.Errorf("%w: cancelled before any changes", lampsetup.ErrAborted))
			}
		}
	}
	return m, nil
}

// equivalentCommand is the non-interactive invocation for the current
// choices. Step-by-step package answers go through an answers file.
func equivalentCommand(opts lampsetup.Options) string {
	args := []string{"lampsetup", "run", "--domain", opts.Domain}
	if opts.NewServer {
		args = append(args, "--new-server")
	}
	return strings.Join(args, " ")
}

func (m *confirmModel) View() string {
	var b strings.Builder
	opts := m.state.opts
	cfg := m.state.deps.Host.Config

	b.WriteString(headingStyle.Render("Confirm Setup"))
	b.WriteString("\n\n")

	b.WriteString(leadStyle.Render("  Summary"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Domain:        %s\n", activeStyle.Render(opts.Domain)))
	b.WriteString(fmt.Sprintf("  Document root: %s\n", activeStyle.Render(cfg.DocumentRoot(opts.Domain))))
	b.WriteString(fmt.Sprintf("  Virtual host:  %s\n", activeStyle.Render(cfg.VHostPath(opts.Domain))))
	if opts.Packages.Any() {
		b.WriteString(fmt.Sprintf("  Packages:      %s\n", activeStyle.Render(strings.Join(opts.Packages.Labels(), ", "))))
	} else {
		b.WriteString(fmt.Sprintf("  Packages:      %s\n", dimStyle.Render("(none)")))
	}
	composer := "no"
	if opts.Composer {
		composer = "yes"
	}
	b.WriteString(fmt.Sprintf("  Composer:      %s\n", activeStyle.Render(composer)))

	b.WriteString("\n")
	b.WriteString(leadStyle.Render("  Equivalent CLI Command"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  $ sudo " + equivalentCommand(opts)))
	b.WriteString("\n\n")

	b.WriteString(renderButtons([]string{"Confirm", "Back", "Cancel"}, m.cursor))
	b.WriteString("\n")

	b.WriteString(hintStyle.Render("\n  left/right: navigate  enter: select  esc: back"))
	return b.String()
}
