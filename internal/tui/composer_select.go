package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type composerSelectModel struct {
	state  *wizardState
	cursor int // 0=Install, 1=Skip
}

func newComposerSelectModel(state *wizardState) *composerSelectModel {
	return &composerSelectModel{state: state}
}

func (m *composerSelectModel) Init() tea.Cmd {
	m.cursor = 1
	if m.state.opts.Composer {
		m.cursor = 0
	}
	return nil
}

func (m *composerSelectModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keymap.Back) {
			if m.state.opts.NewServer {
				return m, navigate(screenModeSelect)
			}
			return m, navigate(screenPackageSelect)
		}
		if (key.Matches(msg, keymap.Up) || key.Matches(msg, keymap.Left)) && m.cursor > 0 {
			m.cursor--
		}
		if (key.Matches(msg, keymap.Down) || key.Matches(msg, keymap.Right)) && m.cursor < 1 {
			m.cursor++
		}
		if key.Matches(msg, keymap.Select) {
			m.state.opts.Composer = m.cursor == 0
			return m, navigate(screenConfirm)
		}
	}
	return m, nil
}

func (m *composerSelectModel) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Composer"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Download and verify the Composer installer, then install it system-wide."))
	b.WriteString("\n\n")

	for i, label := range []string{"Install Composer", "Skip"} {
		radio := dotOff
		text := plainStyle.Render(label)
		if i == m.cursor {
			radio = dotOn
			text = activeStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", radio, text))
	}

	b.WriteString(hintStyle.Render("\n  up/down: navigate  enter: select  esc: back"))
	return b.String()
}
