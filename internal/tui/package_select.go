package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DevDhruvJoshi/PrecociousInstallationSetup/internal/lampsetup"
)

type packageSelectModel struct {
	state    *wizardState
	cursor   int
	selected lampsetup.Packages
}

func newPackageSelectModel(state *wizardState) *packageSelectModel {
	return &packageSelectModel{state: state}
}

func (m *packageSelectModel) Init() tea.Cmd {
	m.selected = m.state.opts.Packages
	m.cursor = 0
	return nil
}

func (m *packageSelectModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keymap.Back) {
			return m, navigate(screenModeSelect)
		}
		if key.Matches(msg, keymap.Up) && m.cursor > 0 {
			m.cursor--
		}
		if key.Matches(msg, keymap.Down) && m.cursor < len(lampsetup.PackageCatalog)-1 {
			m.cursor++
		}
		if key.Matches(msg, keymap.Toggle) {
			name := lampsetup.PackageCatalog[m.cursor].Name
			m.selected.Set(name, !m.selected.Has(name))
		}
		if key.Matches(msg, keymap.Select) {
			m.state.opts.Packages = m.selected
			return m, navigate(screenComposerSelect)
		}
	}
	return m, nil
}

func (m *packageSelectModel) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Select Packages"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Packages are installed in the order shown."))
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Stack"))
	b.WriteString("\n")

	for i, info := range lampsetup.PackageCatalog {
		check := boxOff
		if m.selected.Has(info.Name) {
			check = boxOn
		}
		prefix := " "
		label := plainStyle.Render(info.Label)
		if i == m.cursor {
			prefix = cursorMark
			label = activeStyle.Render(info.Label)
		}
		b.WriteString(fmt.Sprintf("  %s %s %s  %s\n", prefix, check, label, dimStyle.Render(info.Description)))
	}

	if !m.selected.Apache {
		b.WriteString("\n  " + warnStyle.Render("Without Apache the virtual host is only created if apache2 is already installed."))
	}

	b.WriteString(hintStyle.Render("\n  up/down: navigate  space: toggle  enter: confirm  esc: back"))
	return b.String()
}
