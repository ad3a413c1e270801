package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type helpReturnMsg struct{}

type helpModel struct{}

func newHelpModel() *helpModel {
	return &helpModel{}
}

func (m *helpModel) Init() tea.Cmd {
	return nil
}

func (m *helpModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keymap.Back, keymap.Help, keymap.Select, keymap.Close) {
			return m, func() tea.Msg { return helpReturnMsg{} }
		}
	}
	return m, nil
}

var helpSections = []struct {
	title    string
	bindings []key.Binding
}{
	{"Global", []key.Binding{keymap.Quit, keymap.Help}},
	{"Navigation", []key.Binding{keymap.Up, keymap.Down, keymap.Left, keymap.Right, keymap.Select, keymap.Back}},
	{"Packages", []key.Binding{keymap.Toggle}},
}

func (m *helpModel) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for _, section := range helpSections {
		b.WriteString(sectionStyle.Render("  " + section.title))
		b.WriteString("\n")
		for _, binding := range section.bindings {
			h := binding.Help()
			b.WriteString(leadStyle.Render(fmt.Sprintf("    %-8s", h.Key)) + "  " + dimStyle.Render(h.Desc))
			b.WriteString("\n")
		}
	}

	b.WriteString(hintStyle.Render("\n  press ?, esc or enter to close"))
	return b.String()
}
