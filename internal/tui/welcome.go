package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var logo = `
 ██╗      █████╗ ███╗   ███╗██████╗
 ██║     ██╔══██╗████╗ ████║██╔══██╗
 ██║     ███████║██╔████╔██║██████╔╝
 ██║     ██╔══██║██║╚██╔╝██║██╔═══╝
 ███████╗██║  ██║██║ ╚═╝ ██║██║
 ╚══════╝╚═╝  ╚═╝╚═╝     ╚═╝╚═╝      setup
`

type menuItem struct {
	label string
	desc  string
}

type welcomeModel struct {
	cursor int
	items  []menuItem
}

func newWelcomeModel() *welcomeModel {
	return &welcomeModel{
		items: []menuItem{
			{label: "Set up a site", desc: "Install the LAMP stack and create a virtual host on this machine"},
			{label: "Exit", desc: "Quit without changing anything"},
		},
	}
}

func (m *welcomeModel) Init() tea.Cmd {
	return nil
}

func (m *welcomeModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keymap.Up) && m.cursor > 0 {
			m.cursor--
		}
		if key.Matches(msg, keymap.Down) && m.cursor < len(m.items)-1 {
			m.cursor++
		}
		if key.Matches(msg, keymap.Select) {
			if m.cursor == 0 {
				return m, navigate(screenDomainInput)
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *welcomeModel) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(leadStyle.Render("Apache + PHP + MySQL provisioning wizard"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("  %s %s\n", cursorMark, activeStyle.Render(item.label)))
		} else {
			b.WriteString(fmt.Sprintf("    %s\n", plainStyle.Render(item.label)))
		}
		b.WriteString(fmt.Sprintf("    %s\n", dimStyle.Render(item.desc)))
	}

	b.WriteString(hintStyle.Render("\n  up/down: navigate  enter: select  ?: help  ctrl+c: quit"))
	return b.String()
}
