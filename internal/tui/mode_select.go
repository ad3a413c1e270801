package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type modeOption struct {
	newServer bool
	label     string
	desc      string
}

type modeSelectModel struct {
	state   *wizardState
	cursor  int
	options []modeOption
}

func newModeSelectModel(state *wizardState) *modeSelectModel {
	return &modeSelectModel{
		state: state,
		options: []modeOption{
			{newServer: true, label: "New server", desc: "Install Apache, PHP and MySQL"},
			{newServer: false, label: "Step by step", desc: "Choose which packages to install"},
		},
	}
}

func (m *modeSelectModel) Init() tea.Cmd {
	m.cursor = 1
	if m.state.opts.NewServer {
		m.cursor = 0
	}
	return nil
}

func (m *modeSelectModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keymap.Back) {
			return m, navigate(screenDomainInput)
		}
		if key.Matches(msg, keymap.Up) && m.cursor > 0 {
			m.cursor--
		}
		if key.Matches(msg, keymap.Down) && m.cursor < len(m.options)-1 {
			m.cursor++
		}
		if key.Matches(msg, keymap.Select) {
			m.state.opts.NewServer = m.options[m.cursor].newServer
			return m, navigate(screenDNSCheck)
		}
	}
	return m, nil
}

func (m *modeSelectModel) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Installation Mode"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Is this a new server?"))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		radio := dotOff
		label := plainStyle.Render(opt.label)
		if i == m.cursor {
			radio = dotOn
			label = activeStyle.Render(opt.label)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", radio, label))
		b.WriteString(fmt.Sprintf("      %s\n", dimStyle.Render(opt.desc)))
	}

	b.WriteString(hintStyle.Render("\n  up/down: navigate  enter: select  esc: back"))
	return b.String()
}
