package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type completeModel struct {
	state   *wizardState
	hasSite bool
}

func newCompleteModel(state *wizardState) *completeModel {
	return &completeModel{state: state}
}

func (m *completeModel) Init() tea.Cmd {
	cfg := m.state.deps.Host.Config
	_, err := os.Stat(cfg.VHostPath(m.state.opts.Domain))
	m.hasSite = err == nil
	return nil
}

func (m *completeModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keymap.Select) || key.Matches(msg, keymap.Back) || key.Matches(msg, keymap.Close) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *completeModel) View() string {
	var b strings.Builder
	opts := m.state.opts
	cfg := m.state.deps.Host.Config

	b.WriteString(okStyle.Render("  Setup Complete!"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  Domain:        %s\n", activeStyle.Render(opts.Domain)))
	b.WriteString(fmt.Sprintf("  Packages:      %s\n", plainStyle.Render(opts.Packages.String())))
	if m.hasSite {
		b.WriteString(fmt.Sprintf("  Document root: %s\n", plainStyle.Render(cfg.DocumentRoot(opts.Domain))))
		b.WriteString(fmt.Sprintf("  Virtual host:  %s\n", plainStyle.Render(cfg.VHostPath(opts.Domain))))
	} else {
		b.WriteString(fmt.Sprintf("  Virtual host:  %s\n", warnStyle.Render("skipped (Apache not installed)")))
	}
	if opts.Composer {
		b.WriteString(fmt.Sprintf("  Composer:      %s\n", plainStyle.Render(cfg.BinDir+"/composer")))
	}

	b.WriteString("\n")
	b.WriteString(leadStyle.Render("  Next Steps"))
	b.WriteString("\n")
	if opts.Packages.MySQL {
		b.WriteString(dimStyle.Render("  $ sudo mysql_secure_installation   # secure MySQL"))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("  $ lampsetup sites                   # list virtual hosts"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  $ lampsetup doctor                  # verify system"))
	b.WriteString("\n")
	if m.hasSite {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  $ curl -H 'Host: %s' http://localhost/", opts.Domain)))
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("\n  enter/q: exit"))
	return b.String()
}
