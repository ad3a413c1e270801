package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DevDhruvJoshi/PrecociousInstallationSetup/internal/lampsetup"
)

type stepStatus int

const (
	stepPending stepStatus = iota
	stepRunning
	stepDone
	stepFailed
)

type progressStep struct {
	step   lampsetup.Step
	status stepStatus
	err    error
}

type planMsg struct {
	steps []lampsetup.Step
}

type stepDoneMsg struct {
	index int
	err   error
}

type progressModel struct {
	state   *wizardState
	steps   []progressStep
	spinner spinner.Model
	planned bool
	done    bool
	errMsg  string
}

func newProgressModel(state *wizardState) *progressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &progressModel{state: state, spinner: sp}
}

func (m *progressModel) Init() tea.Cmd {
	m.steps = nil
	m.planned = false
	m.done = false
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.plan())
}

// plan probes the host (dpkg) so it runs off the UI goroutine.
func (m *progressModel) plan() tea.Cmd {
	state := m.state
	return func() tea.Msg {
		return planMsg{steps: state.deps.Host.Plan(state.ctx, state.opts)}
	}
}

func (m *progressModel) runStep(index int) tea.Cmd {
	state := m.state
	step := m.steps[index].step
	return func() tea.Msg {
		return stepDoneMsg{index: index, err: step.Run(state.ctx)}
	}
}

func (m *progressModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case planMsg:
		m.planned = true
		m.steps = make([]progressStep, len(msg.steps))
		for i, s := range msg.steps {
			m.steps[i] = progressStep{step: s}
		}
		if len(m.steps) == 0 {
			m.done = true
			return m, navigate(screenComplete)
		}
		m.steps[0].status = stepRunning
		return m, m.runStep(0)

	case stepDoneMsg:
		if msg.err != nil {
			m.steps[msg.index].status = stepFailed
			m.steps[msg.index].err = msg.err
			m.errMsg = msg.err.Error()
			m.done = true
			m.state.err = msg.err
			return m, nil
		}
		m.steps[msg.index].status = stepDone

		next := msg.index + 1
		if next >= len(m.steps) {
			m.done = true
			return m, navigate(screenComplete)
		}
		m.steps[next].status = stepRunning
		return m, m.runStep(next)

	case tea.KeyMsg:
		if m.done && m.errMsg != "" {
			if key.Matches(msg, keymap.Select) || key.Matches(msg, keymap.Back) {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m *progressModel) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Setting Up " + m.state.opts.Domain))
	b.WriteString("\n\n")

	if !m.planned {
		b.WriteString(fmt.Sprintf("  %s Planning...\n", m.spinner.View()))
		return b.String()
	}

	for _, s := range m.steps {
		var icon string
		switch s.status {
		case stepPending:
			icon = dimStyle.Render("  ")
		case stepRunning:
			icon = m.spinner.View()
		case stepDone:
			icon = okStyle.Render("OK")
		case stepFailed:
			icon = failStyle.Render("XX")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", icon, plainStyle.Render(s.step.Name)))
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(failStyle.Render("  Error: " + m.errMsg))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  Nothing after the failed step was run."))
		b.WriteString(hintStyle.Render("\n  press enter or esc to exit"))
	}

	return b.String()
}
