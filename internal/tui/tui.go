package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DevDhruvJoshi/PrecociousInstallationSetup/internal/lampsetup"
)

type screen int

const (
	screenWelcome screen = iota
	screenDomainInput
	screenModeSelect
	screenDNSCheck
	screenPackageSelect
	screenComposerSelect
	screenConfirm
	screenPreflight
	screenProgress
	screenComplete
	screenHelp
)

type navigateMsg struct {
	to screen
}

// Deps are the host services the wizard drives.
type Deps struct {
	Host *lampsetup.Host
	DNS  *lampsetup.DNSChecker
}

type wizardState struct {
	ctx     context.Context
	deps    Deps
	answers lampsetup.Answers
	opts    lampsetup.Options
	dns     lampsetup.DNSResult
	err     error
}

// fail records err as the wizard's outcome and quits.
func (s *wizardState) fail(err error) tea.Cmd {
	s.err = err
	return tea.Quit
}

type screenModel interface {
	Init() tea.Cmd
	Update(tea.Msg) (screenModel, tea.Cmd)
	View() string
}

type rootModel struct {
	current  screen
	previous screen
	state    *wizardState
	screens  map[screen]screenModel
	cancel   context.CancelFunc
	width    int
	height   int
	quitting bool
}

// StartWizard runs the full-screen wizard and returns the options it
// executed. The error is the first failing step, ErrAborted when the
// operator cancelled, or context.Canceled on ctrl+c.
func StartWizard(ctx context.Context, deps Deps, answers lampsetup.Answers) (lampsetup.Options, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	state := newWizardState(ctx, deps, answers)
	m := rootModel{
		current: screenWelcome,
		state:   state,
		screens: newScreens(state),
		cancel:  cancel,
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if state.err != nil {
		return state.opts, state.err
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return state.opts, context.Canceled
	}
	return state.opts, err
}

func newWizardState(ctx context.Context, deps Deps, answers lampsetup.Answers) *wizardState {
	state := &wizardState{ctx: ctx, deps: deps, answers: answers}
	state.opts.Domain = answers.Domain
	state.opts.Composer = true
	if answers.Composer != nil {
		state.opts.Composer = *answers.Composer
	}
	if answers.NewServer != nil {
		state.opts.NewServer = *answers.NewServer
	}
	for _, info := range lampsetup.PackageCatalog {
		if v := answerFor(answers, info.Name); v != nil {
			state.opts.Packages.Set(info.Name, *v)
		}
	}
	return state
}

func answerFor(a lampsetup.Answers, name lampsetup.Package) *bool {
	switch name {
	case lampsetup.PackageApache:
		return a.Apache
	case lampsetup.PackagePHP:
		return a.PHP
	case lampsetup.PackageMySQL:
		return a.MySQL
	}
	return nil
}

func newScreens(state *wizardState) map[screen]screenModel {
	return map[screen]screenModel{
		screenWelcome:        newWelcomeModel(),
		screenDomainInput:    newDomainInputModel(state),
		screenModeSelect:     newModeSelectModel(state),
		screenDNSCheck:       newDNSCheckModel(state),
		screenPackageSelect:  newPackageSelectModel(state),
		screenComposerSelect: newComposerSelectModel(state),
		screenConfirm:        newConfirmModel(state),
		screenPreflight:      newPreflightModel(state),
		screenProgress:       newProgressModel(state),
		screenComplete:       newCompleteModel(state),
		screenHelp:           newHelpModel(),
	}
}

func (m rootModel) Init() tea.Cmd {
	return m.screens[m.current].Init()
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keymap.Quit) {
			m.quitting = true
			m.cancel()
			if m.state.err == nil && m.current != screenComplete {
				m.state.err = context.Canceled
			}
			return m, tea.Quit
		}
		// Help overlay from any screen except while steps are running
		if key.Matches(msg, keymap.Help) && m.current != screenProgress && m.current != screenHelp &&
			m.current != screenDomainInput {
			m.previous = m.current
			m.current = screenHelp
			return m, m.screens[m.current].Init()
		}

	case navigateMsg:
		m.current = msg.to
		return m, m.screens[m.current].Init()

	case helpReturnMsg:
		m.current = m.previous
		return m, nil
	}

	s := m.screens[m.current]
	newScreen, cmd := s.Update(msg)
	m.screens[m.current] = newScreen
	return m, cmd
}

func (m rootModel) View() string {
	if m.quitting {
		return ""
	}

	content := m.screens[m.current].View()

	step := int(m.current)
	total := int(screenConfirm)
	if step > 0 && step <= total {
		content += "\n" + dimStyle.Render(fmt.Sprintf("Step %d of %d", step, total))
	}
	return content
}

func navigate(to screen) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: to} }
}
