package experiment

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	exp "github.com/abhisek/wordrecog/internal/experiment"
	"github.com/abhisek/wordrecog/internal/screen"
	"github.com/abhisek/wordrecog/internal/ui/components"
	"github.com/abhisek/wordrecog/internal/ui/layout"
)

const idPlaceholder = "e.g. A001"

// ExperimentScreen drives an experiment.Controller from key presses and
// timer ticks.
type ExperimentScreen struct {
	ctx    context.Context
	ctrl   *exp.Controller
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*ExperimentScreen)(nil)
var _ screen.KeyHintProvider = (*ExperimentScreen)(nil)
var _ screen.StatusProvider = (*ExperimentScreen)(nil)

// New creates an ExperimentScreen on the login phase.
func New(ctx context.Context, ctrl *exp.Controller) *ExperimentScreen {
	return &ExperimentScreen{
		ctx:   ctx,
		ctrl:  ctrl,
		input: newIDInput(),
	}
}

func newIDInput() components.TextInput {
	return components.NewTextInput(idPlaceholder, 4)
}

func (s *ExperimentScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ExperimentScreen) Title() string {
	switch s.ctrl.Phase() {
	case exp.PhaseLogin:
		return "Sign in"
	case exp.PhaseConfirm:
		return "Your assignment"
	case exp.PhaseMemorize:
		return "Memorize"
	case exp.PhaseReady:
		return "Get ready"
	case exp.PhaseTest:
		return "Recognition test"
	case exp.PhaseResult:
		return "Result"
	}
	return ""
}

// Status shows who is signed in and where they are in the sequence.
func (s *ExperimentScreen) Status() string {
	sess := s.ctrl.Session()
	if sess == nil {
		return ""
	}
	step, cond := sess.StepNumber(), sess.Condition()
	if s.ctrl.Phase() == exp.PhaseResult {
		step, cond = s.ctrl.FinishedBlock()
	}
	return fmt.Sprintf("%s │ Step %d/%d │ %s", sess.ParticipantID, step, exp.Steps, cond)
}

func (s *ExperimentScreen) KeyHints() []layout.KeyHint {
	reset := layout.KeyHint{Key: "Esc", Description: "Reset"}
	quit := layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}

	switch s.ctrl.Phase() {
	case exp.PhaseLogin:
		return []layout.KeyHint{{Key: "Enter", Description: "Sign in"}, quit}
	case exp.PhaseConfirm:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}, reset, quit}
	case exp.PhaseMemorize:
		if s.ctrl.Stage() == exp.StageAwaitingStart {
			return []layout.KeyHint{{Key: "Enter", Description: "Start"}, reset, quit}
		}
		return []layout.KeyHint{reset, quit}
	case exp.PhaseReady:
		return []layout.KeyHint{{Key: "Enter", Description: "Start test"}, reset, quit}
	case exp.PhaseTest:
		return []layout.KeyHint{
			{Key: "Y / ←", Description: "Seen it"},
			{Key: "N / →", Description: "New word"},
			reset,
		}
	case exp.PhaseResult:
		return []layout.KeyHint{{Key: "Enter", Description: "Next participant"}, quit}
	}
	return nil
}

func (s *ExperimentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s, tickCmd(s.ctrl.Tick(s.ctx, msg.Handle))

	case screen.ResetMsg:
		return s, s.reset()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.ctrl.Phase() == exp.PhaseLogin {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ExperimentScreen) reset() tea.Cmd {
	s.ctrl.Reset()
	s.errMsg = ""
	s.input = newIDInput()
	return s.input.Init()
}

// action returns the Enter button of the current phase, if it has one.
func (s *ExperimentScreen) action() (components.Button, bool) {
	switch s.ctrl.Phase() {
	case exp.PhaseConfirm:
		return components.NewButton("Continue", true, s.confirm), true
	case exp.PhaseMemorize:
		if s.ctrl.Stage() == exp.StageAwaitingStart {
			return components.NewButton("Start", true, s.startMemorizing), true
		}
	case exp.PhaseReady:
		return components.NewButton("Start test", true, s.startTest), true
	case exp.PhaseResult:
		return components.NewButton("Next participant", true, s.reset), true
	}
	return components.Button{}, false
}

func (s *ExperimentScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.ctrl.Phase() {
	case exp.PhaseLogin:
		if key == "enter" {
			return s.login()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		if submitted, _ := s.input.Submitted(); !submitted {
			s.errMsg = ""
		}
		return s, cmd

	case exp.PhaseTest:
		switch key {
		case "y", "Y", "left":
			return s.answer(true)
		case "n", "N", "right":
			return s.answer(false)
		}
		return s, nil
	}

	if b, ok := s.action(); ok {
		_, cmd := b.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ExperimentScreen) confirm() tea.Cmd {
	if err := s.ctrl.Confirm(); err != nil {
		s.errMsg = err.Error()
	}
	return nil
}

func (s *ExperimentScreen) startMemorizing() tea.Cmd {
	h, err := s.ctrl.StartMemorizing()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return tickCmd(h)
}

func (s *ExperimentScreen) startTest() tea.Cmd {
	h, err := s.ctrl.StartTest()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return tickCmd(h)
}

func (s *ExperimentScreen) login() (screen.Screen, tea.Cmd) {
	err := s.ctrl.Login(s.ctx, s.input.Value())
	s.input.Submit(err == nil)
	if err != nil {
		s.errMsg = loginError(s.input.Value(), err)
		return s, nil
	}
	s.errMsg = ""
	return s, nil
}

func (s *ExperimentScreen) answer(yes bool) (screen.Screen, tea.Cmd) {
	h, err := s.ctrl.Answer(s.ctx, yes)
	if err != nil {
		return s, nil
	}
	return s, tickCmd(h)
}

// loginError turns a Login failure into a message for the participant.
func loginError(input string, err error) string {
	var corrupt *exp.CorruptDataError
	switch {
	case errors.Is(err, exp.ErrInvalidParticipantID):
		return "Participant ID must be one capital letter followed by three digits, e.g. A001."
	case errors.Is(err, exp.ErrSessionCompleted):
		return fmt.Sprintf("%s has already completed all %d steps. Thank you!", input, exp.Steps)
	case errors.As(err, &corrupt):
		return fmt.Sprintf("Saved data for %s cannot be read. Ask the experimenter to run `wordrecog reset %s`.", input, input)
	default:
		return "Could not load your session: " + err.Error()
	}
}
