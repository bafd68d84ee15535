package experiment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/wordrecog/internal/config"
	"github.com/abhisek/wordrecog/internal/wordsets"
)

// Phase is the controller's position in the experiment flow.
type Phase int

const (
	PhaseLogin    Phase = iota // Waiting for a participant id
	PhaseConfirm               // Showing the resolved assignment
	PhaseMemorize              // Start prompt, then timed word display
	PhaseReady                 // Memorization done, waiting to start the test
	PhaseTest                  // Timed yes/no trials
	PhaseResult                // Block finished, showing the score
)

func (p Phase) String() string {
	switch p {
	case PhaseLogin:
		return "login"
	case PhaseConfirm:
		return "confirm"
	case PhaseMemorize:
		return "memorize"
	case PhaseReady:
		return "ready"
	case PhaseTest:
		return "test"
	case PhaseResult:
		return "result"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// MemorizeStage is the sub-state of PhaseMemorize.
type MemorizeStage int

const (
	StageAwaitingStart MemorizeStage = iota
	StagePresenting
	StageDone
)

// Options configures a Controller. Zero fields get defaults.
type Options struct {
	Repo   *Repo
	Timing config.Timing
	Rand   *rand.Rand
	Now    func() time.Time
	NewID  func() string
	Logger *zap.Logger
}

// Controller owns all experiment state. It is not safe for concurrent use;
// the UI event loop is its only caller.
type Controller struct {
	repo     *Repo
	resolver *Resolver
	timing   config.Timing
	rng      *rand.Rand
	now      func() time.Time
	newID    func() string
	logger   *zap.Logger

	phase   Phase
	stage   MemorizeStage
	session *Session

	// memorization
	words     []string
	wordIndex int

	// test block
	pool       []PoolItem
	trialIndex int
	remaining  time.Duration
	score      int
	trials     []Trial
	blockID    string
	saveErr    error

	// the block shown in PhaseResult; the session has moved past it
	doneStep      int
	doneCondition Condition

	// armed timers; zero handle means disarmed
	seq       uint64
	dwell     TimerHandle
	countdown TimerHandle
}

// NewController creates a Controller in PhaseLogin.
func NewController(opts Options) *Controller {
	if opts.Timing == (config.Timing{}) {
		opts.Timing = config.DefaultTiming()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = func() string { return uuid.New().String() }
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Controller{
		repo:     opts.Repo,
		resolver: NewResolver(opts.Repo, opts.Rand, opts.Logger),
		timing:   opts.Timing,
		rng:      opts.Rand,
		now:      opts.Now,
		newID:    opts.NewID,
		logger:   opts.Logger,
	}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Stage returns the memorization sub-state.
func (c *Controller) Stage() MemorizeStage { return c.stage }

// Session returns the active session, or nil before login.
func (c *Controller) Session() *Session { return c.session }

// Timing returns the configured durations.
func (c *Controller) Timing() config.Timing { return c.timing }

// Login resolves id. On failure the phase stays PhaseLogin and nothing
// else changes.
func (c *Controller) Login(ctx context.Context, id string) error {
	if c.phase != PhaseLogin {
		return transitionError("login", c.phase)
	}
	s, _, err := c.resolver.Resolve(ctx, id)
	if err != nil {
		c.logger.Info("login rejected", zap.String("input", id), zap.Error(err))
		return err
	}
	c.session = s
	c.phase = PhaseConfirm
	return nil
}

// Confirm accepts the assignment and loads the step's target words.
func (c *Controller) Confirm() error {
	if c.phase != PhaseConfirm {
		return transitionError("confirm", c.phase)
	}
	words, err := wordsets.Words(c.session.TargetSet())
	if err != nil {
		return err
	}
	c.words = words
	c.wordIndex = 0
	c.stage = StageAwaitingStart
	c.phase = PhaseMemorize
	return nil
}

// StartMemorizing shows the first word and arms the dwell timer.
func (c *Controller) StartMemorizing() (TimerHandle, error) {
	if c.phase != PhaseMemorize || c.stage != StageAwaitingStart {
		return TimerHandle{}, transitionError("start memorizing", c.phase)
	}
	if len(c.words) == 0 {
		return TimerHandle{}, fmt.Errorf("no words loaded for %s", c.session.TargetSet())
	}
	c.wordIndex = 0
	c.stage = StagePresenting
	c.dwell = c.arm(DwellTimer, c.timing.DisplayTime)
	c.logger.Debug("memorization started",
		zap.String("participant", c.session.ParticipantID),
		zap.String("set", string(c.session.TargetSet())))
	return c.dwell, nil
}

// CurrentWord is the word on screen while presenting.
func (c *Controller) CurrentWord() string {
	if c.stage != StagePresenting || c.wordIndex >= len(c.words) {
		return ""
	}
	return c.words[c.wordIndex]
}

// WordProgress returns the 0-based index of the shown word and the set size.
func (c *Controller) WordProgress() (int, int) {
	return c.wordIndex, len(c.words)
}

// StartTest builds and shuffles the pool and arms the first countdown.
func (c *Controller) StartTest() (TimerHandle, error) {
	if c.phase != PhaseReady {
		return TimerHandle{}, transitionError("start test", c.phase)
	}
	pool, err := c.buildPool()
	if err != nil {
		return TimerHandle{}, err
	}
	c.pool = pool
	c.trialIndex = 0
	c.score = 0
	c.trials = make([]Trial, 0, len(pool))
	c.blockID = c.newID()
	c.saveErr = nil
	c.phase = PhaseTest
	c.logger.Info("test started",
		zap.String("participant", c.session.ParticipantID),
		zap.Int("step", c.session.StepNumber()),
		zap.String("block", c.blockID))
	return c.startCountdown(), nil
}

func (c *Controller) buildPool() ([]PoolItem, error) {
	target := c.session.TargetSet()
	distractorSet, err := wordsets.DistractorFor(target)
	if err != nil {
		return nil, err
	}
	distractors, err := wordsets.Words(distractorSet)
	if err != nil {
		return nil, err
	}

	pool := make([]PoolItem, 0, len(c.words)+len(distractors))
	for _, w := range c.words {
		pool = append(pool, PoolItem{Word: w, IsTarget: true})
	}
	for _, w := range distractors {
		pool = append(pool, PoolItem{Word: w, IsTarget: false})
	}
	Shuffle(c.rng, pool)
	return pool, nil
}

// CurrentTrial returns the word under test and its 0-based index.
func (c *Controller) CurrentTrial() (PoolItem, int, bool) {
	if c.phase != PhaseTest || c.trialIndex >= len(c.pool) {
		return PoolItem{}, c.trialIndex, false
	}
	return c.pool[c.trialIndex], c.trialIndex, true
}

// PoolSize is the number of trials in the current block.
func (c *Controller) PoolSize() int { return len(c.pool) }

// Pool returns a copy of the block's trial order.
func (c *Controller) Pool() []PoolItem {
	out := make([]PoolItem, len(c.pool))
	copy(out, c.pool)
	return out
}

// Remaining is the time left on the current trial.
func (c *Controller) Remaining() time.Duration { return c.remaining }

// Score is the number of correct trials so far in this block.
func (c *Controller) Score() int { return c.score }

// Trials returns a copy of the trials recorded in this block.
func (c *Controller) Trials() []Trial {
	out := make([]Trial, len(c.trials))
	copy(out, c.trials)
	return out
}

// FinishedBlock returns the step number and condition of the block shown
// in PhaseResult. Outside PhaseResult it returns zero values.
func (c *Controller) FinishedBlock() (int, Condition) {
	if c.phase != PhaseResult {
		return 0, ""
	}
	return c.doneStep, c.doneCondition
}

// SaveErr is the persistence error from the last finished block, if any.
func (c *Controller) SaveErr() error { return c.saveErr }

// Summary tallies the block's trials.
func (c *Controller) Summary() Summary { return Summarize(c.trials) }

// Answer records a yes/no response for the current trial. The countdown is
// disarmed before recording so a pending tick cannot also time it out.
// The returned handle is the next trial's countdown, or zero when the block
// has ended.
func (c *Controller) Answer(ctx context.Context, yes bool) (TimerHandle, error) {
	if c.phase != PhaseTest {
		return TimerHandle{}, transitionError("answer", c.phase)
	}
	c.countdown = TimerHandle{}

	resp := ResponseNo
	if yes {
		resp = ResponseYes
	}
	c.record(resp)
	return c.next(ctx), nil
}

// Tick delivers one firing of h. Stale handles are ignored. The result is
// the handle whose next tick should be scheduled, or zero for none.
func (c *Controller) Tick(ctx context.Context, h TimerHandle) TimerHandle {
	switch {
	case h.IsZero():
		return TimerHandle{}
	case h == c.dwell:
		return c.dwellTick()
	case h == c.countdown:
		return c.countdownTick(ctx)
	default:
		return TimerHandle{}
	}
}

func (c *Controller) dwellTick() TimerHandle {
	c.wordIndex++
	if c.wordIndex < len(c.words) {
		return c.dwell
	}
	c.dwell = TimerHandle{}
	c.stage = StageDone
	c.phase = PhaseReady
	return TimerHandle{}
}

func (c *Controller) countdownTick(ctx context.Context) TimerHandle {
	c.remaining -= c.timing.Tick
	if c.remaining > 0 {
		return c.countdown
	}
	c.countdown = TimerHandle{}
	c.remaining = 0
	c.record(ResponseTimeout)
	return c.next(ctx)
}

func (c *Controller) record(resp Response) {
	item := c.pool[c.trialIndex]
	correct := IsCorrect(resp, item.IsTarget)
	if correct {
		c.score++
	}

	rt := c.timing.AnswerTime - c.remaining
	if resp == ResponseTimeout {
		rt = c.timing.AnswerTime
	}

	t := Trial{
		ParticipantID:  c.session.ParticipantID,
		Condition:      c.session.Condition(),
		Set:            c.session.TargetSet(),
		Step:           c.session.StepNumber(),
		Word:           item.Word,
		IsTarget:       item.IsTarget,
		Response:       resp,
		IsCorrect:      correct,
		ResponseTimeMs: rt.Milliseconds(),
		IsTimeout:      resp == ResponseTimeout,
		Timestamp:      c.now().UTC().Truncate(time.Millisecond),
		BlockID:        c.blockID,
	}
	c.trials = append(c.trials, t)
	c.logger.Debug("trial recorded",
		zap.Int("index", c.trialIndex),
		zap.String("word", t.Word),
		zap.String("response", string(resp)),
		zap.Bool("correct", correct))
}

func (c *Controller) next(ctx context.Context) TimerHandle {
	c.trialIndex++
	if c.trialIndex < len(c.pool) {
		return c.startCountdown()
	}
	c.finish(ctx)
	return TimerHandle{}
}

func (c *Controller) startCountdown() TimerHandle {
	c.remaining = c.timing.AnswerTime
	c.countdown = c.arm(CountdownTimer, c.timing.Tick)
	return c.countdown
}

// finish persists the block and advances the session. A storage failure is
// kept for display; the result is still shown.
func (c *Controller) finish(ctx context.Context) {
	s := c.session
	step := s.StepNumber()
	c.doneStep, c.doneCondition = step, s.Condition()

	if err := c.repo.SaveTrials(ctx, s.ParticipantID, step, c.trials); err != nil {
		c.saveErr = err
		c.logger.Error("save trials failed", zap.String("participant", s.ParticipantID), zap.Error(err))
	} else {
		// The session is only advanced in memory once storage agrees.
		next := *s
		next.Completed = s.CurrentStep == Steps-1
		next.CurrentStep++
		if err := c.repo.SaveSession(ctx, &next); err != nil {
			c.saveErr = err
			c.logger.Error("save session failed", zap.String("participant", s.ParticipantID), zap.Error(err))
		} else {
			c.session = &next
		}
	}

	c.phase = PhaseResult
	sum := c.Summary()
	c.logger.Info("block finished",
		zap.String("participant", s.ParticipantID),
		zap.Int("step", step),
		zap.String("block", c.blockID),
		zap.Int("correct", sum.Correct),
		zap.Int("total", sum.Total),
		zap.Int("timeouts", sum.Timeouts))
}

// Reset disarms every timer, drops all transient state and returns to
// PhaseLogin. Persisted data is untouched.
func (c *Controller) Reset() {
	c.dwell = TimerHandle{}
	c.countdown = TimerHandle{}

	if c.session != nil {
		c.logger.Info("reset",
			zap.String("participant", c.session.ParticipantID),
			zap.Stringer("phase", c.phase))
	}

	c.phase = PhaseLogin
	c.stage = StageAwaitingStart
	c.session = nil
	c.words = nil
	c.wordIndex = 0
	c.pool = nil
	c.trialIndex = 0
	c.remaining = 0
	c.score = 0
	c.trials = nil
	c.blockID = ""
	c.saveErr = nil
	c.doneStep = 0
	c.doneCondition = ""
}

// Armed reports whether h is the live handle for its kind.
func (c *Controller) Armed(h TimerHandle) bool {
	if h.IsZero() {
		return false
	}
	return h == c.dwell || h == c.countdown
}

// arm issues a fresh handle. The caller stores it in the slot for kind,
// which drops whatever handle was there.
func (c *Controller) arm(kind TimerKind, every time.Duration) TimerHandle {
	c.seq++
	return TimerHandle{Kind: kind, ID: c.seq, Every: every}
}
