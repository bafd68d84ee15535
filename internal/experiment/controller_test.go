package experiment

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/abhisek/wordrecog/internal/config"
	"github.com/abhisek/wordrecog/internal/store"
	"github.com/abhisek/wordrecog/internal/wordsets"
)

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestController(kv store.KVRepo, seed uint64) *Controller {
	return NewController(Options{
		Repo:   NewRepo(kv),
		Timing: config.DefaultTiming(),
		Rand:   rand.New(rand.NewPCG(seed, seed+1)),
		Now:    func() time.Time { return testNow },
		NewID:  func() string { return "block-test" },
	})
}

// loginToMemorize drives the controller from login to the memorize start prompt.
func loginToMemorize(t *testing.T, c *Controller, id string) {
	t.Helper()
	if err := c.Login(context.Background(), id); err != nil {
		t.Fatalf("Login(%s): %v", id, err)
	}
	if err := c.Confirm(); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
}

// memorizeAll runs the dwell timer to completion and returns the words shown.
func memorizeAll(t *testing.T, c *Controller) []string {
	t.Helper()
	h, err := c.StartMemorizing()
	if err != nil {
		t.Fatalf("StartMemorizing: %v", err)
	}
	var shown []string
	for !h.IsZero() {
		shown = append(shown, c.CurrentWord())
		h = c.Tick(context.Background(), h)
	}
	return shown
}

// runTest answers every trial with decide; a nil decision lets the trial time out.
func runTest(t *testing.T, c *Controller, decide func(PoolItem) *bool) {
	t.Helper()
	ctx := context.Background()
	h, err := c.StartTest()
	if err != nil {
		t.Fatalf("StartTest: %v", err)
	}
	for c.Phase() == PhaseTest {
		item, _, ok := c.CurrentTrial()
		if !ok {
			t.Fatal("no current trial during test phase")
		}
		if ans := decide(item); ans != nil {
			h, err = c.Answer(ctx, *ans)
			if err != nil {
				t.Fatalf("Answer: %v", err)
			}
			continue
		}
		// Tick only this trial's countdown; expiry hands back the next one.
		for expiring := h; h == expiring && !h.IsZero(); {
			h = c.Tick(ctx, h)
		}
	}
}

func boolPtr(b bool) *bool { return &b }

func answerTruthfully(item PoolItem) *bool { return boolPtr(item.IsTarget) }

func completeStep(t *testing.T, c *Controller, id string) {
	t.Helper()
	loginToMemorize(t, c, id)
	memorizeAll(t, c)
	runTest(t, c, answerTruthfully)
	if c.Phase() != PhaseResult {
		t.Fatalf("phase = %s, want result", c.Phase())
	}
}

func TestLoginInvalidStaysOnLogin(t *testing.T) {
	kv := store.NewMemoryKV()
	c := newTestController(kv, 1)

	err := c.Login(context.Background(), "x12")
	if !errors.Is(err, ErrInvalidParticipantID) {
		t.Fatalf("expected ErrInvalidParticipantID, got %v", err)
	}
	if c.Phase() != PhaseLogin {
		t.Errorf("phase = %s, want login", c.Phase())
	}
	if c.Session() != nil {
		t.Error("session set after failed login")
	}
	if kv.Len() != 0 {
		t.Errorf("failed login wrote %d keys", kv.Len())
	}
}

func TestLoginMovesToConfirm(t *testing.T) {
	c := newTestController(store.NewMemoryKV(), 1)

	if err := c.Login(context.Background(), "A001"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if c.Phase() != PhaseConfirm {
		t.Errorf("phase = %s, want confirm", c.Phase())
	}
	if got := c.Session().Condition(); got != ConditionRM {
		t.Errorf("condition = %s, want RM", got)
	}
}

func TestMemorizationShowsTargetSetInOrder(t *testing.T) {
	c := newTestController(store.NewMemoryKV(), 1)
	loginToMemorize(t, c, "A001")

	if c.Phase() != PhaseMemorize || c.Stage() != StageAwaitingStart {
		t.Fatalf("phase/stage = %s/%d, want memorize/awaiting", c.Phase(), c.Stage())
	}

	shown := memorizeAll(t, c)

	want, _ := wordsets.Words(c.Session().TargetSet())
	if len(shown) != wordsets.SetSize {
		t.Fatalf("shown %d words, want %d", len(shown), wordsets.SetSize)
	}
	for i := range want {
		if shown[i] != want[i] {
			t.Errorf("word %d = %q, want %q", i, shown[i], want[i])
		}
	}
	if c.Phase() != PhaseReady {
		t.Errorf("phase = %s, want ready", c.Phase())
	}
	if c.Stage() != StageDone {
		t.Errorf("stage = %d, want done", c.Stage())
	}
}

func TestDwellHandleCarriesDisplayTime(t *testing.T) {
	c := newTestController(store.NewMemoryKV(), 1)
	loginToMemorize(t, c, "A001")

	h, err := c.StartMemorizing()
	if err != nil {
		t.Fatal(err)
	}
	if h.Kind != DwellTimer || h.Every != 2*time.Second {
		t.Errorf("handle = %+v, want dwell every 2s", h)
	}
}

func TestStartMemorizingTwiceRejected(t *testing.T) {
	c := newTestController(store.NewMemoryKV(), 1)
	loginToMemorize(t, c, "A001")

	if _, err := c.StartMemorizing(); err != nil {
		t.Fatal(err)
	}
	if _, err := c.StartMemorizing(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second start: expected ErrInvalidTransition, got %v", err)
	}
}

func TestPoolComposition(t *testing.T) {
	c := newTestController(store.NewMemoryKV(), 4)
	loginToMemorize(t, c, "C010")
	memorizeAll(t, c)

	if _, err := c.StartTest(); err != nil {
		t.Fatal(err)
	}
	pool := c.Pool()
	if len(pool) != 30 {
		t.Fatalf("pool size = %d, want 30", len(pool))
	}

	target := c.Session().TargetSet()
	distractor, _ := wordsets.DistractorFor(target)
	tw, _ := wordsets.Words(target)
	dw, _ := wordsets.Words(distractor)

	expect := make(map[string]bool)
	for _, w := range tw {
		expect[w] = true
	}
	for _, w := range dw {
		expect[w] = false
	}

	seen := make(map[string]int)
	for _, item := range pool {
		seen[item.Word]++
		isTarget, ok := expect[item.Word]
		if !ok {
			t.Errorf("unexpected word %q", item.Word)
			continue
		}
		if item.IsTarget != isTarget {
			t.Errorf("%q tagged IsTarget=%v, want %v", item.Word, item.IsTarget, isTarget)
		}
	}
	for w, n := range seen {
		if n != 1 {
			t.Errorf("%q appears %d times", w, n)
		}
	}

	// Shuffled: the first 15 should not simply be the target set.
	targetsFirst := true
	for _, item := range pool[:15] {
		if !item.IsTarget {
			targetsFirst = false
		}
	}
	if targetsFirst {
		t.Error("pool does not look shuffled")
	}
}

func TestAnswerScoring(t *testing.T) {
	tests := []struct {
		name        string
		decide      func(PoolItem) *bool
		wantCorrect int
	}{
		{"all truthful", answerTruthfully, 30},
		{"all yes", func(PoolItem) *bool { return boolPtr(true) }, 15},
		{"all no", func(PoolItem) *bool { return boolPtr(false) }, 15},
		{"all wrong", func(i PoolItem) *bool { return boolPtr(!i.IsTarget) }, 0},
		{"all timeout", func(PoolItem) *bool { return nil }, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(store.NewMemoryKV(), 2)
			loginToMemorize(t, c, "A001")
			memorizeAll(t, c)
			runTest(t, c, tt.decide)

			if c.Score() != tt.wantCorrect {
				t.Errorf("score = %d, want %d", c.Score(), tt.wantCorrect)
			}
			trials := c.Trials()
			if len(trials) != 30 {
				t.Fatalf("recorded %d trials, want 30", len(trials))
			}
			correct := 0
			for _, tr := range trials {
				if tr.IsCorrect != IsCorrect(tr.Response, tr.IsTarget) {
					t.Errorf("trial %q: IsCorrect=%v for %s/target=%v", tr.Word, tr.IsCorrect, tr.Response, tr.IsTarget)
				}
				if tr.IsCorrect {
					correct++
				}
			}
			if correct != c.Score() {
				t.Errorf("score %d disagrees with %d correct trials", c.Score(), correct)
			}
		})
	}
}

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		resp     Response
		isTarget bool
		want     bool
	}{
		{ResponseYes, true, true},
		{ResponseYes, false, false},
		{ResponseNo, true, false},
		{ResponseNo, false, true},
		{ResponseTimeout, true, false},
		{ResponseTimeout, false, false},
	}
	for _, tt := range tests {
		if got := IsCorrect(tt.resp, tt.isTarget); got != tt.want {
			t.Errorf("IsCorrect(%s, %v) = %v, want %v", tt.resp, tt.isTarget, got, tt.want)
		}
	}
}

func TestTimeoutAfterFullCountdown(t *testing.T) {
	c := newTestController(store.NewMemoryKV(), 1)
	loginToMemorize(t, c, "A001")
	memorizeAll(t, c)
	ctx := context.Background()

	h, err := c.StartTest()
	if err != nil {
		t.Fatal(err)
	}
	if h.Kind != CountdownTimer || h.Every != 100*time.Millisecond {
		t.Fatalf("handle = %+v, want countdown every 100ms", h)
	}
	if c.Remaining() != 2*time.Second {
		t.Fatalf("remaining = %s, want 2s", c.Remaining())
	}

	first := h
	ticks := 0
	for h == first {
		h = c.Tick(ctx, h)
		ticks++
		if ticks > 100 {
			t.Fatal("countdown never expired")
		}
	}
	if c.Armed(first) {
		t.Error("expired countdown is still armed")
	}
	if ticks != 20 {
		t.Errorf("timed out after %d ticks, want 20", ticks)
	}

	trials := c.Trials()
	if len(trials) != 1 {
		t.Fatalf("recorded %d trials, want 1", len(trials))
	}
	tr := trials[0]
	if tr.Response != ResponseTimeout || !tr.IsTimeout || tr.IsCorrect {
		t.Errorf("timeout trial = %+v", tr)
	}
	if tr.ResponseTimeMs != 2000 {
		t.Errorf("timeout response time = %d, want 2000", tr.ResponseTimeMs)
	}

	// The returned handle is the next trial's countdown.
	if h.IsZero() || !c.Armed(h) {
		t.Error("expected a fresh countdown for the next trial")
	}
	if c.Remaining() != 2*time.Second {
		t.Errorf("next trial remaining = %s, want 2s", c.Remaining())
	}
}

func TestResponseTimeFromCountdown(t *testing.T) {
	c := newTestController(store.NewMemoryKV(), 1)
	loginToMemorize(t, c, "A001")
	memorizeAll(t, c)
	ctx := context.Background()

	h, _ := c.StartTest()
	for i := 0; i < 3; i++ {
		h = c.Tick(ctx, h)
	}
	if _, err := c.Answer(ctx, true); err != nil {
		t.Fatal(err)
	}
	if got := c.Trials()[0].ResponseTimeMs; got != 300 {
		t.Errorf("response time = %d, want 300", got)
	}
}

func TestAnswerCancelsPendingTick(t *testing.T) {
	c := newTestController(store.NewMemoryKV(), 1)
	loginToMemorize(t, c, "A001")
	memorizeAll(t, c)
	ctx := context.Background()

	old, _ := c.StartTest()
	for i := 0; i < 19; i++ {
		old = c.Tick(ctx, old)
	}
	next, err := c.Answer(ctx, false)
	if err != nil {
		t.Fatal(err)
	}

	// The tick that was already in flight for the answered trial fires late.
	if got := c.Tick(ctx, old); !got.IsZero() {
		t.Errorf("stale tick returned live handle %+v", got)
	}
	if c.Armed(old) {
		t.Error("answered trial's handle still armed")
	}
	if n := len(c.Trials()); n != 1 {
		t.Errorf("recorded %d trials, want exactly 1", n)
	}
	if c.Remaining() != 2*time.Second {
		t.Errorf("stale tick changed remaining time to %s", c.Remaining())
	}
	if !c.Armed(next) || next == old {
		t.Error("expected a distinct armed handle for the next trial")
	}
}

func TestAtMostOneHandlePerKind(t *testing.T) {
	c := newTestController(store.NewMemoryKV(), 1)
	loginToMemorize(t, c, "A001")
	memorizeAll(t, c)
	ctx := context.Background()

	var issued []TimerHandle
	h, _ := c.StartTest()
	issued = append(issued, h)
	for i := 0; i < 5; i++ {
		h, _ = c.Answer(ctx, true)
		issued = append(issued, h)
	}

	armed := 0
	for _, ih := range issued {
		if c.Armed(ih) {
			armed++
		}
	}
	if armed != 1 {
		t.Errorf("%d countdown handles armed, want 1", armed)
	}
}

func TestFinishPersistsBlockAndAdvances(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	c := newTestController(kv, 1)

	completeStep(t, c, "A001")

	repo := NewRepo(kv)
	trials, err := repo.LoadTrials(ctx, "A001", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(trials) != 30 {
		t.Fatalf("persisted %d trials, want 30", len(trials))
	}
	pool := c.Pool()
	for i, tr := range trials {
		if tr.Word != pool[i].Word {
			t.Errorf("trial %d word %q, want pool order %q", i, tr.Word, pool[i].Word)
		}
		if tr.Step != 1 || tr.ParticipantID != "A001" || tr.Condition != ConditionRM || tr.BlockID != "block-test" {
			t.Errorf("trial %d metadata = %+v", i, tr)
		}
		if !tr.Timestamp.Equal(testNow) {
			t.Errorf("trial %d timestamp = %s", i, tr.Timestamp)
		}
	}

	s, err := repo.LoadSession(ctx, "A001")
	if err != nil {
		t.Fatal(err)
	}
	if s.CurrentStep != 1 || s.Completed {
		t.Errorf("session after step 1 = %+v", s)
	}
	if c.SaveErr() != nil {
		t.Errorf("unexpected save error: %v", c.SaveErr())
	}
}

func TestThreeStepsComplete(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	c := newTestController(kv, 1)

	var sets []wordsets.SetName
	for step := 0; step < Steps; step++ {
		completeStep(t, c, "D004")
		sets = append(sets, c.Session().SetOrder[step])
		c.Reset()
	}

	s, err := NewRepo(kv).LoadSession(ctx, "D004")
	if err != nil {
		t.Fatal(err)
	}
	if s.CurrentStep != 3 || !s.Completed {
		t.Errorf("final session = %+v, want step 3 completed", s)
	}
	for step := 1; step <= Steps; step++ {
		trials, _ := NewRepo(kv).LoadTrials(ctx, "D004", step)
		if len(trials) != 30 {
			t.Errorf("step %d: %d trials", step, len(trials))
		}
		if trials[0].Set != sets[step-1] {
			t.Errorf("step %d used set %s, want %s", step, trials[0].Set, sets[step-1])
		}
		if trials[0].Condition != s.ConditionOrder[step-1] {
			t.Errorf("step %d condition %s, want %s", step, trials[0].Condition, s.ConditionOrder[step-1])
		}
	}

	// No fourth step.
	err = c.Login(ctx, "D004")
	if !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("fourth login: expected ErrSessionCompleted, got %v", err)
	}
	if c.Phase() != PhaseLogin {
		t.Errorf("phase = %s, want login", c.Phase())
	}
}

func TestResumeUsesNextStepAssignment(t *testing.T) {
	kv := store.NewMemoryKV()
	first := newTestController(kv, 1)
	completeStep(t, first, "A002")
	order := first.Session().SetOrder

	// Fresh controller, different randomness: same assignment, step 2.
	second := newTestController(kv, 77)
	loginToMemorize(t, second, "A002")
	s := second.Session()
	if s.CurrentStep != 1 {
		t.Fatalf("resumed at step %d, want 1", s.CurrentStep)
	}
	if s.TargetSet() != order[1] {
		t.Errorf("target set = %s, want %s", s.TargetSet(), order[1])
	}
	if s.Condition() != ConditionCO {
		t.Errorf("condition = %s, want CO", s.Condition())
	}
	shown := memorizeAll(t, second)
	want, _ := wordsets.Words(order[1])
	if shown[0] != want[0] {
		t.Errorf("first word %q, want %q", shown[0], want[0])
	}
}

func TestResetDuringMemorization(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	c := newTestController(kv, 1)
	loginToMemorize(t, c, "A001")
	before, _, _ := kv.Get(ctx, "experiment_A001")

	h, _ := c.StartMemorizing()
	h = c.Tick(ctx, h)
	c.Reset()

	if got := c.Tick(ctx, h); !got.IsZero() {
		t.Error("dwell tick after reset returned a live handle")
	}
	assertCleared(t, c)

	after, _, _ := kv.Get(ctx, "experiment_A001")
	if before != after {
		t.Errorf("reset changed stored session:\n%s\n%s", before, after)
	}
}

func TestResetDuringTest(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	c := newTestController(kv, 1)
	loginToMemorize(t, c, "A001")
	memorizeAll(t, c)

	h, _ := c.StartTest()
	h, _ = c.Answer(ctx, true)
	h = c.Tick(ctx, h)
	c.Reset()

	if got := c.Tick(ctx, h); !got.IsZero() {
		t.Error("countdown tick after reset returned a live handle")
	}
	assertCleared(t, c)

	if _, ok, _ := kv.Get(ctx, "data_A001_1"); ok {
		t.Error("partial block persisted after reset")
	}
	s, _ := NewRepo(kv).LoadSession(ctx, "A001")
	if s.CurrentStep != 0 {
		t.Errorf("step advanced to %d by an abandoned block", s.CurrentStep)
	}
}

func TestResetFromEveryPhase(t *testing.T) {
	steps := []struct {
		name  string
		reach func(t *testing.T, c *Controller)
	}{
		{"login", func(*testing.T, *Controller) {}},
		{"confirm", func(t *testing.T, c *Controller) {
			if err := c.Login(context.Background(), "A001"); err != nil {
				t.Fatal(err)
			}
		}},
		{"memorize", func(t *testing.T, c *Controller) { loginToMemorize(t, c, "A001") }},
		{"ready", func(t *testing.T, c *Controller) { loginToMemorize(t, c, "A001"); memorizeAll(t, c) }},
		{"result", func(t *testing.T, c *Controller) { completeStep(t, c, "A001") }},
	}
	for _, tt := range steps {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(store.NewMemoryKV(), 1)
			tt.reach(t, c)
			c.Reset()
			assertCleared(t, c)
		})
	}
}

func assertCleared(t *testing.T, c *Controller) {
	t.Helper()
	if c.Phase() != PhaseLogin {
		t.Errorf("phase = %s, want login", c.Phase())
	}
	if c.Session() != nil {
		t.Error("session not cleared")
	}
	if c.CurrentWord() != "" {
		t.Error("current word not cleared")
	}
	if i, n := c.WordProgress(); i != 0 || n != 0 {
		t.Errorf("word progress = %d/%d", i, n)
	}
	if c.PoolSize() != 0 || len(c.Trials()) != 0 || c.Score() != 0 || c.Remaining() != 0 {
		t.Error("test state not cleared")
	}
	if c.dwell != (TimerHandle{}) || c.countdown != (TimerHandle{}) {
		t.Error("timers still armed")
	}
}

func TestActionsRejectedInWrongPhase(t *testing.T) {
	ctx := context.Background()
	c := newTestController(store.NewMemoryKV(), 1)

	if err := c.Confirm(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Confirm in login: %v", err)
	}
	if _, err := c.StartTest(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("StartTest in login: %v", err)
	}
	if _, err := c.Answer(ctx, true); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Answer in login: %v", err)
	}

	loginToMemorize(t, c, "A001")
	if err := c.Login(ctx, "A001"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Login in memorize: %v", err)
	}
	if _, err := c.StartTest(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("StartTest before memorizing: %v", err)
	}
}

type failingSetKV struct{ *store.MemoryKV }

func (failingSetKV) Set(_ context.Context, key, _ string) error {
	return errors.New("quota exceeded: " + key)
}

// failingSessionKV stores trials but refuses to write sessions.
type failingSessionKV struct{ *store.MemoryKV }

func (f failingSessionKV) Set(ctx context.Context, key, value string) error {
	if key == SessionKey("A001") {
		return errors.New("disk full")
	}
	return f.MemoryKV.Set(ctx, key, value)
}

func TestSessionSaveFailureKeepsStep(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryKV()
	repo := NewRepo(mem)
	stored := sampleSession()
	stored.CurrentStep = 0
	if err := repo.SaveSession(ctx, stored); err != nil {
		t.Fatal(err)
	}

	c := newTestController(failingSessionKV{mem}, 1)
	completeStep(t, c, "A001")

	if c.SaveErr() == nil {
		t.Fatal("expected SaveErr to be set")
	}
	if trials, err := repo.LoadTrials(ctx, "A001", 1); err != nil || len(trials) != 30 {
		t.Errorf("stored trials = %d, %v; want 30", len(trials), err)
	}
	got, err := repo.LoadSession(ctx, "A001")
	if err != nil {
		t.Fatal(err)
	}
	if got.CurrentStep != 0 || got.Completed {
		t.Errorf("stored session = %+v, want step 0", got)
	}
	if c.Session().CurrentStep != 0 {
		t.Errorf("in-memory step = %d, want 0 to match storage", c.Session().CurrentStep)
	}
	if step, cond := c.FinishedBlock(); step != 1 || cond != ConditionRM {
		t.Errorf("FinishedBlock() = %d, %s; want 1, RM", step, cond)
	}

	// Signing in again repeats the unsaved step.
	c.Reset()
	if err := c.Login(ctx, "A001"); err != nil {
		t.Fatal(err)
	}
	if c.Session().StepNumber() != 1 {
		t.Errorf("resumed at step %d, want 1", c.Session().StepNumber())
	}
}

func TestFinishedBlock(t *testing.T) {
	c := newTestController(store.NewMemoryKV(), 1)
	if step, cond := c.FinishedBlock(); step != 0 || cond != "" {
		t.Errorf("FinishedBlock() before any block = %d, %q", step, cond)
	}

	completeStep(t, c, "A001")
	if step, cond := c.FinishedBlock(); step != 1 || cond != ConditionRM {
		t.Errorf("FinishedBlock() = %d, %s; want 1, RM", step, cond)
	}
	if c.Session().StepNumber() != 2 || c.Session().Condition() != ConditionLV {
		t.Errorf("session = step %d %s, want step 2 LV", c.Session().StepNumber(), c.Session().Condition())
	}

	c.Reset()
	if step, cond := c.FinishedBlock(); step != 0 || cond != "" {
		t.Errorf("FinishedBlock() after reset = %d, %q", step, cond)
	}
}

func TestFinishKeepsResultOnSaveError(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryKV()
	seeded := NewRepo(mem)
	if err := seeded.SaveSession(ctx, sampleSession()); err != nil {
		t.Fatal(err)
	}

	c := newTestController(failingSetKV{mem}, 1)
	loginToMemorize(t, c, "A001")
	memorizeAll(t, c)
	runTest(t, c, answerTruthfully)

	if c.Phase() != PhaseResult {
		t.Fatalf("phase = %s, want result", c.Phase())
	}
	if c.SaveErr() == nil {
		t.Error("expected SaveErr to be set")
	}
	if c.Score() != 30 {
		t.Errorf("score = %d, want 30", c.Score())
	}
}

func TestSummary(t *testing.T) {
	trials := []Trial{
		{IsTarget: true, Response: ResponseYes, IsCorrect: true},
		{IsTarget: true, Response: ResponseNo},
		{IsTarget: false, Response: ResponseYes},
		{IsTarget: false, Response: ResponseNo, IsCorrect: true},
		{IsTarget: true, Response: ResponseTimeout, IsTimeout: true},
	}
	s := Summarize(trials)
	want := Summary{Total: 5, Correct: 2, Hits: 1, Misses: 1, FalseAlarms: 1, CorrectRejections: 1, Timeouts: 1}
	if s != want {
		t.Errorf("Summarize = %+v, want %+v", s, want)
	}
}

func TestAccuracyPercent(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{30, 30, 100},
		{15, 30, 50},
		{29, 30, 97},
		{1, 30, 3},
		{0, 30, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		got := Summary{Total: tt.total, Correct: tt.correct}.AccuracyPercent()
		if got != tt.want {
			t.Errorf("AccuracyPercent(%d/%d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}
