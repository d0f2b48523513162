// Package playback replays recorded step logs under host-driven time.
//
// The controller is the time-driven half of the record/replay split:
// executors run eagerly and silently, the controller walks the
// resulting log one step per delay interval. It owns no goroutine and
// no timer; the host calls Tick once per frame and the controller
// decides whether enough wall-clock time has passed to advance.
package playback

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/strobe/internal/logging"
	"github.com/aretw0/strobe/pkg/cue"
	"github.com/aretw0/strobe/pkg/domain"
	"github.com/aretw0/strobe/pkg/perf"
)

// Generator produces a fresh step log for one run. It is invoked
// synchronously by Start; generation time is measured around the call.
type Generator func() (*domain.Log, domain.Counters, error)

// Controller is the playback state machine for one algorithm selection.
// It is not safe for concurrent use; the host drives it from a single
// goroutine.
type Controller struct {
	family    domain.Family
	algorithm string
	generate  Generator
	inputSize int

	log            *domain.Log
	counters       domain.Counters
	generationTime time.Duration

	state       domain.PlaybackState
	cursor      int
	current     domain.Step
	applied     bool
	lastAdvance time.Time

	baseDelay time.Duration
	speed     float64

	dispatcher *cue.Dispatcher
	pending    []cue.Event
	recorder   *perf.Recorder
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
	recorded   bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithSpeed sets the initial speed multiplier, clamped to the valid
// range.
func WithSpeed(multiplier float64) Option {
	return func(c *Controller) {
		c.speed = clampSpeed(multiplier)
	}
}

// WithBaseDelay overrides the family's default per-step delay.
func WithBaseDelay(delay time.Duration) Option {
	return func(c *Controller) {
		c.baseDelay = delay
	}
}

// WithDispatcher routes applied steps through a cue dispatcher.
func WithDispatcher(dispatcher *cue.Dispatcher) Option {
	return func(c *Controller) {
		c.dispatcher = dispatcher
	}
}

// WithRecorder emits a performance record on each completion.
func WithRecorder(recorder *perf.Recorder) Option {
	return func(c *Controller) {
		c.recorder = recorder
	}
}

// WithHooks registers lifecycle callbacks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Controller) {
		c.hooks = hooks
	}
}

// WithLogger sets the controller's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithInputSize declares the run's input size, used for the memory
// estimate in performance records.
func WithInputSize(size int) Option {
	return func(c *Controller) {
		c.inputSize = size
	}
}

// New creates a stopped controller for one family/algorithm selection.
func New(family domain.Family, algorithm string, generate Generator, opts ...Option) *Controller {
	c := &Controller{
		family:    family,
		algorithm: algorithm,
		generate:  generate,
		state:     domain.StateStopped,
		baseDelay: domain.BaseDelayFor(family),
		speed:     1.0,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start arms a run. From Stopped it invokes the generator, measures
// generation time and begins playback; from Paused it resumes. A
// generator failure (missing input, unknown algorithm) is returned to
// the host with the state unchanged. Running and Completed are no-ops.
func (c *Controller) Start(ctx context.Context) error {
	switch c.state {
	case domain.StateRunning, domain.StateCompleted:
		return nil
	case domain.StatePaused:
		c.transition(ctx, domain.StateRunning)
		return nil
	}

	began := time.Now()
	log, counters, err := c.generate()
	if err != nil {
		c.logger.Warn("run rejected", "err", err, "family", c.family, "algorithm", c.algorithm)
		return err
	}
	c.generationTime = time.Since(began)
	c.log = log
	c.counters = counters
	c.cursor = 0
	c.current = domain.Step{}
	c.applied = false
	c.recorded = false
	c.lastAdvance = time.Time{}

	c.logger.Debug("log generated",
		"family", c.family,
		"algorithm", c.algorithm,
		"steps", log.Len(),
		"generation_time", c.generationTime,
	)

	c.transition(ctx, domain.StateRunning)

	// A trivial log (empty input) completes on the spot rather than
	// waiting for a tick.
	if c.log.Len() == 0 {
		c.complete(ctx)
	} else if c.log.Len() == 1 && c.log.At(0).Flags.Terminal {
		c.applyStep(ctx, time.Now())
		c.complete(ctx)
	}
	return nil
}

// Pause suspends a running playback. Any other state is a no-op.
func (c *Controller) Pause(ctx context.Context) {
	if c.state == domain.StateRunning {
		c.transition(ctx, domain.StatePaused)
	}
}

// Reset returns to Stopped from any state. The log is discarded; the
// next Start regenerates it. No performance record is emitted.
func (c *Controller) Reset(ctx context.Context) {
	c.log = nil
	c.counters = domain.Counters{}
	c.generationTime = 0
	c.cursor = 0
	c.current = domain.Step{}
	c.applied = false
	c.pending = nil
	c.recorded = false
	c.lastAdvance = time.Time{}
	c.transition(ctx, domain.StateStopped)
}

// Tick advances playback when Running and enough wall-clock time has
// elapsed since the last advancement. It reports whether a step was
// applied. Speed changes take effect here, never mid-interval.
func (c *Controller) Tick(ctx context.Context, now time.Time) bool {
	if c.state != domain.StateRunning {
		return false
	}

	if !c.lastAdvance.IsZero() && now.Sub(c.lastAdvance) < c.interval() {
		return false
	}

	c.applyStep(ctx, now)
	c.lastAdvance = now
	if c.cursor == c.log.Len() {
		c.complete(ctx)
	}
	return true
}

// StepForward applies exactly one step without consulting the clock.
// It is a no-op while Running, and on an empty or exhausted log.
func (c *Controller) StepForward(ctx context.Context) {
	if c.state == domain.StateRunning || c.log.Len() == 0 || c.cursor >= c.log.Len() {
		return
	}
	c.applyStep(ctx, time.Now())
	if c.cursor == c.log.Len() {
		c.complete(ctx)
	}
}

// StepBackward moves the cursor back one step and re-applies the
// snapshot recorded at the new position. It is a no-op while Running or
// at cursor zero. Stepping back out of Completed resumes Paused.
func (c *Controller) StepBackward(ctx context.Context) {
	if c.state == domain.StateRunning || c.cursor == 0 {
		return
	}

	c.cursor--
	if c.cursor == 0 {
		c.current = domain.Step{}
		c.applied = false
	} else {
		c.current = c.log.At(c.cursor - 1)
		c.applied = true
	}

	if c.state == domain.StateCompleted {
		c.transition(ctx, domain.StatePaused)
	}
}

// SetSpeed updates the speed multiplier, clamped to [0.1, 10]. A
// non-positive multiplier is rejected. The new speed applies from the
// next tick; no steps are skipped or replayed.
func (c *Controller) SetSpeed(multiplier float64) error {
	if multiplier <= 0 {
		return domain.ErrInvalidSpeed
	}
	c.speed = clampSpeed(multiplier)
	return nil
}

// SetPerformanceCallback registers the host callback on the underlying
// recorder. A controller without a recorder ignores the call.
func (c *Controller) SetPerformanceCallback(callback perf.Callback) {
	if c.recorder != nil {
		c.recorder.SetCallback(callback)
	}
}

// DrainCues returns the cue events buffered since the last drain and
// clears the buffer.
func (c *Controller) DrainCues() []cue.Event {
	events := c.pending
	c.pending = nil
	return events
}

// State returns the current playback state.
func (c *Controller) State() domain.PlaybackState { return c.state }

// Progress returns the cursor and the log length.
func (c *Controller) Progress() (cursor, total int) {
	return c.cursor, c.log.Len()
}

// Current returns the last applied step. The second return value is
// false before any step has been applied.
func (c *Controller) Current() (domain.Step, bool) {
	return c.current, c.applied
}

// Snapshot returns the snapshot of the last applied step, or nil before
// any step has been applied. Callers must not mutate it.
func (c *Controller) Snapshot() domain.Snapshot {
	if !c.applied {
		return nil
	}
	return c.current.Snapshot
}

// Highlights returns the highlight indices of the last applied step.
func (c *Controller) Highlights() []int {
	if !c.applied {
		return nil
	}
	return c.current.Highlights
}

// Description returns the description of the last applied step.
func (c *Controller) Description() string {
	if !c.applied {
		return ""
	}
	return c.current.Description
}

// Counters returns the counters recorded at generation time. They are
// independent of playback speed and progress.
func (c *Controller) Counters() domain.Counters { return c.counters }

// GenerationTime returns the wall-clock duration of the last generator
// invocation.
func (c *Controller) GenerationTime() time.Duration { return c.generationTime }

// Family returns the controller's algorithm family.
func (c *Controller) Family() domain.Family { return c.family }

// Algorithm returns the selected algorithm's slug.
func (c *Controller) Algorithm() string { return c.algorithm }

// Speed returns the current speed multiplier.
func (c *Controller) Speed() float64 { return c.speed }

// BaseDelay returns the per-step delay before speed scaling.
func (c *Controller) BaseDelay() time.Duration { return c.baseDelay }

// SetInput swaps the generator for a new algorithm selection, resetting
// any existing run. The old log is dropped atomically.
func (c *Controller) SetInput(ctx context.Context, algorithm string, generate Generator, inputSize int) {
	c.Reset(ctx)
	c.algorithm = algorithm
	c.generate = generate
	c.inputSize = inputSize
}

func (c *Controller) interval() time.Duration {
	return time.Duration(float64(c.baseDelay) / c.speed)
}

func (c *Controller) applyStep(ctx context.Context, now time.Time) {
	step := c.log.At(c.cursor)
	c.current = step
	c.applied = true
	c.cursor++

	if event, ok := c.dispatcher.Dispatch(c.family, step); ok {
		c.pending = append(c.pending, event)
	}

	if c.hooks.OnStepApplied != nil {
		c.hooks.OnStepApplied(ctx, &domain.StepEvent{
			Family:    c.family,
			Algorithm: c.algorithm,
			Cursor:    c.cursor,
			Total:     c.log.Len(),
			Step:      step,
			Timestamp: now,
		})
	}
}

// complete transitions into Completed and emits the performance record
// exactly once per run.
func (c *Controller) complete(ctx context.Context) {
	c.transition(ctx, domain.StateCompleted)
	if c.recorded {
		return
	}
	c.recorded = true

	if c.recorder != nil {
		c.recorder.Record(ctx, c.family, c.algorithm, c.generationTime, c.counters, c.inputSize)
	}
	if c.hooks.OnRunCompleted != nil {
		c.hooks.OnRunCompleted(ctx, &domain.RunEvent{
			Family:         c.family,
			Algorithm:      c.algorithm,
			GenerationTime: c.generationTime,
			Comparisons:    c.counters.Comparisons,
			Mutations:      c.counters.Mutations,
			Steps:          c.log.Len(),
			Timestamp:      time.Now(),
		})
	}
}

func (c *Controller) transition(ctx context.Context, to domain.PlaybackState) {
	if c.state == to {
		return
	}
	from := c.state
	c.state = to

	c.logger.Debug("state change", "from", from, "to", to, "algorithm", c.algorithm)
	if c.hooks.OnStateChange != nil {
		c.hooks.OnStateChange(ctx, &domain.StateEvent{
			Family:    c.family,
			Algorithm: c.algorithm,
			From:      from,
			To:        to,
			Timestamp: time.Now(),
		})
	}
}

func clampSpeed(multiplier float64) float64 {
	if multiplier < domain.MinSpeed {
		return domain.MinSpeed
	}
	if multiplier > domain.MaxSpeed {
		return domain.MaxSpeed
	}
	return multiplier
}
