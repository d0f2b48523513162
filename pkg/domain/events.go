package domain

import (
	"context"
	"time"
)

// StepEvent is emitted each time the playback controller applies a
// step, whether by tick or by manual stepping.
type StepEvent struct {
	Family    Family
	Algorithm string
	Cursor    int
	Total     int
	Step      Step
	Timestamp time.Time
}

// StateEvent is emitted on every playback state transition.
type StateEvent struct {
	Family    Family
	Algorithm string
	From      PlaybackState
	To        PlaybackState
	Timestamp time.Time
}

// RunEvent is emitted exactly once per completed run, alongside the
// performance record.
type RunEvent struct {
	Family         Family
	Algorithm      string
	GenerationTime time.Duration
	Comparisons    int
	Mutations      int
	Steps          int
	Timestamp      time.Time
}

// LifecycleHooks defines callbacks for playback observability. All
// hooks are invoked synchronously on the host's tick goroutine; a nil
// hook is skipped.
type LifecycleHooks struct {
	OnStepApplied  func(context.Context, *StepEvent)
	OnStateChange  func(context.Context, *StateEvent)
	OnRunCompleted func(context.Context, *RunEvent)
}

// MergeHooks fans each event out to every hook set in order.
func MergeHooks(hooks ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnStepApplied: func(ctx context.Context, event *StepEvent) {
			for _, h := range hooks {
				if h.OnStepApplied != nil {
					h.OnStepApplied(ctx, event)
				}
			}
		},
		OnStateChange: func(ctx context.Context, event *StateEvent) {
			for _, h := range hooks {
				if h.OnStateChange != nil {
					h.OnStateChange(ctx, event)
				}
			}
		},
		OnRunCompleted: func(ctx context.Context, event *RunEvent) {
			for _, h := range hooks {
				if h.OnRunCompleted != nil {
					h.OnRunCompleted(ctx, event)
				}
			}
		},
	}
}
