// Package cue maps recorded steps to abstract sound-event requests.
//
// The dispatcher is a pure function from a step's classification flags
// and snapshot to an event identifier plus pitch/gain parameters. It
// performs no I/O; the host's audio subsystem renders events to sound.
package cue

import (
	"github.com/aretw0/strobe/pkg/domain"
)

// Kind identifies one abstract sound event.
type Kind string

const (
	KindComparison Kind = "comparison"
	KindMutation   Kind = "mutation"
	KindExplore    Kind = "explore"
	KindFrontier   Kind = "frontier"
	KindSuccess    Kind = "success"
	KindFailure    Kind = "failure"
)

// Event is one cue request. Pitch is a multiplier around 1.0 derived
// from normalized snapshot values; Gain is the dispatcher's output
// level in [0, 1].
type Event struct {
	Kind  Kind
	Pitch float64
	Gain  float64
}

// Dispatcher selects cue events for steps. The zero value is disabled;
// use NewDispatcher.
type Dispatcher struct {
	enabled bool
	gain    float64
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithGain sets the output level, clamped to [0, 1]. Default 0.5.
func WithGain(gain float64) Option {
	return func(d *Dispatcher) {
		d.gain = clamp(gain, 0, 1)
	}
}

// Disabled returns a dispatcher that never emits events. Dispatch on a
// disabled dispatcher is a silent no-op, not an error.
func Disabled() Option {
	return func(d *Dispatcher) {
		d.enabled = false
	}
}

// NewDispatcher creates an enabled dispatcher with default gain.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{enabled: true, gain: 0.5}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Enabled reports whether the dispatcher emits events.
func (d *Dispatcher) Enabled() bool {
	return d != nil && d.enabled
}

// Dispatch maps a step to a cue event. The second return value is false
// when the step is silent or the dispatcher is disabled.
func (d *Dispatcher) Dispatch(family domain.Family, step domain.Step) (Event, bool) {
	if !d.Enabled() {
		return Event{}, false
	}

	if step.Flags.Terminal {
		return d.event(terminalKind(family, step), 1.0), true
	}

	// Grid deltas carry their own cue semantics regardless of flags.
	if grid, ok := step.Snapshot.(domain.GridSnapshot); ok && grid.Changed != domain.NoPoint {
		switch grid.ChangedKind {
		case domain.CellVisited:
			return d.event(KindExplore, gridPitch(grid)), true
		case domain.CellFrontier:
			return d.event(KindFrontier, gridPitch(grid)), true
		case domain.CellPath:
			return d.event(KindMutation, gridPitch(grid)), true
		}
	}

	switch {
	case step.Flags.Mutation:
		return d.event(KindMutation, snapshotPitch(step)), true
	case step.Flags.Comparison:
		return d.event(KindComparison, snapshotPitch(step)), true
	}

	// Narration-only steps are silent.
	return Event{}, false
}

func (d *Dispatcher) event(kind Kind, pitch float64) Event {
	return Event{Kind: kind, Pitch: pitch, Gain: d.gain}
}

// terminalKind distinguishes success from failure without parsing the
// description: searching succeeds when a found index was recorded,
// pathfinding when the terminal delta is a path cell. The remaining
// families only terminate successfully.
func terminalKind(family domain.Family, step domain.Step) Kind {
	switch family {
	case domain.FamilySearching:
		if array, ok := step.Snapshot.(domain.ArraySnapshot); ok && array.Found >= 0 {
			return KindSuccess
		}
		return KindFailure
	case domain.FamilyPathfinding:
		if grid, ok := step.Snapshot.(domain.GridSnapshot); ok && grid.ChangedKind == domain.CellPath {
			return KindSuccess
		}
		return KindFailure
	}
	return KindSuccess
}

// snapshotPitch derives a deterministic pitch in [0.5, 1.5] from the
// magnitude of the highlighted elements, matching the renderer's
// emphasis. Steps without usable values pitch at 1.0.
func snapshotPitch(step domain.Step) float64 {
	switch snapshot := step.Snapshot.(type) {
	case domain.ArraySnapshot:
		return arrayPitch(snapshot.Values, step.Highlights)
	case domain.TreeSnapshot:
		return treePitch(snapshot, step.Highlights)
	case domain.GraphSnapshot:
		return graphPitch(snapshot)
	}
	return 1.0
}

func arrayPitch(values []int, highlights []int) float64 {
	if len(values) == 0 || len(highlights) == 0 {
		return 1.0
	}
	max := values[0]
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return 1.0
	}
	sum := 0.0
	count := 0
	for _, i := range highlights {
		if i >= 0 && i < len(values) {
			sum += float64(values[i])
			count++
		}
	}
	if count == 0 {
		return 1.0
	}
	avg := sum / float64(count)
	return clamp(0.5+avg/float64(max), 0.5, 1.5)
}

func treePitch(snapshot domain.TreeSnapshot, highlights []int) float64 {
	if len(snapshot.Nodes) == 0 || len(highlights) == 0 {
		return 1.0
	}
	handle := highlights[0]
	if handle < 0 || handle >= len(snapshot.Nodes) {
		return 1.0
	}
	max := snapshot.Nodes[0].Value
	for _, n := range snapshot.Nodes {
		if n.Value > max {
			max = n.Value
		}
	}
	if max <= 0 {
		return 1.0
	}
	return clamp(0.5+float64(snapshot.Nodes[handle].Value)/float64(max), 0.5, 1.5)
}

func graphPitch(snapshot domain.GraphSnapshot) float64 {
	if snapshot.ActiveEdge < 0 || snapshot.ActiveEdge >= len(snapshot.Edges) {
		return 1.0
	}
	max := 0
	for _, e := range snapshot.Edges {
		if e.Weight > max {
			max = e.Weight
		}
	}
	if max <= 0 {
		return 1.0
	}
	weight := snapshot.Edges[snapshot.ActiveEdge].Weight
	return clamp(0.5+float64(weight)/float64(max), 0.5, 1.5)
}

// gridPitch rises with the changed cell's row so exploration sweeps are
// audible as a contour.
func gridPitch(grid domain.GridSnapshot) float64 {
	if len(grid.Cells) == 0 {
		return 1.0
	}
	return clamp(0.5+float64(grid.Changed.Y)/float64(len(grid.Cells)), 0.5, 1.5)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
