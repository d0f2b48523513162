package domain

// Classification tags a step for the cue dispatcher and the statistics
// counters. The flags are not mutually exclusive, and algorithmic logic
// never branches on them.
type Classification struct {
	// Comparison marks a step recorded before branching on the result
	// of comparing two elements.
	Comparison bool

	// Mutation marks a structural change: swap, array write, cell
	// reclassification, node insertion/deletion/rotation. The snapshot
	// of a mutation step is always post-mutation.
	Mutation bool

	// Terminal marks the final step of a run (found/not-found,
	// path-found/no-path). No steps follow a terminal step.
	Terminal bool
}

// Snapshot is the family-specific state captured by a step. Concrete
// shapes are ArraySnapshot, GridSnapshot, TreeSnapshot and
// GraphSnapshot. Snapshots are self-contained: re-applying any recorded
// snapshot yields a consistent visible state, which is what makes
// backward stepping a simple cursor move.
type Snapshot interface {
	isSnapshot()
}

// Step is one immutable animation frame: a snapshot of algorithm state
// plus display and audio metadata. Once appended to a Log a step is
// never mutated; constructors copy slice data so that later algorithm
// mutation cannot retroactively corrupt earlier steps.
type Step struct {
	Snapshot    Snapshot
	Description string

	// Highlights are indices (array positions, arena handles, edge
	// indices) into the snapshot that the renderer should emphasize.
	Highlights []int

	Flags Classification
}

// Counters aggregates the algorithmic work of one run. They are
// incremented at generation time, never at playback time.
type Counters struct {
	Comparisons int
	Mutations   int
}

// Add accumulates other into c.
func (c *Counters) Add(other Counters) {
	c.Comparisons += other.Comparisons
	c.Mutations += other.Mutations
}
