package domain

// ArraySnapshot is the snapshot shape shared by sorting, searching and
// heap operations: a full copy of the working array plus optional
// window and pivot markers.
type ArraySnapshot struct {
	Values []int

	// Low and High bound the active search window; -1 when unused.
	Low  int
	High int

	// Pivot is the current pivot index; -1 when unused.
	Pivot int

	// Found is the index of a located target; -1 when unused.
	Found int
}

func (ArraySnapshot) isSnapshot() {}

// NewArraySnapshot copies values and returns a snapshot with all
// markers cleared.
func NewArraySnapshot(values []int) ArraySnapshot {
	copied := make([]int, len(values))
	copy(copied, values)
	return ArraySnapshot{Values: copied, Low: -1, High: -1, Pivot: -1, Found: -1}
}

// GridSnapshot is a full copy of the pathfinding grid. Changed names
// the cell this step reclassified, so cues and renderers can react to
// the delta without diffing grids.
type GridSnapshot struct {
	Cells [][]CellKind

	// Changed is the cell reclassified by this step; {-1, -1} if the
	// step did not change a cell.
	Changed Point

	// ChangedKind is the new classification of Changed.
	ChangedKind CellKind
}

func (GridSnapshot) isSnapshot() {}

// TreeSnapshot is a structural copy of the node arena. Handles are
// stable across snapshots of the same run.
type TreeSnapshot struct {
	Nodes []TreeNode
	Root  int

	// Highlight is the arena handle the renderer should emphasize;
	// NoNode if none.
	Highlight int
}

func (TreeSnapshot) isSnapshot() {}

// GraphSnapshot is a full copy of the graph's nodes and edges.
type GraphSnapshot struct {
	Nodes []GraphNode
	Edges []GraphEdge

	// ActiveEdge and ActiveNode index the element under consideration;
	// -1 if none.
	ActiveEdge int
	ActiveNode int
}

func (GraphSnapshot) isSnapshot() {}
