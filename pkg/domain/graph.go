package domain

// GraphNode is one vertex of the graph family's input.
type GraphNode struct {
	ID      int
	Label   string
	Visited bool
	InMST   bool
}

// GraphEdge is one edge of the graph family's input. From and To index
// into the node slice.
type GraphEdge struct {
	From        int
	To          int
	Weight      int
	InMST       bool
	Highlighted bool
}

// CopyGraph copies node and edge slices for snapshotting.
func CopyGraph(nodes []GraphNode, edges []GraphEdge) ([]GraphNode, []GraphEdge) {
	n := make([]GraphNode, len(nodes))
	copy(n, nodes)
	e := make([]GraphEdge, len(edges))
	copy(e, edges)
	return n, e
}
