package domain

// NoNode is the null arena handle.
const NoNode = -1

// TreeNode is one node of the tree arena. Children are addressed by
// stable integer handles rather than pointers, and nodes carry no
// parent links, which keeps snapshots a flat copy of the arena slice.
type TreeNode struct {
	Value  int
	Left   int
	Right  int
	Height int
}

// CopyNodes copies an arena slice for snapshotting.
func CopyNodes(nodes []TreeNode) []TreeNode {
	copied := make([]TreeNode, len(nodes))
	copy(copied, nodes)
	return copied
}
