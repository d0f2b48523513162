package registry

import (
	"github.com/aretw0/strobe/pkg/algorithms/graph"
	"github.com/aretw0/strobe/pkg/algorithms/pathfinding"
	"github.com/aretw0/strobe/pkg/algorithms/searching"
	"github.com/aretw0/strobe/pkg/algorithms/sorting"
)

var sortingInfo = map[sorting.Algorithm]string{
	sorting.Bubble: `# Bubble Sort

Repeatedly steps through the array, swapping adjacent elements that are
out of order. Larger values bubble to the end on each pass.

- Time: O(n²), Space: O(1)
- Stable; adaptive on nearly-sorted input`,
	sorting.Selection: `# Selection Sort

Finds the minimum of the unsorted suffix and swaps it into place,
growing the sorted prefix one element per pass.

- Time: O(n²), Space: O(1)
- Exactly n-1 swaps; not stable`,
	sorting.Insertion: `# Insertion Sort

Inserts each element into its position within the sorted prefix by
shifting larger elements right.

- Time: O(n²) worst, O(n) on sorted input, Space: O(1)
- Stable; the method of choice for small arrays`,
	sorting.Quick: `# Quick Sort

Partitions around a pivot so smaller elements land left and larger
right, then recurses into both halves.

- Time: O(n log n) average, O(n²) worst, Space: O(log n)
- Not stable; in-place partitioning (Lomuto scheme)`,
	sorting.Merge: `# Merge Sort

Divides the array in half, sorts each half and merges the sorted
halves.

- Time: O(n log n) always, Space: O(n)
- Stable; predictable performance independent of input order`,
	sorting.Heap: `# Heap Sort

Builds a max heap over the array, then repeatedly swaps the root to the
end and restores the heap over the shrinking prefix.

- Time: O(n log n) always, Space: O(1)
- Not stable; in-place with no recursion`,
	sorting.Tournament: `# Tournament Sort

Runs a selection tournament over the unsorted suffix: every remaining
element challenges the current winner, and the round winner moves to
the front of the suffix.

- Time: O(n²) in this array form, Space: O(1)
- Not stable; a stepping stone toward heap-based selection`,
	sorting.Intro: `# Intro Sort

Quicksort with a recursion depth limit; ranges that exceed twice the
log depth fall back to heap sort.

- Time: O(n log n) guaranteed, Space: O(log n)
- Not stable; the hybrid used by most standard libraries`,
	sorting.Patience: `# Patience Sort

Deals elements onto descending piles as in the solitaire card game,
then merges the piles by repeatedly extracting the smallest pile top.

- Time: O(n log n) with a heap merge, O(n·p) here with p piles, Space: O(n)
- Pile count equals the longest increasing subsequence length`,
}

var searchingInfo = map[searching.Algorithm]string{
	searching.Linear: `# Linear Search

Checks every element in order until the target is found.

- Time: O(n), Space: O(1)
- Works on unsorted input`,
	searching.Binary: `# Binary Search

Halves the sorted search window around the middle element until the
target is isolated.

- Time: O(log n), Space: O(1)
- Requires sorted input`,
	searching.Interpolation: `# Interpolation Search

Estimates the target's position from the value distribution instead of
always probing the middle.

- Time: O(log log n) on uniform data, O(n) worst, Space: O(1)
- Requires sorted, roughly uniform input`,
	searching.Exponential: `# Exponential Search

Doubles a probe bound until it passes the target, then binary-searches
the final block.

- Time: O(log n), Space: O(1)
- Good when the target sits near the front`,
	searching.Jump: `# Jump Search

Jumps ahead in √n blocks, then scans the bounding block linearly.

- Time: O(√n), Space: O(1)
- Requires sorted input`,
}

var pathfindingInfo = map[pathfinding.Algorithm]string{
	pathfinding.AStar: `# A* Search

Expands cells in order of path cost plus a Manhattan-distance estimate
to the goal, finding a shortest path while exploring far fewer cells
than Dijkstra.

- Time: O(E log V) with a priority frontier
- Optimal when the heuristic never overestimates`,
	pathfinding.Dijkstra: `# Dijkstra's Algorithm

Expands cells in order of exact distance from the start; the first time
the goal is reached the path is shortest.

- Time: O(E log V)
- A* with a zero heuristic`,
	pathfinding.BFS: `# Breadth-First Search

Explores the grid ring by ring from the start. On an unweighted grid
this yields a shortest path.

- Time: O(V + E), Space: O(V)
- The frontier is a FIFO queue`,
	pathfinding.DFS: `# Depth-First Search

Follows one corridor as deep as possible before backtracking. Finds a
path quickly but not a shortest one.

- Time: O(V + E), Space: O(V)
- The frontier is a LIFO stack`,
}

var treeInfo = map[string]string{
	"bst": `# Binary Search Tree

Maintains the property left subtree < node < right subtree for
efficient searching.

- Time: O(log n) average, O(n) worst, Space: O(n)
- Insert/search/delete cost O(h); can degenerate to a list`,
	"avl": `# AVL Tree

Self-balancing BST where the height difference of any node's subtrees
is at most 1, restored by rotations after insertion.

- Time: O(log n) guaranteed, Space: O(n)
- Rotations: left, right, left-right, right-left`,
	"minheap": `# Min Heap

Complete binary tree where each parent is no larger than its children;
the root is the minimum.

- Time: O(log n) insert/extract, O(1) min, Space: O(n)
- Array layout: children of i at 2i+1 and 2i+2`,
	"maxheap": `# Max Heap

Complete binary tree where each parent is no smaller than its children;
the root is the maximum.

- Time: O(log n) insert/extract, O(1) max, Space: O(n)
- Backs heap sort and priority queues`,
}

var graphInfo = map[graph.Algorithm]string{
	graph.KruskalMST: `# Kruskal's MST

Sorts edges by weight and adds each edge that joins two components,
using union-find for cycle detection.

- Time: O(E log E)
- Grows a forest that converges to the MST`,
	graph.PrimMST: `# Prim's MST

Grows the tree from a start vertex, always adding the cheapest edge
that crosses the frontier.

- Time: O(V²) with linear scans
- Produces the same total weight as Kruskal`,
	graph.TopologicalSort: `# Topological Sort

Orders the vertices of a DAG so that every edge points from an earlier
to a later vertex, by repeatedly removing zero in-degree vertices.

- Time: O(V + E)
- Detects cycles as a side effect`,
	graph.SCC: `# Strongly Connected Components

Finds maximal vertex sets where every vertex reaches every other, with
Tarjan's single-pass DFS over index/lowlink values.

- Time: O(V + E)
- Each DFS stack prefix with matching lowlink is one component`,
}
