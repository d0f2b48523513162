// Package tree implements the tree-family executors: binary search
// trees, AVL trees and binary heaps. Unlike the array families, trees
// are stateful between runs; each operation on a Tree or Heap records
// its own step log while mutating the structure.
//
// Nodes live in a flat arena addressed by integer handles, so every
// snapshot is a plain copy of the arena slice and steps can highlight a
// node by handle.
package tree

import (
	"fmt"

	"github.com/aretw0/strobe/pkg/domain"
)

// Kind selects the balancing discipline of a Tree.
type Kind string

const (
	BST Kind = "bst"
	AVL Kind = "avl"
)

// DisplayName returns the human-readable tree kind.
func (k Kind) DisplayName() string {
	switch k {
	case BST:
		return "Binary Search Tree"
	case AVL:
		return "AVL Tree"
	}
	return "Unknown Tree"
}

// Order selects a traversal order.
type Order string

const (
	InOrder    Order = "inorder"
	PreOrder   Order = "preorder"
	PostOrder  Order = "postorder"
	LevelOrder Order = "levelorder"
)

// Orders returns all traversal orders in presentation order.
func Orders() []Order {
	return []Order{InOrder, PreOrder, PostOrder, LevelOrder}
}

// Tree is a binary search tree over an arena of nodes. AVL trees
// rebalance on insert; deletion follows plain BST semantics for both
// kinds.
type Tree struct {
	kind  Kind
	nodes []domain.TreeNode
	root  int
}

// NewBST creates an empty unbalanced tree.
func NewBST() *Tree {
	return &Tree{kind: BST, root: domain.NoNode}
}

// NewAVL creates an empty self-balancing tree.
func NewAVL() *Tree {
	return &Tree{kind: AVL, root: domain.NoNode}
}

// Kind returns the balancing discipline.
func (t *Tree) Kind() Kind { return t.kind }

// Size returns the number of nodes.
func (t *Tree) Size() int { return len(t.nodes) }

// Values returns the stored values in ascending order.
func (t *Tree) Values() []int {
	var out []int
	var walk func(h int)
	walk = func(h int) {
		if h == domain.NoNode {
			return
		}
		walk(t.nodes[h].Left)
		out = append(out, t.nodes[h].Value)
		walk(t.nodes[h].Right)
	}
	walk(t.root)
	return out
}

// Insert adds value to the tree and returns the recorded steps.
// Duplicates are ignored.
func (t *Tree) Insert(value int) (*domain.Log, domain.Counters) {
	r := t.recorder()
	if t.kind == AVL {
		t.root = t.avlInsert(t.root, value, r)
	} else {
		t.root = t.bstInsert(t.root, value, r)
	}
	r.terminal(fmt.Sprintf("Inserted %d into the tree", value), t.root)
	return r.log, r.counters
}

// Delete removes value from the tree and returns the recorded steps.
func (t *Tree) Delete(value int) (*domain.Log, domain.Counters) {
	r := t.recorder()
	t.root = t.bstDelete(t.root, value, r)

	// The freed arena slot is reclaimed only after the recursion has
	// fully unwound; compacting earlier would invalidate handles still
	// held on the stack.
	if r.freedSlot != domain.NoNode {
		t.compact(r.freedSlot)
		r.mutation(fmt.Sprintf("Removing node with value %d", r.freedValue), domain.NoNode)
	}
	r.terminal(fmt.Sprintf("Delete of %d completed", value), t.root)
	return r.log, r.counters
}

// Search looks value up and returns the recorded steps. The terminal
// step highlights the node when found.
func (t *Tree) Search(value int) (*domain.Log, domain.Counters) {
	r := t.recorder()
	r.narration(fmt.Sprintf("Searching for value %d", value), domain.NoNode)

	h := t.root
	for h != domain.NoNode {
		r.comparison(value, h)
		if value == t.nodes[h].Value {
			break
		}
		if value < t.nodes[h].Value {
			r.narration(fmt.Sprintf("%d < %d, searching left", value, t.nodes[h].Value), domain.NoNode)
			h = t.nodes[h].Left
		} else {
			r.narration(fmt.Sprintf("%d > %d, searching right", value, t.nodes[h].Value), domain.NoNode)
			h = t.nodes[h].Right
		}
	}

	if h != domain.NoNode {
		r.terminal(fmt.Sprintf("Found value %d in tree!", value), h)
	} else {
		r.terminal(fmt.Sprintf("Value %d not found in tree", value), domain.NoNode)
	}
	return r.log, r.counters
}

// Traverse visits every node in the given order, recording one step per
// visit, and returns the visit sequence alongside the log.
func (t *Tree) Traverse(order Order) (*domain.Log, []int, error) {
	r := t.recorder()

	var visited []int
	visit := func(h int) {
		visited = append(visited, t.nodes[h].Value)
		r.visitNode(h)
	}

	var walk func(h int)
	switch order {
	case InOrder:
		walk = func(h int) {
			if h == domain.NoNode {
				return
			}
			walk(t.nodes[h].Left)
			visit(h)
			walk(t.nodes[h].Right)
		}
	case PreOrder:
		walk = func(h int) {
			if h == domain.NoNode {
				return
			}
			visit(h)
			walk(t.nodes[h].Left)
			walk(t.nodes[h].Right)
		}
	case PostOrder:
		walk = func(h int) {
			if h == domain.NoNode {
				return
			}
			walk(t.nodes[h].Left)
			walk(t.nodes[h].Right)
			visit(h)
		}
	case LevelOrder:
		walk = func(h int) {
			if h == domain.NoNode {
				return
			}
			queue := []int{h}
			for len(queue) > 0 {
				n := queue[0]
				queue = queue[1:]
				visit(n)
				if t.nodes[n].Left != domain.NoNode {
					queue = append(queue, t.nodes[n].Left)
				}
				if t.nodes[n].Right != domain.NoNode {
					queue = append(queue, t.nodes[n].Right)
				}
			}
		}
	default:
		return nil, nil, fmt.Errorf("%w: traversal order %q", domain.ErrUnknownAlgorithm, order)
	}

	r.narration(fmt.Sprintf("Starting %s traversal", order), domain.NoNode)
	walk(t.root)
	r.terminal("Traversal completed", domain.NoNode)
	return r.log, visited, nil
}

func (t *Tree) recorder() *treeRecorder {
	return &treeRecorder{
		log:       domain.NewLog(domain.FamilyTree),
		tree:      t,
		freedSlot: domain.NoNode,
	}
}

func (t *Tree) bstInsert(h, value int, r *treeRecorder) int {
	if h == domain.NoNode {
		n := t.newNode(value)
		r.mutation(fmt.Sprintf("Creating new node with value %d", value), n)
		return n
	}

	r.comparison(value, h)
	switch {
	case value < t.nodes[h].Value:
		r.narration(fmt.Sprintf("%d < %d, going left", value, t.nodes[h].Value), domain.NoNode)
		t.nodes[h].Left = t.bstInsert(t.nodes[h].Left, value, r)
	case value > t.nodes[h].Value:
		r.narration(fmt.Sprintf("%d > %d, going right", value, t.nodes[h].Value), domain.NoNode)
		t.nodes[h].Right = t.bstInsert(t.nodes[h].Right, value, r)
	}
	t.updateHeight(h)
	return h
}

func (t *Tree) avlInsert(h, value int, r *treeRecorder) int {
	if h == domain.NoNode {
		n := t.newNode(value)
		r.mutation(fmt.Sprintf("Creating new node with value %d", value), n)
		return n
	}

	r.comparison(value, h)
	switch {
	case value < t.nodes[h].Value:
		r.narration(fmt.Sprintf("%d < %d, going left", value, t.nodes[h].Value), domain.NoNode)
		t.nodes[h].Left = t.avlInsert(t.nodes[h].Left, value, r)
	case value > t.nodes[h].Value:
		r.narration(fmt.Sprintf("%d > %d, going right", value, t.nodes[h].Value), domain.NoNode)
		t.nodes[h].Right = t.avlInsert(t.nodes[h].Right, value, r)
	default:
		return h
	}

	t.updateHeight(h)
	balance := t.balance(h)

	switch {
	case balance > 1 && value < t.nodes[t.nodes[h].Left].Value:
		return t.rotateRight(h, r)
	case balance < -1 && value > t.nodes[t.nodes[h].Right].Value:
		return t.rotateLeft(h, r)
	case balance > 1:
		t.nodes[h].Left = t.rotateLeft(t.nodes[h].Left, r)
		return t.rotateRight(h, r)
	case balance < -1:
		t.nodes[h].Right = t.rotateRight(t.nodes[h].Right, r)
		return t.rotateLeft(h, r)
	}
	return h
}

func (t *Tree) bstDelete(h, value int, r *treeRecorder) int {
	if h == domain.NoNode {
		r.narration(fmt.Sprintf("Value %d not found", value), domain.NoNode)
		return h
	}

	r.comparison(value, h)
	switch {
	case value < t.nodes[h].Value:
		t.nodes[h].Left = t.bstDelete(t.nodes[h].Left, value, r)
	case value > t.nodes[h].Value:
		t.nodes[h].Right = t.bstDelete(t.nodes[h].Right, value, r)
	default:
		if t.nodes[h].Left == domain.NoNode || t.nodes[h].Right == domain.NoNode {
			child := t.nodes[h].Left
			if child == domain.NoNode {
				child = t.nodes[h].Right
			}
			r.freedSlot = h
			r.freedValue = t.nodes[h].Value
			return child
		}

		// Two children: replace with the in-order successor, then
		// delete the successor from the right subtree.
		succ := t.nodes[h].Right
		for t.nodes[succ].Left != domain.NoNode {
			succ = t.nodes[succ].Left
		}
		succValue := t.nodes[succ].Value
		t.nodes[h].Value = succValue
		r.mutation(fmt.Sprintf("Replacing %d with in-order successor %d", value, succValue), h)
		t.nodes[h].Right = t.bstDelete(t.nodes[h].Right, succValue, r)
	}
	t.updateHeight(h)
	return h
}

func (t *Tree) rotateLeft(h int, r *treeRecorder) int {
	pivot := t.nodes[h].Right
	t.nodes[h].Right = t.nodes[pivot].Left
	t.nodes[pivot].Left = h
	t.updateHeight(h)
	t.updateHeight(pivot)
	r.rotation("Performing left rotation", pivot)
	return pivot
}

func (t *Tree) rotateRight(h int, r *treeRecorder) int {
	pivot := t.nodes[h].Left
	t.nodes[h].Left = t.nodes[pivot].Right
	t.nodes[pivot].Right = h
	t.updateHeight(h)
	t.updateHeight(pivot)
	r.rotation("Performing right rotation", pivot)
	return pivot
}

func (t *Tree) newNode(value int) int {
	t.nodes = append(t.nodes, domain.TreeNode{
		Value:  value,
		Left:   domain.NoNode,
		Right:  domain.NoNode,
		Height: 1,
	})
	return len(t.nodes) - 1
}

// compact removes the unlinked arena slot at idx by moving the last
// node into it and remapping handles.
func (t *Tree) compact(idx int) {
	last := len(t.nodes) - 1
	if idx != last {
		t.nodes[idx] = t.nodes[last]
		for i := 0; i < last; i++ {
			if t.nodes[i].Left == last {
				t.nodes[i].Left = idx
			}
			if t.nodes[i].Right == last {
				t.nodes[i].Right = idx
			}
		}
		if t.root == last {
			t.root = idx
		}
	}
	t.nodes = t.nodes[:last]
}

func (t *Tree) height(h int) int {
	if h == domain.NoNode {
		return 0
	}
	return t.nodes[h].Height
}

func (t *Tree) balance(h int) int {
	if h == domain.NoNode {
		return 0
	}
	return t.height(t.nodes[h].Left) - t.height(t.nodes[h].Right)
}

func (t *Tree) updateHeight(h int) {
	left := t.height(t.nodes[h].Left)
	right := t.height(t.nodes[h].Right)
	if left > right {
		t.nodes[h].Height = left + 1
	} else {
		t.nodes[h].Height = right + 1
	}
}

type treeRecorder struct {
	log      *domain.Log
	counters domain.Counters
	tree     *Tree

	// Slot unlinked by a delete, reclaimed after the recursion unwinds.
	freedSlot  int
	freedValue int
}

func (r *treeRecorder) snapshot(highlight int) domain.TreeSnapshot {
	return domain.TreeSnapshot{
		Nodes:     domain.CopyNodes(r.tree.nodes),
		Root:      r.tree.root,
		Highlight: highlight,
	}
}

func (r *treeRecorder) append(description string, highlight int, flags domain.Classification) {
	step := domain.Step{
		Snapshot:    r.snapshot(highlight),
		Description: description,
		Flags:       flags,
	}
	if highlight != domain.NoNode {
		step.Highlights = []int{highlight}
	}
	r.log.Append(step)
}

func (r *treeRecorder) comparison(value, h int) {
	r.counters.Comparisons++
	r.append(fmt.Sprintf("Comparing %d with %d", value, r.tree.nodes[h].Value),
		h, domain.Classification{Comparison: true})
}

func (r *treeRecorder) mutation(description string, highlight int) {
	r.counters.Mutations++
	r.append(description, highlight, domain.Classification{Mutation: true})
}

func (r *treeRecorder) rotation(description string, pivot int) {
	r.counters.Mutations++
	r.append(description, pivot, domain.Classification{Mutation: true})
}

func (r *treeRecorder) visitNode(h int) {
	r.append(fmt.Sprintf("Visiting node %d", r.tree.nodes[h].Value),
		h, domain.Classification{})
}

func (r *treeRecorder) narration(description string, highlight int) {
	r.append(description, highlight, domain.Classification{})
}

func (r *treeRecorder) terminal(description string, highlight int) {
	r.append(description, highlight, domain.Classification{Terminal: true})
}
