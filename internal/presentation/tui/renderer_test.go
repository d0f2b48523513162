package tui_test

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strobe/internal/presentation/tui"
	"github.com/aretw0/strobe/pkg/domain"
)

func ascii(t *testing.T, opts ...tui.Option) *tui.Renderer {
	t.Helper()
	return tui.NewRenderer(append([]tui.Option{tui.WithProfile(termenv.Ascii)}, opts...)...)
}

func TestRenderStep_ArrayColumns(t *testing.T) {
	r := ascii(t, tui.WithHeight(4))

	step := domain.Step{
		Snapshot:    domain.NewArraySnapshot([]int{4, 1, 2, 3}),
		Description: "Comparing elements",
		Highlights:  []int{1},
	}
	frame := r.RenderStep(step)
	lines := strings.Split(frame, "\n")

	// Tallest column reaches the top row, shortest only the bottom.
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "█   ", lines[0])
	assert.Equal(t, "████", lines[3])
	assert.Contains(t, frame, "Comparing elements")
}

func TestRenderStep_ArrayWindow(t *testing.T) {
	r := ascii(t, tui.WithHeight(1))

	snapshot := domain.NewArraySnapshot([]int{5, 5, 5, 5})
	snapshot.Low, snapshot.High = 1, 2
	frame := r.RenderStep(domain.Step{Snapshot: snapshot})

	// Columns outside the active window render dimmed.
	assert.Equal(t, "░██░", strings.Split(frame, "\n")[0])
}

func TestRenderStep_Grid(t *testing.T) {
	r := ascii(t)

	cells := [][]domain.CellKind{
		{domain.CellStart, domain.CellVisited},
		{domain.CellWall, domain.CellEnd},
	}
	frame := r.RenderStep(domain.Step{Snapshot: domain.GridSnapshot{Cells: cells, Changed: domain.NoPoint}})

	lines := strings.Split(frame, "\n")
	assert.Equal(t, "S░", lines[0])
	assert.Equal(t, "█E", lines[1])
}

func TestRenderStep_Tree(t *testing.T) {
	r := ascii(t)

	snapshot := domain.TreeSnapshot{
		Nodes: []domain.TreeNode{
			{Value: 5, Left: 1, Right: 2},
			{Value: 3, Left: domain.NoNode, Right: domain.NoNode},
			{Value: 8, Left: domain.NoNode, Right: domain.NoNode},
		},
		Root:      0,
		Highlight: domain.NoNode,
	}
	frame := r.RenderStep(domain.Step{Snapshot: snapshot})

	// Sideways layout: right child above the root, left below.
	assert.Equal(t, []string{"    8", "5", "    3", ""}, strings.Split(frame, "\n"))
}

func TestRenderStep_TreeEmpty(t *testing.T) {
	r := ascii(t)
	frame := r.RenderStep(domain.Step{Snapshot: domain.TreeSnapshot{Root: domain.NoNode}})
	assert.Contains(t, frame, "(empty)")
}

func TestRenderStep_Graph(t *testing.T) {
	r := ascii(t)

	snapshot := domain.GraphSnapshot{
		Nodes: []domain.GraphNode{
			{ID: 0, Label: "A", InMST: true},
			{ID: 1, Label: "B"},
		},
		Edges: []domain.GraphEdge{
			{From: 0, To: 1, Weight: 4, InMST: true},
		},
		ActiveEdge: -1,
		ActiveNode: -1,
	}
	frame := r.RenderStep(domain.Step{Snapshot: snapshot})

	assert.Contains(t, frame, "nodes: A B")
	assert.Contains(t, frame, "* A-B (4)")
}

func TestRenderStats(t *testing.T) {
	r := ascii(t)
	line := r.RenderStats(3, 10, domain.Counters{Comparisons: 7, Mutations: 2}, 1.5)
	assert.Equal(t, "step 3/10  comparisons 7  mutations 2  speed 1.5x", line)
}
