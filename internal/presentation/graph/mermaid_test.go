package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/strobe/internal/presentation/graph"
	"github.com/aretw0/strobe/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	snapshot := domain.GraphSnapshot{
		Nodes: []domain.GraphNode{
			{ID: 0, Label: "A", InMST: true},
			{ID: 1, Label: "B"},
			{ID: 2, Label: "C"},
		},
		Edges: []domain.GraphEdge{
			{From: 0, To: 1, Weight: 4, InMST: true},
			{From: 1, To: 2, Weight: 7},
		},
		ActiveEdge: -1,
		ActiveNode: 2,
	}

	out := graph.GenerateMermaid(snapshot)

	assert.Contains(t, out, "graph LR")
	assert.Contains(t, out, `n0(("A"))`)
	assert.Contains(t, out, "n0 ===|4| n1")
	assert.Contains(t, out, "n1 ---|7| n2")
	assert.Contains(t, out, "class n0 selected;")
	assert.Contains(t, out, "class n2 active;")
}
