package dsl

import (
	"fmt"

	"github.com/aretw0/strobe/pkg/algorithms/graph"
	"github.com/aretw0/strobe/pkg/domain"
)

// Builder manages graph input construction. Nodes keep insertion order,
// so runs over built graphs are deterministic.
type Builder struct {
	labels []string
	index  map[string]int
	edges  []domain.GraphEdge
	errs   []error
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{
		index: make(map[string]int),
	}
}

// Node adds a labeled node. Adding an existing label is a no-op.
func (b *Builder) Node(label string) *Builder {
	if _, ok := b.index[label]; ok {
		return b
	}
	b.index[label] = len(b.labels)
	b.labels = append(b.labels, label)
	return b
}

// Edge adds a weighted edge between two labels, creating the nodes if
// needed.
func (b *Builder) Edge(from, to string, weight int) *Builder {
	if from == to {
		b.errs = append(b.errs, fmt.Errorf("self loop on %q", from))
		return b
	}
	if weight <= 0 {
		b.errs = append(b.errs, fmt.Errorf("edge %s-%s: weight must be positive, got %d", from, to, weight))
		return b
	}

	b.Node(from)
	b.Node(to)
	b.edges = append(b.edges, domain.GraphEdge{
		From:   b.index[from],
		To:     b.index[to],
		Weight: weight,
	})
	return b
}

// Build compiles the graph input. It fails on the first recorded
// construction error.
func (b *Builder) Build() (*graph.Graph, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	if len(b.labels) == 0 {
		return nil, fmt.Errorf("%w: graph has no nodes", domain.ErrMissingInput)
	}

	nodes := make([]domain.GraphNode, len(b.labels))
	for i, label := range b.labels {
		nodes[i] = domain.GraphNode{ID: i, Label: label}
	}
	edges := make([]domain.GraphEdge, len(b.edges))
	copy(edges, b.edges)

	return &graph.Graph{Nodes: nodes, Edges: edges}, nil
}
