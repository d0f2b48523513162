// Package graph implements the graph-family executors: minimum
// spanning trees, topological ordering and strongly connected
// components. Edges are undirected for the MST algorithms and directed
// from From to To for the others.
package graph

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/aretw0/strobe/pkg/domain"
)

// Algorithm selects one graph algorithm.
type Algorithm string

const (
	KruskalMST      Algorithm = "kruskal"
	PrimMST         Algorithm = "prim"
	TopologicalSort Algorithm = "toposort"
	SCC             Algorithm = "scc"
)

// Algorithms returns all graph algorithms in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{KruskalMST, PrimMST, TopologicalSort, SCC}
}

// DisplayName returns the human-readable algorithm name.
func (a Algorithm) DisplayName() string {
	switch a {
	case KruskalMST:
		return "Kruskal's MST"
	case PrimMST:
		return "Prim's MST"
	case TopologicalSort:
		return "Topological Sort"
	case SCC:
		return "Strongly Connected Components"
	}
	return "Unknown"
}

// Parse maps a slug to an Algorithm.
func Parse(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: graph algorithm %q", domain.ErrUnknownAlgorithm, name)
}

// Graph is the executor input: a node list plus an edge list.
type Graph struct {
	Nodes []domain.GraphNode
	Edges []domain.GraphEdge
}

// Sample returns the six-node demonstration graph. Its edges form a
// DAG when read as directed, so it exercises every algorithm.
func Sample() *Graph {
	labels := []string{"A", "B", "C", "D", "E", "F"}
	nodes := make([]domain.GraphNode, len(labels))
	for i, label := range labels {
		nodes[i] = domain.GraphNode{ID: i, Label: label}
	}
	return &Graph{
		Nodes: nodes,
		Edges: []domain.GraphEdge{
			{From: 0, To: 1, Weight: 4},
			{From: 0, To: 3, Weight: 2},
			{From: 1, To: 2, Weight: 3},
			{From: 1, To: 4, Weight: 6},
			{From: 2, To: 5, Weight: 1},
			{From: 3, To: 4, Weight: 5},
			{From: 4, To: 5, Weight: 2},
		},
	}
}

// Random returns a reproducible graph with n nodes, roughly 50%
// pairwise connectivity and weights in [1, 20]. Edges always point
// from the lower to the higher node, so the result is acyclic.
func Random(n int, seed int64) *Graph {
	rng := rand.New(rand.NewSource(seed))

	nodes := make([]domain.GraphNode, n)
	for i := range nodes {
		nodes[i] = domain.GraphNode{ID: i, Label: nodeLabel(i)}
	}

	var edges []domain.GraphEdge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Intn(2) == 0 {
				edges = append(edges, domain.GraphEdge{
					From:   i,
					To:     j,
					Weight: rng.Intn(20) + 1,
				})
			}
		}
	}
	return &Graph{Nodes: nodes, Edges: edges}
}

// nodeLabel maps 0 to "A", 25 to "Z", 26 to "A1" and so on.
func nodeLabel(i int) string {
	letter := string(rune('A' + i%26))
	if i < 26 {
		return letter
	}
	return fmt.Sprintf("%s%d", letter, i/26)
}

// Run executes the algorithm over a copy of the graph and returns the
// step log plus counters.
func Run(g *Graph, algorithm Algorithm) (*domain.Log, domain.Counters, error) {
	if g == nil || len(g.Nodes) == 0 {
		return nil, domain.Counters{}, fmt.Errorf("%w: graph has no nodes", domain.ErrMissingInput)
	}

	r := &graphRecorder{
		log:   domain.NewLog(domain.FamilyGraph),
		nodes: append([]domain.GraphNode(nil), g.Nodes...),
		edges: append([]domain.GraphEdge(nil), g.Edges...),
	}

	switch algorithm {
	case KruskalMST:
		r.kruskal()
	case PrimMST:
		r.prim()
	case TopologicalSort:
		r.kahn()
	case SCC:
		r.tarjan()
	default:
		return nil, domain.Counters{}, fmt.Errorf("%w: graph algorithm %q", domain.ErrUnknownAlgorithm, algorithm)
	}
	return r.log, r.counters, nil
}

type graphRecorder struct {
	log      *domain.Log
	counters domain.Counters
	nodes    []domain.GraphNode
	edges    []domain.GraphEdge
}

func (r *graphRecorder) record(description string, activeEdge, activeNode int, flags domain.Classification) {
	nodes, edges := domain.CopyGraph(r.nodes, r.edges)
	r.log.Append(domain.Step{
		Snapshot: domain.GraphSnapshot{
			Nodes:      nodes,
			Edges:      edges,
			ActiveEdge: activeEdge,
			ActiveNode: activeNode,
		},
		Description: description,
		Flags:       flags,
	})
}

func (r *graphRecorder) edgeComparison(description string, edge int) {
	r.counters.Comparisons++
	r.edges[edge].Highlighted = true
	r.record(description, edge, -1, domain.Classification{Comparison: true})
	r.edges[edge].Highlighted = false
}

func (r *graphRecorder) edgeMutation(description string, edge int) {
	r.counters.Mutations++
	r.record(description, edge, -1, domain.Classification{Mutation: true})
}

func (r *graphRecorder) nodeMutation(description string, node int) {
	r.counters.Mutations++
	r.record(description, -1, node, domain.Classification{Mutation: true})
}

func (r *graphRecorder) narration(description string) {
	r.record(description, -1, -1, domain.Classification{})
}

func (r *graphRecorder) terminal(description string) {
	r.record(description, -1, -1, domain.Classification{Terminal: true})
}

func (r *graphRecorder) edgeLabel(e domain.GraphEdge) string {
	return fmt.Sprintf("%s-%s", r.nodes[e.From].Label, r.nodes[e.To].Label)
}

// kruskal grows the MST by considering edges in ascending weight order
// and joining components with union-find.
func (r *graphRecorder) kruskal() {
	order := make([]int, len(r.edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return r.edges[order[a]].Weight < r.edges[order[b]].Weight
	})
	r.narration("Sorting edges by weight")

	parent := make([]int, len(r.nodes))
	for i := range parent {
		parent[i] = i
	}
	var find func(x int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}

	weight := 0
	added := 0
	for _, idx := range order {
		edge := r.edges[idx]
		r.edgeComparison(fmt.Sprintf("Considering edge %s (weight %d)", r.edgeLabel(edge), edge.Weight), idx)

		from, to := find(edge.From), find(edge.To)
		if from == to {
			r.narration(fmt.Sprintf("Edge %s would create a cycle, skipping", r.edgeLabel(edge)))
			continue
		}

		parent[from] = to
		r.edges[idx].InMST = true
		r.nodes[edge.From].InMST = true
		r.nodes[edge.To].InMST = true
		weight += edge.Weight
		added++
		r.edgeMutation(fmt.Sprintf("Adding edge %s to the MST", r.edgeLabel(edge)), idx)

		if added == len(r.nodes)-1 {
			break
		}
	}

	if added == len(r.nodes)-1 {
		r.terminal(fmt.Sprintf("MST complete: total weight %d", weight))
	} else {
		r.terminal(fmt.Sprintf("Graph is disconnected: spanning forest weight %d", weight))
	}
}

// prim grows the MST from node 0, selecting the cheapest crossing edge
// with a linear scan. The first candidate wins ties, keeping runs
// deterministic.
func (r *graphRecorder) prim() {
	n := len(r.nodes)
	const unreached = 1 << 30

	inMST := make([]bool, n)
	key := make([]int, n)
	viaEdge := make([]int, n)
	for i := range key {
		key[i] = unreached
		viaEdge[i] = -1
	}
	key[0] = 0

	weight := 0
	for count := 0; count < n; count++ {
		u := -1
		for v := 0; v < n; v++ {
			if !inMST[v] && (u == -1 || key[v] < key[u]) {
				u = v
			}
		}
		if key[u] == unreached {
			break
		}

		inMST[u] = true
		r.nodes[u].InMST = true
		if viaEdge[u] >= 0 {
			r.edges[viaEdge[u]].InMST = true
			weight += key[u]
			r.edgeMutation(fmt.Sprintf("Adding node %s via edge %s", r.nodes[u].Label, r.edgeLabel(r.edges[viaEdge[u]])), viaEdge[u])
		} else {
			r.nodeMutation(fmt.Sprintf("Starting from node %s", r.nodes[u].Label), u)
		}

		for idx, edge := range r.edges {
			v := -1
			if edge.From == u {
				v = edge.To
			} else if edge.To == u {
				v = edge.From
			}
			if v == -1 || inMST[v] {
				continue
			}

			r.edgeComparison(fmt.Sprintf("Examining edge %s (weight %d)", r.edgeLabel(edge), edge.Weight), idx)
			if edge.Weight < key[v] {
				key[v] = edge.Weight
				viaEdge[v] = idx
			}
		}
	}

	connected := true
	for v := 0; v < n; v++ {
		if !inMST[v] {
			connected = false
			break
		}
	}
	if connected {
		r.terminal(fmt.Sprintf("MST complete: total weight %d", weight))
	} else {
		r.terminal(fmt.Sprintf("Graph is disconnected: reached component weight %d", weight))
	}
}

// kahn orders the nodes of a DAG by repeatedly removing zero in-degree
// nodes, lowest index first.
func (r *graphRecorder) kahn() {
	n := len(r.nodes)
	degree := make([]int, n)
	for _, edge := range r.edges {
		degree[edge.To]++
	}
	r.narration("Computing in-degrees")

	var queue []int
	for v := 0; v < n; v++ {
		if degree[v] == 0 {
			queue = append(queue, v)
		}
	}

	var order []string
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		r.nodes[u].Visited = true
		order = append(order, r.nodes[u].Label)
		r.nodeMutation(fmt.Sprintf("Visiting node %s (in-degree 0)", r.nodes[u].Label), u)

		for idx, edge := range r.edges {
			if edge.From != u {
				continue
			}
			r.edgeComparison(fmt.Sprintf("Removing edge %s", r.edgeLabel(edge)), idx)
			degree[edge.To]--
			if degree[edge.To] == 0 {
				queue = append(queue, edge.To)
			}
		}
	}

	if len(order) < n {
		r.terminal("Cycle detected, no topological order exists")
		return
	}
	r.terminal(fmt.Sprintf("Topological order: %s", strings.Join(order, ", ")))
}

// tarjan finds strongly connected components with a single DFS over the
// directed edges.
func (r *graphRecorder) tarjan() {
	n := len(r.nodes)
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}

	adjacency := make([][]int, n)
	for idx, edge := range r.edges {
		adjacency[edge.From] = append(adjacency[edge.From], idx)
	}

	var stack []int
	next := 0
	components := 0

	var strongconnect func(v int)
	strongconnect = func(v int) {
		index[v] = next
		lowlink[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true
		r.nodes[v].Visited = true
		r.nodeMutation(fmt.Sprintf("Visiting node %s", r.nodes[v].Label), v)

		for _, idx := range adjacency[v] {
			w := r.edges[idx].To
			r.edgeComparison(fmt.Sprintf("Following edge %s", r.edgeLabel(r.edges[idx])), idx)
			if index[w] == -1 {
				strongconnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] && index[w] < lowlink[v] {
				lowlink[v] = index[w]
			}
		}

		if lowlink[v] == index[v] {
			var members []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				members = append(members, r.nodes[w].Label)
				if w == v {
					break
				}
			}
			components++
			r.narration(fmt.Sprintf("Component found: {%s}", strings.Join(members, ", ")))
		}
	}

	for v := 0; v < n; v++ {
		if index[v] == -1 {
			strongconnect(v)
		}
	}
	r.terminal(fmt.Sprintf("Found %d strongly connected components", components))
}
