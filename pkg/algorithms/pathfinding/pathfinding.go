// Package pathfinding implements the grid search executors. Each cell
// reclassification (frontier, visit, path) is recorded as a mutation
// step carrying a full grid snapshot, so replaying any single step
// reconstructs the whole board. Neighbor cost examinations feed the
// comparison counter without emitting steps of their own.
package pathfinding

import (
	"fmt"

	"github.com/aretw0/strobe/pkg/domain"
)

// Algorithm selects one pathfinding algorithm.
type Algorithm string

const (
	AStar    Algorithm = "astar"
	Dijkstra Algorithm = "dijkstra"
	BFS      Algorithm = "bfs"
	DFS      Algorithm = "dfs"
)

// Algorithms returns all pathfinding algorithms in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{AStar, Dijkstra, BFS, DFS}
}

// DisplayName returns the human-readable algorithm name.
func (a Algorithm) DisplayName() string {
	switch a {
	case AStar:
		return "A* Search"
	case Dijkstra:
		return "Dijkstra's Algorithm"
	case BFS:
		return "Breadth-First Search"
	case DFS:
		return "Depth-First Search"
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
	return "", fmt.Errorf("%w: pathfinding algorithm %q", domain.ErrUnknownAlgorithm, name)
}

// neighborOffsets is the fixed exploration order: right, down, left, up.
var neighborOffsets = [4]domain.Point{
	{X: 0, Y: 1},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
}

// Run executes the search over a copy of the grid and returns the step
// log plus counters. The grid must have both start and end markers set.
func Run(grid *Grid, algorithm Algorithm) (*domain.Log, domain.Counters, error) {
	if grid == nil || grid.Start() == domain.NoPoint || grid.End() == domain.NoPoint {
		return nil, domain.Counters{}, fmt.Errorf("%w: pathfinding requires start and end markers", domain.ErrMissingInput)
	}

	r := &gridRecorder{
		log:   domain.NewLog(domain.FamilyPathfinding),
		cells: grid.Cells(),
		start: grid.Start(),
		end:   grid.End(),
	}

	var parents map[domain.Point]domain.Point
	switch algorithm {
	case AStar:
		parents = r.astar(true)
	case Dijkstra:
		parents = r.astar(false)
	case BFS:
		parents = r.bfs()
	case DFS:
		parents = r.dfs()
	default:
		return nil, domain.Counters{}, fmt.Errorf("%w: pathfinding algorithm %q", domain.ErrUnknownAlgorithm, algorithm)
	}

	if parents == nil {
		r.noPath()
	} else {
		r.tracePath(parents)
	}
	return r.log, r.counters, nil
}

type gridRecorder struct {
	log      *domain.Log
	counters domain.Counters
	cells    [][]domain.CellKind
	start    domain.Point
	end      domain.Point
}

func (r *gridRecorder) record(description string, changed domain.Point, kind domain.CellKind, flags domain.Classification) {
	r.log.Append(domain.Step{
		Snapshot: domain.GridSnapshot{
			Cells:       domain.CopyGrid(r.cells),
			Changed:     changed,
			ChangedKind: kind,
		},
		Description: description,
		Flags:       flags,
	})
}

// mark reclassifies a cell and records the mutation. Start and end
// markers keep their kind on the board but still produce a step.
func (r *gridRecorder) mark(p domain.Point, kind domain.CellKind, description string) {
	if p != r.start && p != r.end {
		r.cells[p.Y][p.X] = kind
	}
	r.counters.Mutations++
	r.record(description, p, kind, domain.Classification{Mutation: true})
}

func (r *gridRecorder) visit(p domain.Point) {
	r.mark(p, domain.CellVisited, fmt.Sprintf("Visiting cell (%d, %d)", p.X, p.Y))
}

func (r *gridRecorder) frontier(p domain.Point) {
	r.mark(p, domain.CellFrontier, fmt.Sprintf("Adding cell (%d, %d) to the frontier", p.X, p.Y))
}

func (r *gridRecorder) tracePath(parents map[domain.Point]domain.Point) {
	path := []domain.Point{r.end}
	for p := r.end; p != r.start; {
		p = parents[p]
		path = append(path, p)
	}
	// Reverse to start-to-end order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	for _, p := range path[1 : len(path)-1] {
		r.mark(p, domain.CellPath, fmt.Sprintf("Tracing path through (%d, %d)", p.X, p.Y))
	}

	r.record(fmt.Sprintf("Path found: length %d", len(path)-1),
		r.end, domain.CellPath, domain.Classification{Terminal: true})
}

func (r *gridRecorder) noPath() {
	r.record("No path exists between start and end",
		domain.NoPoint, domain.CellEmpty, domain.Classification{Terminal: true})
}

func (r *gridRecorder) inBounds(p domain.Point) bool {
	return p.Y >= 0 && p.Y < len(r.cells) && p.X >= 0 && p.X < len(r.cells[p.Y])
}

func (r *gridRecorder) walkable(p domain.Point) bool {
	return r.inBounds(p) && r.cells[p.Y][p.X] != domain.CellWall
}

func (r *gridRecorder) neighbors(p domain.Point) []domain.Point {
	out := make([]domain.Point, 0, 4)
	for _, d := range neighborOffsets {
		n := domain.Point{X: p.X + d.X, Y: p.Y + d.Y}
		if r.walkable(n) {
			out = append(out, n)
		}
	}
	return out
}

func manhattan(a, b domain.Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// astar runs A* when heuristic is true, otherwise Dijkstra (heuristic
// identically zero). The open set is a plain slice scanned for the
// minimum f-score; the first of equal candidates wins, keeping runs
// deterministic.
func (r *gridRecorder) astar(heuristic bool) map[domain.Point]domain.Point {
	type scored struct {
		p domain.Point
		f int
	}

	gScore := map[domain.Point]int{r.start: 0}
	parents := map[domain.Point]domain.Point{}
	closed := map[domain.Point]bool{}
	open := []scored{{p: r.start, f: 0}}
	inOpen := map[domain.Point]bool{r.start: true}

	for len(open) > 0 {
		best := 0
		for i := 1; i < len(open); i++ {
			if open[i].f < open[best].f {
				best = i
			}
		}
		current := open[best].p
		open = append(open[:best], open[best+1:]...)
		delete(inOpen, current)

		if current == r.end {
			r.visit(current)
			return parents
		}
		if closed[current] {
			continue
		}
		closed[current] = true
		r.visit(current)

		for _, n := range r.neighbors(current) {
			if closed[n] {
				continue
			}
			tentative := gScore[current] + 1
			r.counters.Comparisons++
			if existing, seen := gScore[n]; seen && tentative >= existing {
				continue
			}
			gScore[n] = tentative
			parents[n] = current

			f := tentative
			if heuristic {
				f += manhattan(n, r.end)
			}
			open = append(open, scored{p: n, f: f})
			if !inOpen[n] {
				inOpen[n] = true
				r.frontier(n)
			}
		}
	}
	return nil
}

func (r *gridRecorder) bfs() map[domain.Point]domain.Point {
	parents := map[domain.Point]domain.Point{}
	seen := map[domain.Point]bool{r.start: true}
	queue := []domain.Point{r.start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == r.end {
			r.visit(current)
			return parents
		}
		r.visit(current)

		for _, n := range r.neighbors(current) {
			r.counters.Comparisons++
			if seen[n] {
				continue
			}
			seen[n] = true
			parents[n] = current
			queue = append(queue, n)
			r.frontier(n)
		}
	}
	return nil
}

func (r *gridRecorder) dfs() map[domain.Point]domain.Point {
	parents := map[domain.Point]domain.Point{}
	seen := map[domain.Point]bool{r.start: true}
	stack := []domain.Point{r.start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current == r.end {
			r.visit(current)
			return parents
		}
		r.visit(current)

		// Push in reverse so the first neighbor is explored first.
		ns := r.neighbors(current)
		for i := len(ns) - 1; i >= 0; i-- {
			n := ns[i]
			r.counters.Comparisons++
			if seen[n] {
				continue
			}
			seen[n] = true
			parents[n] = current
			stack = append(stack, n)
			r.frontier(n)
		}
	}
	return nil
}
