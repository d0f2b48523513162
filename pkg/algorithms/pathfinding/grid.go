package pathfinding

import (
	"math/rand"

	"github.com/aretw0/strobe/pkg/domain"
)

// Grid is the pathfinding input: a rectangular field of cells plus the
// user-placed start and end markers. The grid is host-mutable between
// runs; executors work on a copy and never touch it.
type Grid struct {
	width  int
	height int
	cells  [][]domain.CellKind
	start  domain.Point
	end    domain.Point
}

// NewGrid creates an empty grid with the default dimensions.
func NewGrid() *Grid {
	return NewGridSize(domain.GridWidth, domain.GridHeight)
}

// NewGridSize creates an empty width×height grid.
func NewGridSize(width, height int) *Grid {
	cells := make([][]domain.CellKind, height)
	for y := range cells {
		cells[y] = make([]domain.CellKind, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
		start:  domain.NoPoint,
		end:    domain.NoPoint,
	}
}

// Width returns the grid width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height.
func (g *Grid) Height() int { return g.height }

// Start returns the start marker, or NoPoint if unset.
func (g *Grid) Start() domain.Point { return g.start }

// End returns the end marker, or NoPoint if unset.
func (g *Grid) End() domain.Point { return g.end }

// InBounds reports whether p addresses a cell.
func (g *Grid) InBounds(p domain.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// KindAt returns the cell classification at p.
func (g *Grid) KindAt(p domain.Point) domain.CellKind {
	return g.cells[p.Y][p.X]
}

// Cells returns a deep copy of the grid cells.
func (g *Grid) Cells() [][]domain.CellKind {
	return domain.CopyGrid(g.cells)
}

// SetStart places the start marker, clearing the previous one.
func (g *Grid) SetStart(p domain.Point) {
	if !g.InBounds(p) {
		return
	}
	if g.start != domain.NoPoint {
		g.cells[g.start.Y][g.start.X] = domain.CellEmpty
	}
	g.cells[p.Y][p.X] = domain.CellStart
	g.start = p
	if g.end == p {
		g.end = domain.NoPoint
	}
}

// SetEnd places the end marker, clearing the previous one.
func (g *Grid) SetEnd(p domain.Point) {
	if !g.InBounds(p) {
		return
	}
	if g.end != domain.NoPoint {
		g.cells[g.end.Y][g.end.X] = domain.CellEmpty
	}
	g.cells[p.Y][p.X] = domain.CellEnd
	g.end = p
	if g.start == p {
		g.start = domain.NoPoint
	}
}

// SetWall marks p as a wall unless it holds a start/end marker.
func (g *Grid) SetWall(p domain.Point) {
	if !g.InBounds(p) || p == g.start || p == g.end {
		return
	}
	g.cells[p.Y][p.X] = domain.CellWall
}

// ClearCell empties p unless it holds a start/end marker.
func (g *Grid) ClearCell(p domain.Point) {
	if !g.InBounds(p) || p == g.start || p == g.end {
		return
	}
	g.cells[p.Y][p.X] = domain.CellEmpty
}

// ClearWalls empties every wall cell.
func (g *Grid) ClearWalls() {
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] == domain.CellWall {
				g.cells[y][x] = domain.CellEmpty
			}
		}
	}
}

// ClearSearch resets visited/frontier/path cells to empty, keeping
// walls and markers. Called before each run.
func (g *Grid) ClearSearch() {
	for y := range g.cells {
		for x := range g.cells[y] {
			switch g.cells[y][x] {
			case domain.CellVisited, domain.CellFrontier, domain.CellPath:
				g.cells[y][x] = domain.CellEmpty
			}
		}
	}
}

// GenerateMaze fills roughly 30% of the grid with random walls, leaving
// start and end clear.
func (g *Grid) GenerateMaze(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for y := range g.cells {
		for x := range g.cells[y] {
			p := domain.Point{X: x, Y: y}
			if p == g.start || p == g.end {
				continue
			}
			if rng.Float64() < 0.3 {
				g.cells[y][x] = domain.CellWall
			} else {
				g.cells[y][x] = domain.CellEmpty
			}
		}
	}
}
