package domain

// CellKind classifies one pathfinding grid cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellWall
	CellStart
	CellEnd
	CellPath
	CellVisited
	CellFrontier
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellStart:
		return "start"
	case CellEnd:
		return "end"
	case CellPath:
		return "path"
	case CellVisited:
		return "visited"
	case CellFrontier:
		return "frontier"
	}
	return "unknown"
}

// Point addresses a grid cell by column and row.
type Point struct {
	X int
	Y int
}

// NoPoint is the sentinel for "no cell".
var NoPoint = Point{X: -1, Y: -1}

// CopyGrid deep-copies a grid of cell kinds.
func CopyGrid(cells [][]CellKind) [][]CellKind {
	copied := make([][]CellKind, len(cells))
	for i, row := range cells {
		copied[i] = make([]CellKind, len(row))
		copy(copied[i], row)
	}
	return copied
}
