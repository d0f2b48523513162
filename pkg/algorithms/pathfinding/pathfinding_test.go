package pathfinding_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strobe/pkg/algorithms/pathfinding"
	"github.com/aretw0/strobe/pkg/domain"
)

// buildGrid parses a compact board description where '#' is a wall,
// 'S' the start, 'E' the end and '.' an empty cell.
func buildGrid(t *testing.T, rows ...string) *pathfinding.Grid {
	t.Helper()
	grid := pathfinding.NewGridSize(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			p := domain.Point{X: x, Y: y}
			switch c {
			case '#':
				grid.SetWall(p)
			case 'S':
				grid.SetStart(p)
			case 'E':
				grid.SetEnd(p)
			}
		}
	}
	return grid
}

func TestRun_RequiresStartAndEnd(t *testing.T) {
	grid := pathfinding.NewGridSize(5, 5)
	_, _, err := pathfinding.Run(grid, pathfinding.BFS)
	assert.ErrorIs(t, err, domain.ErrMissingInput)

	grid.SetStart(domain.Point{X: 0, Y: 0})
	_, _, err = pathfinding.Run(grid, pathfinding.BFS)
	assert.ErrorIs(t, err, domain.ErrMissingInput)
}

func TestRun_FindsPath(t *testing.T) {
	grid := buildGrid(t,
		"S.#..",
		"..#..",
		".....",
		"..#.E",
	)

	for _, algorithm := range pathfinding.Algorithms() {
		t.Run(string(algorithm), func(t *testing.T) {
			log, counters, err := pathfinding.Run(grid, algorithm)
			require.NoError(t, err)

			last, ok := log.Last()
			require.True(t, ok)
			assert.True(t, last.Flags.Terminal)

			snapshot := last.Snapshot.(domain.GridSnapshot)
			assert.Equal(t, grid.End(), snapshot.Changed)
			assert.Equal(t, domain.CellPath, snapshot.ChangedKind)
			assert.True(t, strings.HasPrefix(last.Description, "Path found"))
			assert.Greater(t, counters.Mutations, 0)
		})
	}
}

func TestRun_ShortestPathLength(t *testing.T) {
	grid := buildGrid(t,
		"S....",
		".###.",
		".....",
		"....E",
	)

	// Manhattan distance with no blocking detour: length 7.
	for _, algorithm := range []pathfinding.Algorithm{pathfinding.AStar, pathfinding.Dijkstra, pathfinding.BFS} {
		log, _, err := pathfinding.Run(grid, algorithm)
		require.NoError(t, err)

		last, ok := log.Last()
		require.True(t, ok)
		assert.Equal(t, "Path found: length 7", last.Description, algorithm)
	}
}

func TestRun_NoPath(t *testing.T) {
	grid := buildGrid(t,
		"S.#..",
		"..#..",
		"..#.E",
	)

	for _, algorithm := range pathfinding.Algorithms() {
		log, _, err := pathfinding.Run(grid, algorithm)
		require.NoError(t, err)

		last, ok := log.Last()
		require.True(t, ok)
		assert.True(t, last.Flags.Terminal, algorithm)

		snapshot := last.Snapshot.(domain.GridSnapshot)
		assert.Equal(t, domain.NoPoint, snapshot.Changed, algorithm)
		assert.Equal(t, "No path exists between start and end", last.Description)
	}
}

func TestRun_SnapshotsAreSelfContained(t *testing.T) {
	grid := buildGrid(t,
		"S..",
		"...",
		"..E",
	)

	log, _, err := pathfinding.Run(grid, pathfinding.BFS)
	require.NoError(t, err)
	require.Greater(t, log.Len(), 2)

	// Every snapshot carries the whole board; later steps must not
	// alias earlier ones.
	first := log.At(0).Snapshot.(domain.GridSnapshot)
	second := log.At(1).Snapshot.(domain.GridSnapshot)
	changed := second.Changed
	assert.NotEqual(t, second.Cells[changed.Y][changed.X], first.Cells[changed.Y][changed.X])
}

func TestRun_DoesNotMutateGrid(t *testing.T) {
	grid := buildGrid(t,
		"S..",
		".#.",
		"..E",
	)
	before := grid.Cells()

	_, _, err := pathfinding.Run(grid, pathfinding.AStar)
	require.NoError(t, err)
	assert.Equal(t, before, grid.Cells())
}

func TestRun_Deterministic(t *testing.T) {
	grid := pathfinding.NewGridSize(12, 8)
	grid.SetStart(domain.Point{X: 0, Y: 0})
	grid.SetEnd(domain.Point{X: 11, Y: 7})
	grid.GenerateMaze(99)

	for _, algorithm := range pathfinding.Algorithms() {
		first, firstCounters, err := pathfinding.Run(grid, algorithm)
		require.NoError(t, err)
		second, secondCounters, err := pathfinding.Run(grid, algorithm)
		require.NoError(t, err)

		require.Equal(t, first.Len(), second.Len(), algorithm)
		assert.Equal(t, firstCounters, secondCounters, algorithm)
		for i := 0; i < first.Len(); i++ {
			assert.Equal(t, first.At(i).Description, second.At(i).Description, algorithm)
		}
	}
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	grid := buildGrid(t, "SE")
	_, _, err := pathfinding.Run(grid, pathfinding.Algorithm("teleport"))
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestGrid_GenerateMazePreservesMarkers(t *testing.T) {
	grid := pathfinding.NewGrid()
	grid.SetStart(domain.Point{X: 1, Y: 1})
	grid.SetEnd(domain.Point{X: 30, Y: 20})
	grid.GenerateMaze(7)

	assert.Equal(t, domain.CellStart, grid.KindAt(grid.Start()))
	assert.Equal(t, domain.CellEnd, grid.KindAt(grid.End()))

	walls := 0
	for _, row := range grid.Cells() {
		for _, c := range row {
			if c == domain.CellWall {
				walls++
			}
		}
	}
	total := grid.Width() * grid.Height()
	assert.InDelta(t, float64(total)*0.3, float64(walls), float64(total)*0.1)
}

func TestGrid_ClearWalls(t *testing.T) {
	grid := pathfinding.NewGridSize(4, 4)
	grid.SetStart(domain.Point{X: 0, Y: 0})
	grid.SetWall(domain.Point{X: 2, Y: 2})
	grid.SetWall(domain.Point{X: 0, Y: 0}) // refuses to overwrite start

	assert.Equal(t, domain.CellStart, grid.KindAt(domain.Point{X: 0, Y: 0}))
	grid.ClearWalls()
	assert.Equal(t, domain.CellEmpty, grid.KindAt(domain.Point{X: 2, Y: 2}))
}
