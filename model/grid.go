package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol/rules"
)

// Grid represents the game board: a flat row-major cell arena plus the
// neighbor index computed once at construction.
type Grid struct {
	width      int
	height     int
	topology   Topology
	cells      []Cell
	neighbors  [][]int // flat indices, never rebuilt after construction
	next       []bool  // compute-phase scratch buffer
	generation int
}

func newGrid(width, height int, topology Topology) *Grid {
	return &Grid{
		width:     width,
		height:    height,
		topology:  topology,
		cells:     make([]Cell, width*height),
		neighbors: BuildNeighborIndex(width, height, topology),
		next:      make([]bool, width*height),
	}
}

// NewRandomGrid creates a grid where every cell is alive with probability one
// half, drawn from rng. No cell is an obstacle.
func NewRandomGrid(width, height int, topology Topology, rng *rand.Rand) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewRandomGrid] %dx%d", width, height)
	}
	if rng == nil {
		return nil, errors.New("[NewRandomGrid] nil random source")
	}
	g := newGrid(width, height, topology)
	for i := range g.cells {
		g.cells[i].Alive = rng.IntN(2) == 1
	}
	return g, nil
}

// LoadGrid creates a grid from a loaded initial state. Obstacle entries load as
// dead obstacle cells.
func LoadGrid(initial InitialGrid, topology Topology) (*Grid, error) {
	if initial.Width <= 0 || initial.Height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[LoadGrid] %dx%d", initial.Height, initial.Width)
	}
	if len(initial.Cells) != initial.Width*initial.Height {
		return nil, errors.Wrapf(ErrInvalidDimensions,
			"[LoadGrid] declared %dx%d but got %d cells", initial.Height, initial.Width, len(initial.Cells))
	}
	g := newGrid(initial.Width, initial.Height, topology)
	for i, state := range initial.Cells {
		switch state {
		case Alive:
			g.cells[i].Alive = true
		case Obstacle:
			g.cells[i].Obstacle = true
		}
	}
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Topology returns the boundary policy the neighbor index was built with.
func (g *Grid) Topology() Topology {
	return g.topology
}

// Generation returns the number of steps applied since construction.
func (g *Grid) Generation() int {
	return g.generation
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

// Cell returns the cell at (row, col).
func (g *Grid) Cell(row, col int) (Cell, error) {
	if !g.inBounds(row, col) {
		return Cell{}, errors.Wrapf(ErrOutOfBounds, "[Cell] (%d,%d) outside %dx%d", row, col, g.height, g.width)
	}
	return g.cells[g.index(row, col)], nil
}

// Get returns whether a cell is alive. Out of range coordinates read as dead.
func (g *Grid) Get(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[g.index(row, col)].Alive
}

// IsObstacle reports whether (row, col) is an obstacle cell.
func (g *Grid) IsObstacle(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[g.index(row, col)].Obstacle
}

// Neighbors returns a copy of the flat neighbor indices of (row, col).
func (g *Grid) Neighbors(row, col int) ([]int, error) {
	if !g.inBounds(row, col) {
		return nil, errors.Wrapf(ErrOutOfBounds, "[Neighbors] (%d,%d) outside %dx%d", row, col, g.height, g.width)
	}
	return append([]int(nil), g.neighbors[g.index(row, col)]...), nil
}

// Set sets a cell to alive or dead. Obstacle cells are left untouched and
// reported with a false return.
func (g *Grid) Set(row, col int, alive bool) (bool, error) {
	if !g.inBounds(row, col) {
		return false, errors.Wrapf(ErrOutOfBounds, "[Set] (%d,%d) outside %dx%d", row, col, g.height, g.width)
	}
	c := &g.cells[g.index(row, col)]
	if c.Obstacle {
		return false, nil
	}
	c.Alive = alive
	return true, nil
}

// MarkObstacle turns (row, col) into a dead obstacle cell. Marking an existing
// obstacle again is a no-op.
func (g *Grid) MarkObstacle(row, col int) error {
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "[MarkObstacle] (%d,%d) outside %dx%d", row, col, g.height, g.width)
	}
	g.cells[g.index(row, col)] = Cell{Obstacle: true}
	return nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c.Alive {
			count++
		}
	}
	return
}

// CountObstacles returns the number of obstacle cells.
func (g *Grid) CountObstacles() (count int) {
	for _, c := range g.cells {
		if c.Obstacle {
			count++
		}
	}
	return
}

// InitialGrid exports the current cells in tri-state form.
func (g *Grid) InitialGrid() InitialGrid {
	states := make([]CellState, len(g.cells))
	for i, c := range g.cells {
		states[i] = c.State()
	}
	return InitialGrid{Height: g.height, Width: g.width, Cells: states}
}

// computeRange fills the scratch buffer for cells [start, end) from the
// current, uncommitted cell states.
func (g *Grid) computeRange(start, end int) {
	for i := start; i < end; i++ {
		c := g.cells[i]
		neighbors := 0
		if !c.Obstacle {
			for _, n := range g.neighbors[i] {
				if g.cells[n].Alive {
					neighbors++
				}
			}
		}
		g.next[i] = rules.NextState(neighbors, c.Alive, c.Obstacle)
	}
}

func (g *Grid) commit() {
	for i := range g.cells {
		if g.cells[i].Obstacle {
			continue
		}
		g.cells[i].Alive = g.next[i]
	}
	g.generation++
}

// Step advances the grid by one generation. Every next state is computed from
// the pre-step grid before any cell is written.
func (g *Grid) Step() {
	g.computeRange(0, len(g.cells))
	g.commit()
}

// StepParallel advances one generation like Step, computing row bands on up to
// workers goroutines. It returns after every band has finished.
func (g *Grid) StepParallel(workers int) {
	if workers <= 1 || g.height == 1 {
		g.Step()
		return
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(workers, g.height)
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.computeRange(startRow*g.width, endRow*g.width)
			return nil
		})
	}

	// Bands never fail; Wait is the join point before commit.
	_ = eg.Wait()

	g.commit()
}
