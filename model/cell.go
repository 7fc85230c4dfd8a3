package model

// Cell is a single grid position. An obstacle cell keeps its Alive value for
// the lifetime of the grid.
type Cell struct {
	Alive    bool
	Obstacle bool
}

// CellState is the tri-state value used by loaded grids and the file format.
type CellState uint8

const (
	Dead CellState = iota
	Alive
	Obstacle
)

// String returns the file-format token for the state.
func (s CellState) String() string {
	switch s {
	case Alive:
		return "1"
	case Obstacle:
		return "X"
	default:
		return "0"
	}
}

// State collapses a Cell into its tri-state token.
func (c Cell) State() CellState {
	switch {
	case c.Obstacle:
		return Obstacle
	case c.Alive:
		return Alive
	default:
		return Dead
	}
}

// InitialGrid is a loaded grid description: dimensions plus row-major states.
type InitialGrid struct {
	Height int
	Width  int
	Cells  []CellState
}
