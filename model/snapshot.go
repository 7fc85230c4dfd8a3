package model

import (
	"crypto/md5"
	"fmt"
)

// Snapshot is a deep copy of every cell's alive value at one generation.
// Mutating the grid afterwards never changes a captured Snapshot.
type Snapshot struct {
	width      int
	height     int
	generation int
	alive      []bool
}

// Snapshot captures the grid's current alive values.
func (g *Grid) Snapshot() Snapshot {
	s := Snapshot{alive: make([]bool, len(g.cells))}
	g.snapshotInto(&s)
	return s
}

func (g *Grid) snapshotInto(s *Snapshot) {
	s.width, s.height, s.generation = g.width, g.height, g.generation
	if cap(s.alive) < len(g.cells) {
		s.alive = make([]bool, len(g.cells))
	}
	s.alive = s.alive[:len(g.cells)]
	for i, c := range g.cells {
		s.alive[i] = c.Alive
	}
}

// Width returns the captured grid width.
func (s Snapshot) Width() int { return s.width }

// Height returns the captured grid height.
func (s Snapshot) Height() int { return s.height }

// Generation returns the generation the snapshot was taken at.
func (s Snapshot) Generation() int { return s.generation }

// Alive returns the captured state of (row, col); out of range reads as dead.
func (s Snapshot) Alive(row, col int) bool {
	if row < 0 || row >= s.height || col < 0 || col >= s.width {
		return false
	}
	return s.alive[row*s.width+col]
}

// Population counts live cells in the snapshot.
func (s Snapshot) Population() (count int) {
	for _, a := range s.alive {
		if a {
			count++
		}
	}
	return
}

// Equal reports whether two snapshots have identical dimensions and cells.
// The generation is not compared.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.width != other.width || s.height != other.height || len(s.alive) != len(other.alive) {
		return false
	}
	for i := range s.alive {
		if s.alive[i] != other.alive[i] {
			return false
		}
	}
	return true
}

// Hash returns an MD5 digest of the dimensions and alive values.
func (s Snapshot) Hash() string {
	return digest(s.width, s.height, len(s.alive), func(i int) bool { return s.alive[i] })
}

// Hash returns the same digest Snapshot().Hash() would, without copying the
// cells.
func (g *Grid) Hash() string {
	return digest(g.width, g.height, len(g.cells), func(i int) bool { return g.cells[i].Alive })
}

// digest streams n row-major alive values into md5 one row at a time.
func digest(width, height, n int, alive func(int) bool) string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", height, width)
	if width > 0 {
		row := make([]byte, width)
		for start := 0; start < n; start += width {
			for col := range row {
				row[col] = 0
				if alive(start + col) {
					row[col] = 1
				}
			}
			h.Write(row)
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
