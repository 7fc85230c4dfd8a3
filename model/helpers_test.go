package model

import "testing"

// gridFromRows builds a grid from rows of '.', 'O' and 'X' characters.
func gridFromRows(t *testing.T, topology Topology, rows ...string) *Grid {
	t.Helper()
	initial := InitialGrid{Height: len(rows), Width: len(rows[0])}
	for _, row := range rows {
		if len(row) != initial.Width {
			t.Fatalf("ragged row %q", row)
		}
		for _, ch := range row {
			switch ch {
			case 'O':
				initial.Cells = append(initial.Cells, Alive)
			case 'X':
				initial.Cells = append(initial.Cells, Obstacle)
			default:
				initial.Cells = append(initial.Cells, Dead)
			}
		}
	}
	g, err := LoadGrid(initial, topology)
	if err != nil {
		t.Fatalf("LoadGrid: %v", err)
	}
	return g
}

// assertAlive fails unless exactly the listed cells are alive.
func assertAlive(t *testing.T, g *Grid, cells ...[2]int) {
	t.Helper()
	expects := map[[2]int]bool{}
	for _, c := range cells {
		expects[c] = true
	}
	for row := 0; row < g.GetHeight(); row++ {
		for col := 0; col < g.GetWidth(); col++ {
			alive := g.Get(row, col)
			if shouldBeAlive := expects[[2]int{row, col}]; shouldBeAlive != alive {
				t.Fatalf("generation %d cell (%d,%d) alive=%v, expected %v", g.Generation(), row, col, alive, shouldBeAlive)
			}
		}
	}
}
