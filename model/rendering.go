package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock    = "██"
	gridPosEmpty    = "  "
	gridPosObstacle = "▒▒"

	macosClearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering. It only reads the grid.
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	var b strings.Builder
	for row := range g.height {
		for col := range g.width {
			switch c := g.cells[g.index(row, col)]; {
			case c.Obstacle:
				b.WriteString(gridPosObstacle)
			case c.Alive:
				b.WriteString(gridPosBlock)
			default:
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(r.out(), b.String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}
