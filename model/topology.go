package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Topology selects how neighbor coordinates behave at the grid edges.
type Topology uint8

const (
	// Bounded omits neighbors that fall outside the grid.
	Bounded Topology = iota
	// Toroidal wraps neighbor coordinates around both axes.
	Toroidal
)

const (
	boundedName  = "bounded"
	toroidalName = "toroidal"
)

func (t Topology) String() string {
	if t == Toroidal {
		return toroidalName
	}
	return boundedName
}

// ParseTopology converts a config value into a Topology.
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case boundedName, "":
		return Bounded, nil
	case toroidalName, "torus", "wrap":
		return Toroidal, nil
	}
	return Bounded, errors.Errorf("[ParseTopology] unknown topology: %q", s)
}

// MarshalText implements encoding.TextMarshaler so Topology reads naturally in JSON.
func (t Topology) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(text []byte) error {
	parsed, err := ParseTopology(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// BuildNeighborIndex computes the Moore neighborhood of every cell as flat
// row-major indices. The result depends only on the dimensions and topology.
// Toroidal grids narrower than three cells repeat wrapped neighbors rather
// than dropping them, so every list still has eight entries.
func BuildNeighborIndex(width, height int, topology Topology) [][]int {
	index := make([][]int, width*height)
	for i := range height {
		for j := range width {
			neighbors := make([]int, 0, 8)
			for di := -1; di <= 1; di++ {
				for dj := -1; dj <= 1; dj++ {
					if di == 0 && dj == 0 {
						continue
					}
					ni, nj := i+di, j+dj
					if topology == Toroidal {
						ni = (ni + height) % height
						nj = (nj + width) % width
					} else if ni < 0 || ni >= height || nj < 0 || nj >= width {
						continue
					}
					neighbors = append(neighbors, ni*width+nj)
				}
			}
			index[i*width+j] = neighbors
		}
	}
	return index
}
