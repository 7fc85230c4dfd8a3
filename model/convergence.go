package model

// IsExtinct reports whether no cell is alive. Obstacles never count as alive.
func (g *Grid) IsExtinct() bool {
	for _, c := range g.cells {
		if c.Alive && !c.Obstacle {
			return false
		}
	}
	return true
}

// IsStable reports whether the grid's alive values match prev exactly.
func (g *Grid) IsStable(prev Snapshot) bool {
	if prev.width != g.width || prev.height != g.height || len(prev.alive) != len(g.cells) {
		return false
	}
	for i, c := range g.cells {
		if c.Alive != prev.alive[i] {
			return false
		}
	}
	return true
}

// DefaultCycleWindow is the number of recent hashes a CycleTracker keeps.
const DefaultCycleWindow = 5

// CycleTracker remembers the hashes of recent snapshots to spot short
// oscillators. It is a driver-side helper; the grid never consults it.
type CycleTracker struct {
	window  int
	history []string
}

// NewCycleTracker keeps up to window recent hashes. Non-positive windows use
// DefaultCycleWindow.
func NewCycleTracker(window int) *CycleTracker {
	if window <= 0 {
		window = DefaultCycleWindow
	}
	return &CycleTracker{window: window}
}

// Observe records s and reports the period of the cycle it closes, if any.
// A period of 1 means s equals the previous observation.
func (t *CycleTracker) Observe(s Snapshot) (int, bool) {
	return t.ObserveHash(s.Hash())
}

// ObserveHash is Observe for a precomputed digest, such as Grid.Hash.
func (t *CycleTracker) ObserveHash(hash string) (int, bool) {
	period, found := 0, false
	for back := 1; back <= len(t.history); back++ {
		if t.history[len(t.history)-back] == hash {
			period, found = back, true
			break
		}
	}

	t.history = append(t.history, hash)
	// Keep only the last window states
	if len(t.history) > t.window {
		t.history = t.history[1:]
	}
	return period, found
}

// Reset forgets all observed hashes.
func (t *CycleTracker) Reset() {
	t.history = nil
}
