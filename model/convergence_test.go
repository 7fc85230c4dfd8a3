package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestSnapshotIsDeepCopy(t *testing.T) {
	g := gridFromRows(t, Toroidal, ".....", ".....", ".OOO.", ".....", ".....")
	snap := g.Snapshot()
	before := snap.Hash()

	g.Step()
	if _, err := g.Set(0, 0, true); err != nil {
		t.Fatal(err)
	}

	if snap.Hash() != before {
		t.Fatal("snapshot changed after grid mutation")
	}
	if !snap.Alive(2, 1) || snap.Alive(1, 2) || snap.Alive(0, 0) {
		t.Fatal("snapshot does not hold pre-step values")
	}
	if snap.Population() != 3 || snap.Generation() != 0 {
		t.Fatalf("population=%d generation=%d", snap.Population(), snap.Generation())
	}
}

func TestIsStableBlock(t *testing.T) {
	g := gridFromRows(t, Bounded,
		"....",
		".OO.",
		".OO.",
		"....",
	)
	prev := g.Snapshot()
	g.Step()
	if !g.IsStable(prev) {
		t.Fatal("block should be stable")
	}
	// A fixed point stays fixed.
	for range 10 {
		prev = g.Snapshot()
		g.Step()
		if !g.IsStable(prev) {
			t.Fatalf("block lost stability at generation %d", g.Generation())
		}
	}
}

func TestIsStableOscillatorIsNot(t *testing.T) {
	g := gridFromRows(t, Bounded, "...", "OOO", "...")
	prev := g.Snapshot()
	g.Step()
	if g.IsStable(prev) {
		t.Fatal("blinker reported stable")
	}
}

func TestIsStableDimensionMismatch(t *testing.T) {
	a := gridFromRows(t, Bounded, "....")
	b := gridFromRows(t, Bounded, "..", "..")
	if a.IsStable(b.Snapshot()) {
		t.Fatal("snapshots of different shapes compared equal")
	}
	if a.IsStable(Snapshot{}) {
		t.Fatal("zero snapshot compared equal")
	}
}

func TestIsExtinctIgnoresObstacles(t *testing.T) {
	g := gridFromRows(t, Bounded, "X.", ".X")
	if !g.IsExtinct() {
		t.Fatal("grid with only obstacles must be extinct")
	}
}

func TestCycleTracker(t *testing.T) {
	tracker := NewCycleTracker(0)
	g := gridFromRows(t, Bounded, ".....", ".....", ".OOO.", ".....", ".....")

	if _, ok := tracker.Observe(g.Snapshot()); ok {
		t.Fatal("first observation cannot close a cycle")
	}
	g.Step()
	if _, ok := tracker.Observe(g.Snapshot()); ok {
		t.Fatal("second blinker phase is new")
	}
	g.Step()
	period, ok := tracker.Observe(g.Snapshot())
	if !ok || period != 2 {
		t.Fatalf("Observe = %d, %v; want period 2", period, ok)
	}

	tracker.Reset()
	if _, ok := tracker.Observe(g.Snapshot()); ok {
		t.Fatal("Reset did not clear history")
	}
	if period, ok = tracker.Observe(g.Snapshot()); !ok || period != 1 {
		t.Fatalf("repeat observation = %d, %v; want period 1", period, ok)
	}
}

func TestCycleTrackerWindow(t *testing.T) {
	tracker := NewCycleTracker(2)
	g := gridFromRows(t, Bounded, "O..", "...", "...")
	first := g.Snapshot()
	tracker.Observe(first)

	for _, row := range []int{1, 2} {
		if _, err := g.Set(row, 1, true); err != nil {
			t.Fatal(err)
		}
		tracker.Observe(g.Snapshot())
	}
	if _, ok := tracker.Observe(first); ok {
		t.Fatal("state older than the window should be forgotten")
	}
}

func TestSnapshotPoolReuse(t *testing.T) {
	pool := NewSnapshotPool()
	g := gridFromRows(t, Toroidal, ".....", ".....", ".OOO.", ".....", ".....")

	s := pool.Capture(g)
	if !g.IsStable(*s) {
		t.Fatal("pooled snapshot does not match grid")
	}
	SnapshotToPool(s, pool)
	SnapshotToPool(nil, pool)
	SnapshotToPool(s, nil)

	g.Step()
	s = pool.Capture(g)
	if !g.IsStable(*s) || s.Generation() != 1 {
		t.Fatal("recaptured snapshot does not match grid")
	}
}

func TestTerminalRendererDisplay(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	r.Display(gridFromRows(t, Bounded, "OX."))

	want := gridPosBlock + gridPosObstacle + gridPosEmpty + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("Display = %q, want %q", got, want)
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Fatal("expected one rendered row")
	}
}

func TestGridHashMatchesSnapshotHash(t *testing.T) {
	g := gridFromRows(t, Toroidal, "O..X", ".OO.", "....")
	for range 4 {
		if g.Hash() != g.Snapshot().Hash() {
			t.Fatalf("generation %d: grid and snapshot digests differ", g.Generation())
		}
		g.Step()
	}

	other := gridFromRows(t, Toroidal, "O...", ".OO.", "....")
	if other.Hash() == gridFromRows(t, Toroidal, "O...", ".O..", "....").Hash() {
		t.Fatal("different grids share a digest")
	}
}

func TestCycleTrackerObserveHash(t *testing.T) {
	tracker := NewCycleTracker(0)
	g := gridFromRows(t, Bounded, ".....", ".....", ".OOO.", ".....", ".....")
	tracker.ObserveHash(g.Hash())
	g.Step()
	tracker.ObserveHash(g.Hash())
	g.Step()
	if period, ok := tracker.ObserveHash(g.Hash()); !ok || period != 2 {
		t.Fatalf("ObserveHash = %d, %v; want period 2", period, ok)
	}
}
