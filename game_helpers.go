package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/format"
	"github.com/sheikhrachel/go-gol/history"
	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

// resolveConfig loads the config file, replays command-line flags on top of it
// and validates the result. A missing file falls back to the defaults unless
// -config was given explicitly.
func resolveConfig(fs *flag.FlagSet, path string) (utils.Config, error) {
	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(path)
	if err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		fmt.Printf("Using default configuration (%s not found)\n", path)
		config = utils.DefaultConfig()
	}

	applyOverrides(fs, &config)
	if err = config.Validate(); err != nil {
		return config, errors.Wrap(err, "[resolveConfig] invalid configuration")
	}
	return config, nil
}

// applyOverrides replays flags set on fs on top of config, so explicit flags
// win over the config file.
func applyOverrides(fs *flag.FlagSet, config *utils.Config) {
	overrides := flag.NewFlagSet("overrides", flag.ContinueOnError)
	config.Bind(overrides)
	fs.Visit(func(f *flag.Flag) {
		if overrides.Lookup(f.Name) == nil {
			return
		}
		if err := overrides.Set(f.Name, f.Value.String()); err != nil {
			log.Printf("ignoring flag -%s: %v", f.Name, err)
		}
	})
}

// buildGrid creates the grid from the initial file when one is configured,
// otherwise from a seeded random fill, then places configured obstacles.
func buildGrid(config utils.Config) (*model.Grid, error) {
	var (
		grid *model.Grid
		err  error
	)
	if config.InitialFile != "" {
		initial, loadErr := format.LoadFile(config.InitialFile)
		if loadErr != nil {
			return nil, loadErr
		}
		grid, err = model.LoadGrid(initial, config.Topology)
	} else {
		grid, err = model.NewRandomGrid(config.Width, config.Height, config.Topology, utils.NewRNG(config.Seed))
	}
	if err != nil {
		return nil, errors.Wrap(err, "[buildGrid] failed to construct grid")
	}

	for _, o := range config.Obstacles {
		if err = grid.MarkObstacle(o.Row, o.Col); err != nil {
			return nil, errors.Wrap(err, "[buildGrid] failed to place obstacle")
		}
	}
	return grid, nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Grid,
	*model.SnapshotPool,
	*history.Recorder,
	*utils.Stats,
	error,
) {
	grid, err := buildGrid(config)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	var pool *model.SnapshotPool
	if config.UseMemoryPool {
		pool = model.NewSnapshotPool()
	}

	var recorder *history.Recorder
	if config.HistoryFile != "" {
		if recorder, err = history.OpenFile(config.HistoryFile); err != nil {
			// History is optional; keep simulating without it.
			log.Printf("history disabled: %v", err)
			recorder = nil
		}
	}

	return grid, pool, recorder, utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Topology: %s | Workers: %d | Memory Pool: %v\n",
		grid.Topology(), config.Workers, config.UseMemoryPool)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d | Obstacles: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells(), grid.CountObstacles())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// gameStatus is the per-generation result of polling the engine.
type gameStatus struct {
	livingCells int
	density     float64
	stable      bool
	extinct     bool
	period      int
	status      string
}

// updateGameState polls the convergence checks against the pre-step snapshot
// and updates the run statistics.
func updateGameState(
	grid *model.Grid,
	prev *model.Snapshot,
	tracker *model.CycleTracker,
	lastFrameTime time.Time,
	stats *utils.Stats,
) gameStatus {
	livingCells := grid.CountLivingCells()
	st := gameStatus{
		livingCells: livingCells,
		density:     float64(livingCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100,
		extinct:     grid.IsExtinct(),
		status:      "Active",
	}
	stats.Update(grid.Generation(), livingCells, time.Since(lastFrameTime))

	if prev != nil {
		st.stable = grid.IsStable(*prev)
	}
	if period, ok := tracker.ObserveHash(grid.Hash()); ok && period > 1 {
		st.period = period
		st.status = fmt.Sprintf("Oscillating (period %d)", period)
	}
	if st.stable {
		st.status = "Stable"
	}
	if st.extinct {
		st.status = "Extinct"
	}
	return st
}

// displayGameStatus shows the current game status
func displayGameStatus(grid *model.Grid, st gameStatus, stats *utils.Stats) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		grid.Generation(), st.livingCells, st.density, st.status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// checkStopConditions determines if the run should end
func checkStopConditions(st gameStatus, generation int, config utils.Config) (bool, string) {
	if st.extinct && config.StopOnExtinct {
		return true, "extinction"
	}
	if st.stable && config.StopOnStable {
		return true, "stable generation"
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}

// recordGeneration appends the grid to history. Failures are counted and
// logged, never fatal.
func recordGeneration(recorder *history.Recorder, grid *model.Grid, stats *utils.Stats) {
	if recorder == nil {
		return
	}
	err := recorder.Record(grid)
	stats.RecordHistory(err)
	if err != nil {
		log.Printf("generation %d not recorded: %v", grid.Generation(), err)
	}
}

// advance runs one generation using the configured worker count.
func advance(grid *model.Grid, config utils.Config) {
	if config.Workers > 1 {
		grid.StepParallel(config.Workers)
		return
	}
	grid.Step()
}
