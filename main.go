package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "JSON configuration file")
	cli := utils.DefaultConfig()
	cli.Bind(flag.CommandLine)
	flag.Parse()

	config, err := resolveConfig(flag.CommandLine, *configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	runID := uuid.New().String()
	log.SetPrefix("[" + runID[:8] + "] ")
	log.Printf("run %s starting", runID)

	grid, pool, recorder, stats, err := initializeGame(config)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	if recorder != nil {
		defer func() {
			if err := recorder.Close(); err != nil {
				log.Printf("history close: %v", err)
			}
		}()
	}
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	renderer := &model.TerminalRenderer{}
	tracker := model.NewCycleTracker(config.CycleWindow)
	recordGeneration(recorder, grid, stats)

	var (
		prev          *model.Snapshot
		lastFrameTime = time.Now()
	)

loop:
	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			break loop
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		st := updateGameState(grid, prev, tracker, lastFrameTime, stats)
		lastFrameTime = frameStart

		if config.Render {
			renderer.Clear()
			displayGameStatus(grid, st, stats)
			renderer.Display(grid)
		}

		if stop, reason := checkStopConditions(st, grid.Generation(), config); stop {
			fmt.Printf("\n🏁 Stopping: %s\n", reason)
			break loop
		}

		// Capture the pre-step snapshot, then release the one it replaces.
		next := capture(grid, pool)
		model.SnapshotToPool(prev, pool)
		prev = next

		advance(grid, config)
		recordGeneration(recorder, grid, stats)

		time.Sleep(config.FrameRate)
	}

	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		grid.Generation(), time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d peak\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation)
	if recorder != nil {
		log.Printf("history: %d records written, %d failed", stats.HistoryRecords, stats.HistoryFailures)
	}
}

func capture(grid *model.Grid, pool *model.SnapshotPool) *model.Snapshot {
	if pool != nil {
		return pool.Capture(grid)
	}
	s := grid.Snapshot()
	return &s
}
