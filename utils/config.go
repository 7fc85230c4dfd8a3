package utils

import (
	"encoding/json"
	"flag"
	"github.com/pkg/errors"
	"os"
	"time"

	"github.com/sheikhrachel/go-gol/model"
)

// ObstacleConfig places an obstacle cell after the grid is built.
type ObstacleConfig struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Config holds the configuration for the game
type Config struct {
	Width          int              `json:"width"`
	Height         int              `json:"height"`
	Topology       model.Topology   `json:"topology"`
	Seed           int64            `json:"seed"`
	InitialFile    string           `json:"initial_file"`
	HistoryFile    string           `json:"history_file"`
	Obstacles      []ObstacleConfig `json:"obstacles"`
	FrameRate      time.Duration    `json:"frame_rate"`
	MaxGenerations int              `json:"max_generations"`
	Workers        int              `json:"workers"`
	UseMemoryPool  bool             `json:"use_memory_pool"`
	StopOnStable   bool             `json:"stop_on_stable"`
	StopOnExtinct  bool             `json:"stop_on_extinct"`
	CycleWindow    int              `json:"cycle_window"`
	Render         bool             `json:"render"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          60,
		Height:         30,
		Topology:       model.Toroidal,
		Seed:           42,
		FrameRate:      150 * time.Millisecond,
		MaxGenerations: 1000,
		Workers:        1,
		UseMemoryPool:  true,
		StopOnStable:   true,
		StopOnExtinct:  true,
		CycleWindow:    model.DefaultCycleWindow,
		Render:         true,
	}
}

// LoadConfig loads configuration from JSON file. The result is not validated;
// callers apply command-line overrides first and then call Validate.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the fields the driver cannot work around.
func (c Config) Validate() error {
	if c.InitialFile == "" && (c.Width <= 0 || c.Height <= 0) {
		return errors.Wrapf(model.ErrInvalidDimensions, "[Validate] %dx%d", c.Width, c.Height)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] negative frame rate: %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] negative max generations: %d", c.MaxGenerations)
	}
	return nil
}

// Bind attaches the overridable fields to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width for random fill")
	fs.IntVar(&c.Height, "height", c.Height, "grid height for random fill")
	fs.TextVar(&c.Topology, "topology", c.Topology, "neighborhood topology: bounded or toroidal")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fill")
	fs.StringVar(&c.InitialFile, "initial", c.InitialFile, "initial grid file")
	fs.StringVar(&c.HistoryFile, "history", c.HistoryFile, "append every generation to this file")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "stop after this many generations (0 = unlimited)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used for the compute phase")
	fs.DurationVar(&c.FrameRate, "frame", c.FrameRate, "delay between generations")
	fs.BoolVar(&c.Render, "render", c.Render, "print the grid every generation")
}
