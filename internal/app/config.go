package app

import (
	"errors"
	"flag"
	"fmt"

	"termlife/internal/core"
	"termlife/internal/pattern"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Seed       int
	PatternDir string
	Speed      int
	MinSpeed   int
	MaxSpeed   int
	SpeedStep  int
	Scale      int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		PatternDir: pattern.DefaultDir,
		Speed:      core.DefaultSpeed,
		MinSpeed:   core.DefaultMinSpeed,
		MaxSpeed:   core.DefaultMaxSpeed,
		SpeedStep:  core.DefaultSpeedStep,
		Scale:      8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Seed, "seed", c.Seed, "seed pattern 1-5 (0 prompts)")
	fs.StringVar(&c.PatternDir, "patterns", c.PatternDir, "directory holding seed pattern files")
	fs.IntVar(&c.Speed, "speed", c.Speed, "initial delay between generations in ms")
	fs.IntVar(&c.MinSpeed, "min-speed", c.MinSpeed, "shortest delay between generations in ms")
	fs.IntVar(&c.MaxSpeed, "max-speed", c.MaxSpeed, "longest delay between generations in ms")
	fs.IntVar(&c.SpeedStep, "speed-step", c.SpeedStep, "delay change per key press in ms")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (window build)")
}

// Validate checks the speed range and scale.
func (c *Config) Validate() error {
	var errs []error
	if c.MinSpeed <= 0 {
		errs = append(errs, fmt.Errorf("min-speed must be positive, got %d", c.MinSpeed))
	}
	if c.MaxSpeed < c.MinSpeed {
		errs = append(errs, fmt.Errorf("max-speed %d below min-speed %d", c.MaxSpeed, c.MinSpeed))
	}
	if c.SpeedStep <= 0 {
		errs = append(errs, fmt.Errorf("speed-step must be positive, got %d", c.SpeedStep))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	return errors.Join(errs...)
}

// Limits returns the configured speed bounds.
func (c *Config) Limits() core.SpeedLimits {
	return core.SpeedLimits{Min: c.MinSpeed, Max: c.MaxSpeed, Step: c.SpeedStep}
}

// NewSpeed builds the speed controller described by the config.
func (c *Config) NewSpeed() *core.Speed {
	return core.NewSpeed(c.Speed, c.Limits())
}
