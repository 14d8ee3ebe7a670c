package life

import (
	"time"

	"pulse-life/internal/core"
)

// Config controls the board and pacing of a Life simulation.
type Config struct {
	Size    int
	Density float64
	Seed    int64

	MaxDelay time.Duration
	MaxSpeed int
	Speed    int

	// Pattern names the registered layout spawned by SpawnDefault.
	Pattern string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:     100,
		Density:  0.3,
		Seed:     42,
		MaxDelay: core.DefaultMaxDelay,
		MaxSpeed: core.DefaultMaxSpeed,
		Speed:    core.DefaultSpeed,
		Pattern:  PatternGliderGun,
	}
}
