// Package config gathers runtime settings from defaults, an optional CUE file
// and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"pulse-life/internal/audio"
	"pulse-life/internal/core"
	"pulse-life/internal/sims/life"
	"pulse-life/internal/theme"
)

// Config represents every tunable of the viewer.
type Config struct {
	ConfigPath string `json:"-"`

	Size       int     `json:"size"`
	Scale      int     `json:"scale"`
	TPS        int     `json:"tps"`
	Speed      int     `json:"speed"`
	MaxSpeed   int     `json:"max_speed"`
	MaxDelayMS int     `json:"max_delay_ms"`
	Density    float64 `json:"density"`
	Seed       int64   `json:"seed"`
	Theme      string  `json:"theme"`
	Pattern    string  `json:"pattern"`

	Audio          string  `json:"audio"`
	SampleRate     int     `json:"sample_rate"`
	Volume         float64 `json:"volume"`
	BeatThreshold  float64 `json:"beat_threshold"`
	BeatCooldownMS int     `json:"beat_cooldown_ms"`

	Generations int `json:"generations"`
	PollMS      int `json:"poll_ms"`
	LogEvery    int `json:"log_every"`

	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Size:           100,
		Scale:          7,
		TPS:            60,
		Speed:          core.DefaultSpeed,
		MaxSpeed:       core.DefaultMaxSpeed,
		MaxDelayMS:     int(core.DefaultMaxDelay / time.Millisecond),
		Density:        0.3,
		Seed:           42,
		Theme:          theme.Nord.String(),
		Pattern:        life.PatternGliderGun,
		SampleRate:     44100,
		Volume:         0.5,
		BeatThreshold:  audio.DefaultThreshold,
		BeatCooldownMS: int(audio.DefaultCooldown / time.Millisecond),
		PollMS:         16,
		LogEvery:       50,
		LogLevel:       "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "CUE config file")
	fs.IntVar(&c.Size, "size", c.Size, "board edge length in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second polled by the window")
	fs.IntVar(&c.Speed, "speed", c.Speed, "initial speed (higher is faster)")
	fs.IntVar(&c.MaxSpeed, "max-speed", c.MaxSpeed, "upper bound of the speed control")
	fs.IntVar(&c.MaxDelayMS, "max-delay", c.MaxDelayMS, "delay between generations at speed 0, in milliseconds")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability used by randomize")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize")
	fs.StringVar(&c.Theme, "theme", c.Theme, "color theme: nord, dark, black-yellow")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern spawned at startup")
	fs.StringVar(&c.Audio, "audio", c.Audio, "WAV or MP3 file driving theme changes")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "initial audio volume in [0, 1]")
	fs.Float64Var(&c.BeatThreshold, "beat-threshold", c.BeatThreshold, "low-band energy that counts as a beat")
	fs.IntVar(&c.Generations, "generations", c.Generations, "headless: stop after this many generations (0 runs until interrupted)")
	fs.IntVar(&c.PollMS, "poll", c.PollMS, "headless: tick poll interval in milliseconds")
	fs.IntVar(&c.LogEvery, "log-every", c.LogEvery, "headless: log population every n generations")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "append JSON logs to this file")
}

// Load binds fs, parses args, merges the config file named by -config and
// parses args again so flags override the file.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	c := Default()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.ConfigPath != "" {
		if err := c.LoadFile(c.ConfigPath); err != nil {
			return nil, err
		}
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Size < 4 {
		errs = append(errs, fmt.Errorf("size %d: must be at least 4", c.Size))
	}
	if c.Scale < 2 {
		errs = append(errs, fmt.Errorf("scale %d: must be at least 2", c.Scale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d: must be positive", c.TPS))
	}
	if c.MaxDelayMS <= 0 {
		errs = append(errs, fmt.Errorf("max delay %dms: must be positive", c.MaxDelayMS))
	}
	if c.MaxSpeed < 0 || c.MaxSpeed > c.MaxDelayMS {
		errs = append(errs, fmt.Errorf("max speed %d: must be within [0, %d]", c.MaxSpeed, c.MaxDelayMS))
	}
	if c.Density < 0 || c.Density > 1 {
		errs = append(errs, fmt.Errorf("density %g: must be within [0, 1]", c.Density))
	}
	if _, err := theme.Parse(c.Theme); err != nil {
		errs = append(errs, err)
	}
	if _, ok := core.LookupPattern(c.Pattern); !ok {
		errs = append(errs, fmt.Errorf("unknown pattern %q (have %v)", c.Pattern, core.PatternNames()))
	}
	if c.PollMS <= 0 {
		errs = append(errs, fmt.Errorf("poll %dms: must be positive", c.PollMS))
	}
	if c.Generations < 0 {
		errs = append(errs, fmt.Errorf("generations %d: must not be negative", c.Generations))
	}
	return errors.Join(errs...)
}

// Life derives the simulation config.
func (c *Config) Life() life.Config {
	return life.Config{
		Size:     c.Size,
		Density:  c.Density,
		Seed:     c.Seed,
		MaxDelay: time.Duration(c.MaxDelayMS) * time.Millisecond,
		MaxSpeed: c.MaxSpeed,
		Speed:    c.Speed,
		Pattern:  c.Pattern,
	}
}

// InitialTheme resolves the configured theme, falling back to Nord.
func (c *Config) InitialTheme() theme.Theme {
	th, err := theme.Parse(c.Theme)
	if err != nil {
		return theme.Nord
	}
	return th
}

// BeatDetector builds the detector configured for the soundtrack.
func (c *Config) BeatDetector() *audio.BeatDetector {
	return audio.NewBeatDetector(c.BeatThreshold, time.Duration(c.BeatCooldownMS)*time.Millisecond)
}

// PollInterval returns the headless tick interval.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollMS) * time.Millisecond
}
