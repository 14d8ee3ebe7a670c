//go:build !ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"pulse-life/internal/app"
	"pulse-life/internal/audio"
	"pulse-life/internal/config"
	"pulse-life/internal/logs"
	"pulse-life/internal/sims/life"
)

// Without the ebiten tag the viewer runs headless and logs population.
func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := logs.New(logs.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Close()

	if cfg.Audio != "" {
		if _, err := audio.Open(cfg.Audio, cfg.SampleRate, logger.Logger); errors.Is(err, audio.ErrUnsupported) {
			logger.Warn("audio needs the GUI build (-tags ebiten); continuing without it")
		}
	}

	sim := life.New(cfg.Life())
	sim.SpawnDefault()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := app.NewRunner(sim, logger.Logger, cfg.PollInterval(), cfg.Generations, cfg.LogEvery)
	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("run", "error", err)
		os.Exit(1)
	}
}
