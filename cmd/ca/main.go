//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"pulse-life/internal/app"
	"pulse-life/internal/audio"
	"pulse-life/internal/config"
	"pulse-life/internal/logs"
	"pulse-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

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

	sim := life.New(cfg.Life())
	sim.SpawnDefault()

	var player *audio.Player
	if cfg.Audio != "" {
		player, err = audio.Open(cfg.Audio, cfg.SampleRate, logger.Logger)
		if err != nil {
			logger.Warn("audio disabled", "error", err)
			player = nil
		} else {
			defer player.Close()
			player.SetVolume(cfg.Volume)
		}
	}

	game := app.New(sim, cfg.Scale, cfg.InitialTheme(), player, cfg.BeatDetector(), logger.Logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("pulse-life — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop", "error", err)
		os.Exit(1)
	}
}
