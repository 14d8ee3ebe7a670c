package app

import (
	"context"
	"log/slog"
	"time"

	"pulse-life/internal/sims/life"
)

// Runner drives a Life without a window: a ticker polls the pacer at a fixed
// interval until the context ends or a generation limit is reached.
type Runner struct {
	life     *life.Life
	logger   *slog.Logger
	interval time.Duration
	limit    int
	logEvery int
}

// NewRunner prepares a headless loop. A limit of 0 runs until cancelled.
func NewRunner(l *life.Life, logger *slog.Logger, interval time.Duration, limit, logEvery int) *Runner {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{life: l, logger: logger, interval: interval, limit: limit, logEvery: logEvery}
}

// Run starts the simulation and blocks until it is done.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	return r.run(ctx, ticker.C, time.Now())
}

func (r *Runner) run(ctx context.Context, ticks <-chan time.Time, origin time.Time) error {
	r.life.Start(0)
	defer r.life.Stop()
	r.logger.Info("simulation started",
		"size", r.life.Size(),
		"population", r.life.Population(),
		"delay", r.life.Pacer().Delay(),
	)

	extinct := false
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("simulation stopped", "generation", r.life.Generation(), "population", r.life.Population())
			return ctx.Err()
		case t := <-ticks:
			if !r.life.Tick(t.Sub(origin)) {
				continue
			}
			gen := r.life.Generation()
			pop := r.life.Population()
			if r.logEvery > 0 && gen%r.logEvery == 0 {
				r.logger.Info("generation", "n", gen, "population", pop)
			} else {
				r.logger.Debug("generation", "n", gen, "population", pop)
			}
			if pop == 0 && !extinct {
				r.logger.Warn("board died out", "generation", gen)
			}
			extinct = pop == 0
			if r.limit > 0 && gen >= r.limit {
				r.logger.Info("generation limit reached", "generation", gen, "population", pop)
				return nil
			}
		}
	}
}
