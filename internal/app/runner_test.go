package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"pulse-life/internal/sims/life"
)

func newRunnerLife(speed int) *life.Life {
	cfg := life.DefaultConfig()
	cfg.Size = 40
	cfg.Speed = speed
	l := life.New(cfg)
	l.SpawnPattern(life.GliderGun.At(2, 2))
	return l
}

func TestRunnerStopsAtLimit(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	l := newRunnerLife(450) // 100ms delay

	origin := time.Unix(0, 0)
	ticks := make(chan time.Time, 100)
	for i := 1; i <= 100; i++ {
		ticks <- origin.Add(time.Duration(i) * 10 * time.Millisecond)
	}

	r := NewRunner(l, logger, time.Millisecond, 5, 5)
	if err := r.run(context.Background(), ticks, origin); err != nil {
		t.Fatalf("run: %v", err)
	}
	if l.Generation() != 5 {
		t.Fatalf("generation = %d, expected 5", l.Generation())
	}
	if l.Running() {
		t.Fatal("runner should stop the simulation on exit")
	}
	if len(ticks) != 50 {
		t.Fatalf("consumed %d ticks, expected 50 at 10ms per tick and 100ms per generation", 100-len(ticks))
	}
	if !strings.Contains(logs.String(), "generation limit reached") {
		t.Fatalf("missing limit log: %q", logs.String())
	}
}

func TestRunnerCancel(t *testing.T) {
	l := newRunnerLife(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(l, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), time.Millisecond, 0, 0)
	err := r.run(ctx, make(chan time.Time), time.Now())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if l.Generation() != 0 {
		t.Fatal("cancelled runner must not advance")
	}
}

func TestRunnerWarnsOnExtinction(t *testing.T) {
	var logs bytes.Buffer
	cfg := life.DefaultConfig()
	cfg.Size = 10
	cfg.Speed = cfg.MaxSpeed
	l := life.New(cfg)
	l.Toggle(5, 5)

	origin := time.Unix(0, 0)
	ticks := make(chan time.Time, 4)
	for i := 1; i <= 4; i++ {
		ticks <- origin.Add(time.Duration(i) * time.Second)
	}
	r := NewRunner(l, slog.New(slog.NewTextHandler(&logs, nil)), time.Millisecond, 3, 0)
	if err := r.run(context.Background(), ticks, origin); err != nil {
		t.Fatal(err)
	}
	if strings.Count(logs.String(), "board died out") != 1 {
		t.Fatalf("expected one extinction warning, logs: %q", logs.String())
	}
}
