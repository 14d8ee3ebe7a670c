package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"pulse-life/internal/logs"
	"pulse-life/internal/sims/life"
)

type densityList []float64

func (l *densityList) String() string {
	parts := make([]string, len(*l))
	for i, d := range *l {
		parts[i] = strconv.FormatFloat(d, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *densityList) Set(value string) error {
	*l = (*l)[:0]
	for _, part := range strings.Split(value, ",") {
		d, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("density %q: %w", part, err)
		}
		if d < 0 || d > 1 {
			return fmt.Errorf("density %g: must be within [0, 1]", d)
		}
		*l = append(*l, d)
	}
	return nil
}

type summary struct {
	density     float64
	runs        int
	settled     int
	meanFinal   float64
	meanSettled float64
	meanPeak    float64
}

func main() {
	size := flag.Int("size", 100, "board edge length")
	generations := flag.Int("generations", 1000, "generations to simulate per scenario")
	settle := flag.Int("settle", 10, "flat-population generations that count as settled")
	seeds := flag.Int("seeds", 8, "seeds per density")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	logLevel := flag.String("log-level", "info", "log level")
	densities := densityList{0.1, 0.2, 0.3, 0.4, 0.5}
	flag.Var(&densities, "densities", "comma-separated densities to sweep")
	flag.Parse()

	logger, err := logs.New(logs.Options{Level: *logLevel})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Close()

	base := life.DefaultConfig()
	base.Size = *size

	var jobs []life.Config
	for _, d := range densities {
		for s := 0; s < *seeds; s++ {
			cfg := base
			cfg.Density = d
			cfg.Seed = int64(s + 1)
			jobs = append(jobs, cfg)
		}
	}

	logger.Info("sweeping", "scenarios", len(jobs), "workers", *workers, "generations", *generations)

	work := make(chan life.Config)
	results := make(chan life.ScenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cfg := range work {
				results <- life.RunScenario(cfg, *generations, *settle)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, cfg := range jobs {
			work <- cfg
		}
		close(work)
	}()

	start := time.Now()
	byDensity := map[float64]*summary{}
	for res := range results {
		logger.Debug("scenario done", "density", res.Density, "seed", res.Seed, "final", res.Final, "settled_at", res.SettledAt)
		s, ok := byDensity[res.Density]
		if !ok {
			s = &summary{density: res.Density}
			byDensity[res.Density] = s
		}
		s.runs++
		s.meanFinal += float64(res.Final)
		s.meanPeak += float64(res.Peak)
		if res.SettledAt >= 0 {
			s.settled++
			s.meanSettled += float64(res.SettledAt)
		}
	}

	var all []*summary
	for _, s := range byDensity {
		s.meanFinal /= float64(s.runs)
		s.meanPeak /= float64(s.runs)
		if s.settled > 0 {
			s.meanSettled /= float64(s.settled)
		}
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].density < all[j].density })

	fmt.Printf("%-8s %6s %8s %10s %10s %12s\n", "density", "runs", "settled", "final", "peak", "settled_at")
	for _, s := range all {
		settledAt := "-"
		if s.settled > 0 {
			settledAt = strconv.FormatFloat(s.meanSettled, 'f', 1, 64)
		}
		fmt.Printf("%-8.2f %6d %8d %10.1f %10.1f %12s\n", s.density, s.runs, s.settled, s.meanFinal, s.meanPeak, settledAt)
	}
	logger.Info("sweep finished", "elapsed", time.Since(start).Round(time.Millisecond))
}
