package life

// ScenarioResult summarizes a headless run started from a randomized board.
type ScenarioResult struct {
	Density    float64
	Seed       int64
	Initial    int
	Final      int
	Peak       int
	Generation int
	// SettledAt is the first generation after which the population stayed
	// unchanged for the settle window, or -1 if it never settled.
	SettledAt int
}

// RunScenario randomizes a board from cfg and steps it up to generations
// times, stopping early once the population has been flat for settle
// consecutive generations.
func RunScenario(cfg Config, generations, settle int) ScenarioResult {
	l := New(cfg)
	l.Randomize()

	res := ScenarioResult{
		Density:   cfg.Density,
		Seed:      cfg.Seed,
		Initial:   l.Population(),
		Peak:      l.Population(),
		SettledAt: -1,
	}
	prev := res.Initial
	flat := 0
	for i := 0; i < generations; i++ {
		l.Step()
		pop := l.Population()
		if pop > res.Peak {
			res.Peak = pop
		}
		if pop == prev {
			flat++
		} else {
			flat = 0
		}
		prev = pop
		if settle > 0 && flat >= settle {
			res.SettledAt = l.Generation() - settle
			break
		}
	}
	res.Final = l.Population()
	res.Generation = l.Generation()
	return res
}
