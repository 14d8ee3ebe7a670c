package life

import "testing"

func TestRunScenarioEmptyBoardSettles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 16
	cfg.Density = 0
	res := RunScenario(cfg, 100, 5)
	if res.Initial != 0 || res.Final != 0 {
		t.Fatalf("empty board should stay empty: %+v", res)
	}
	if res.SettledAt != 0 || res.Generation != 5 {
		t.Fatalf("empty board settles immediately, got %+v", res)
	}
}

func TestRunScenarioDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 32
	cfg.Seed = 11
	a := RunScenario(cfg, 200, 10)
	b := RunScenario(cfg, 200, 10)
	if a != b {
		t.Fatalf("same seed produced different results: %+v vs %+v", a, b)
	}
	if a.Peak < a.Initial || a.Generation > 200 {
		t.Fatalf("inconsistent result %+v", a)
	}
}

func TestRunScenarioFullBoardDies(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 10
	cfg.Density = 1
	res := RunScenario(cfg, 50, 3)
	if res.Initial != 100 {
		t.Fatalf("density 1 should fill the board, got %d", res.Initial)
	}
	if res.Final != 0 {
		t.Fatalf("full board should collapse, final population %d", res.Final)
	}
}
