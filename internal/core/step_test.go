package core

import (
	"slices"
	"testing"
)

func gridWith(n int, cells ...[2]int) *Grid {
	g := NewGrid(n)
	for _, rc := range cells {
		g.Set(rc[0], rc[1], Alive)
	}
	return g
}

func TestBlockIsStillLife(t *testing.T) {
	g := gridWith(6, [2]int{2, 2}, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 3})
	next := Next(g)
	if !next.Equal(g) {
		t.Fatal("2x2 block changed after one generation")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	horizontal := gridWith(5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	vertical := gridWith(5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	first := Next(horizontal)
	if !first.Equal(vertical) {
		t.Fatalf("horizontal blinker should turn vertical, got %v", first.Cells())
	}
	second := Next(first)
	if !second.Equal(horizontal) {
		t.Fatalf("blinker should return to horizontal, got %v", second.Cells())
	}
}

func TestNextIsPure(t *testing.T) {
	g := NewGrid(20)
	FillDensity(NewRNG(42), g.Cells(), 0.3)
	before := slices.Clone(g.Cells())

	a := Next(g)
	b := Next(g)

	if !slices.Equal(before, g.Cells()) {
		t.Fatal("Next mutated its input")
	}
	if !a.Equal(b) {
		t.Fatal("Next is not deterministic for the same input")
	}
}

func TestBlinkerOnEdgeDies(t *testing.T) {
	// A vertical blinker flush against the left edge loses the cells that
	// would have been born off the board.
	g := gridWith(5, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0})
	next := Next(g)
	want := gridWith(5, [2]int{2, 0}, [2]int{2, 1})
	if !next.Equal(want) {
		t.Fatalf("unexpected edge result %v", next.Cells())
	}
}

func TestStepIntoMatchesNext(t *testing.T) {
	src := NewGrid(16)
	FillDensity(NewRNG(3), src.Cells(), 0.4)
	dst := NewGrid(16)
	FillDensity(NewRNG(9), dst.Cells(), 0.9)

	StepInto(dst, src)
	if !dst.Equal(Next(src)) {
		t.Fatal("StepInto should fully overwrite dst with the next generation")
	}
}

func TestRules(t *testing.T) {
	cases := []struct {
		name      string
		alive     bool
		neighbors int
		want      uint8
	}{
		{"live underpopulated", true, 1, Dead},
		{"live survives two", true, 2, Alive},
		{"live survives three", true, 3, Alive},
		{"live overcrowded", true, 4, Dead},
		{"dead stays dead two", false, 2, Dead},
		{"dead born three", false, 3, Alive},
		{"dead stays dead four", false, 4, Dead},
	}
	ring := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(3)
			if tc.alive {
				g.Set(1, 1, Alive)
			}
			for _, rc := range ring[:tc.neighbors] {
				g.Set(rc[0], rc[1], Alive)
			}
			if got := Next(g).At(1, 1); got != tc.want {
				t.Fatalf("center = %d, expected %d", got, tc.want)
			}
		})
	}
}
