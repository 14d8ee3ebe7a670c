package core

import "testing"

func TestNeighborsHardEdge(t *testing.T) {
	g := NewGrid(4)
	for i := range g.Cells() {
		g.Cells()[i] = Alive
	}

	cases := []struct {
		r, c int
		want int
	}{
		{0, 0, 3},
		{0, 3, 3},
		{3, 0, 3},
		{3, 3, 3},
		{0, 1, 5},
		{2, 0, 5},
		{1, 1, 8},
		{2, 2, 8},
	}
	for _, tc := range cases {
		if got := g.Neighbors(tc.r, tc.c); got != tc.want {
			t.Fatalf("Neighbors(%d,%d) = %d, expected %d", tc.r, tc.c, got, tc.want)
		}
	}
}

func TestNeighborsIgnoresSelf(t *testing.T) {
	g := NewGrid(3)
	g.Set(1, 1, Alive)
	if got := g.Neighbors(1, 1); got != 0 {
		t.Fatalf("lone cell counted %d neighbors", got)
	}
	if got := g.Neighbors(0, 0); got != 1 {
		t.Fatalf("corner next to live center counted %d neighbors, expected 1", got)
	}
}

func TestNeighborsDoesNotWrap(t *testing.T) {
	g := NewGrid(5)
	g.Set(0, 4, Alive)
	g.Set(4, 0, Alive)
	g.Set(4, 4, Alive)
	if got := g.Neighbors(0, 0); got != 0 {
		t.Fatalf("corner saw %d neighbors across the edge", got)
	}
}

func TestToggleAndBounds(t *testing.T) {
	g := NewGrid(3)
	if !g.Toggle(2, 1) {
		t.Fatal("expected in-bounds toggle to succeed")
	}
	if g.At(2, 1) != Alive {
		t.Fatal("toggle should make a dead cell alive")
	}
	g.Toggle(2, 1)
	if g.At(2, 1) != Dead {
		t.Fatal("second toggle should kill the cell")
	}
	if g.Toggle(3, 0) || g.Toggle(-1, 0) || g.Toggle(0, 3) {
		t.Fatal("out-of-bounds toggles must be rejected")
	}
	if g.At(-1, -1) != Dead {
		t.Fatal("off-board reads must be dead")
	}
	g.Set(5, 5, Alive)
	if g.Population() != 0 {
		t.Fatal("off-board writes must be dropped")
	}
}

func TestCloneAndEqual(t *testing.T) {
	g := NewGrid(4)
	g.Set(1, 2, Alive)
	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("clone should equal the original")
	}
	clone.Set(0, 0, Alive)
	if g.Equal(clone) {
		t.Fatal("mutating a clone must not affect the original")
	}
	if g.Equal(NewGrid(5)) {
		t.Fatal("grids of different size must not be equal")
	}
}

func TestClearTwiceYieldsSameGrid(t *testing.T) {
	g := NewGrid(6)
	FillDensity(NewRNG(7), g.Cells(), 0.5)
	g.Clear()
	first := g.Clone()
	g.Clear()
	if !g.Equal(first) || g.Population() != 0 {
		t.Fatal("clearing twice should yield the same all-dead grid")
	}
}

func TestPatternStampClipsToBoard(t *testing.T) {
	p := Pattern{Name: "bar", Row: 1, Col: 2, Cells: [][]uint8{{1, 1, 1, 1}}}
	g := NewGrid(4)
	p.Stamp(g)
	if g.Population() != 2 {
		t.Fatalf("expected clipped stamp to set 2 cells, got %d", g.Population())
	}
	if g.At(1, 2) != Alive || g.At(1, 3) != Alive {
		t.Fatal("in-bounds part of the pattern missing")
	}
}
