package theme

import (
	"image/color"
	"testing"
)

func TestNextCycles(t *testing.T) {
	got := []Theme{}
	th := Nord
	for i := 0; i < 4; i++ {
		got = append(got, th)
		th = th.Next()
	}
	want := []Theme{Nord, Dark, BlackYellow, Nord}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cycle[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestParseRoundTripsNames(t *testing.T) {
	for _, th := range All() {
		parsed, err := Parse(th.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", th.String(), err)
		}
		if parsed != th {
			t.Fatalf("Parse(%q) = %v", th.String(), parsed)
		}
	}
	if _, err := Parse("solarized"); err == nil {
		t.Fatal("expected an error for an unknown theme")
	}
}

func TestColors(t *testing.T) {
	if got := BlackYellow.Color(true); got != (color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}) {
		t.Fatalf("black-yellow live = %v", got)
	}
	if got := Nord.Color(false); got != (color.RGBA{R: 0x3B, G: 0x42, B: 0x52, A: 0xFF}) {
		t.Fatalf("nord dead = %v", got)
	}
	if Theme(99).Palette() != Nord.Palette() {
		t.Fatal("out-of-range theme should fall back to nord")
	}
}
