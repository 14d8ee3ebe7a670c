package app

import (
	"testing"

	"pulse-life/internal/sims/life"
	"pulse-life/internal/theme"
)

type fakeVolume struct {
	v       float64
	playing bool
}

func (f *fakeVolume) Volume() float64     { return f.v }
func (f *fakeVolume) SetVolume(v float64) { f.v = v }
func (f *fakeVolume) Playing() bool       { return f.playing }

func TestPanelWithoutAudio(t *testing.T) {
	l := life.New(life.DefaultConfig())
	p := NewPanel(l, nil, func() theme.Theme { return theme.Dark })

	if got := len(p.ParameterControls()); got != 2 {
		t.Fatalf("expected speed and density controls only, got %d", got)
	}
	if p.SetFloatParameter("volume", 0.3) {
		t.Fatal("volume must be rejected without a player")
	}
	if th, ok := p.Parameters().Lookup("theme"); !ok || th.Value != "dark" {
		t.Fatalf("theme parameter = %+v", th)
	}
}

func TestPanelRoutesVolume(t *testing.T) {
	l := life.New(life.DefaultConfig())
	vol := &fakeVolume{v: 0.5, playing: true}
	p := NewPanel(l, vol, nil)

	if got := len(p.ParameterControls()); got != 3 {
		t.Fatalf("expected a volume control, got %d controls", got)
	}
	if !p.SetFloatParameter("volume", 0.8) || vol.v != 0.8 {
		t.Fatalf("volume not routed, got %f", vol.v)
	}
	if !p.SetIntParameter("speed", 300) || l.Pacer().Speed() != 300 {
		t.Fatal("speed should reach the simulation")
	}
	if m, ok := p.Parameters().Lookup("music"); !ok || m.Value != "playing" {
		t.Fatalf("music parameter = %+v", m)
	}
	if p.Title() != "Life 100x100" {
		t.Fatalf("title = %q", p.Title())
	}
}
