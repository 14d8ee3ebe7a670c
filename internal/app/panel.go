package app

import (
	"math"
	"strconv"

	"pulse-life/internal/core"
	"pulse-life/internal/sims/life"
	"pulse-life/internal/theme"
)

// VolumeControl is the part of an audio player the panel adjusts.
type VolumeControl interface {
	Volume() float64
	SetVolume(v float64)
	Playing() bool
}

// Panel merges the simulation's parameters with display and audio state for
// the HUD.
type Panel struct {
	life   *life.Life
	volume VolumeControl
	theme  func() theme.Theme
}

// NewPanel builds a panel. volume may be nil when no soundtrack is loaded.
func NewPanel(l *life.Life, volume VolumeControl, current func() theme.Theme) *Panel {
	return &Panel{life: l, volume: volume, theme: current}
}

// Parameters implements core.ParameterProvider.
func (p *Panel) Parameters() core.ParameterSnapshot {
	snap := p.life.Parameters()
	display := core.ParameterGroup{Name: "Display"}
	if p.theme != nil {
		display.Params = append(display.Params, core.TextParam("theme", "Theme", p.theme().String()))
	}
	snap.Groups = append(snap.Groups, display)
	if p.volume != nil {
		state := "paused"
		if p.volume.Playing() {
			state = "playing"
		}
		snap.Groups = append(snap.Groups, core.ParameterGroup{
			Name: "Audio",
			Params: []core.Parameter{
				core.FloatParam("volume", "Volume", roundTo(p.volume.Volume(), 2)),
				core.TextParam("music", "Music", state),
			},
		})
	}
	return snap
}

// ParameterControls implements core.ParameterControlsProvider.
func (p *Panel) ParameterControls() []core.ParameterControl {
	controls := p.life.ParameterControls()
	if p.volume != nil {
		controls = append(controls, core.ParameterControl{
			Key: "volume", Label: "Volume", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 1,
		})
	}
	return controls
}

// SetIntParameter implements core.IntParameterSetter.
func (p *Panel) SetIntParameter(key string, value int) bool {
	return p.life.SetIntParameter(key, value)
}

// SetFloatParameter implements core.FloatParameterSetter.
func (p *Panel) SetFloatParameter(key string, value float64) bool {
	if key == "volume" {
		if p.volume == nil {
			return false
		}
		p.volume.SetVolume(value)
		return true
	}
	return p.life.SetFloatParameter(key, value)
}

// Title names the panel.
func (p *Panel) Title() string {
	return "Life " + strconv.Itoa(p.life.Size()) + "x" + strconv.Itoa(p.life.Size())
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
