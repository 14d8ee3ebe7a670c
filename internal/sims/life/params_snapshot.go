package life

import (
	"math"
	"strconv"

	"pulse-life/internal/core"
)

// Parameters reports the values shown on the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	state := "stopped"
	if l.Running() {
		state = "running"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("size", "Size", l.Size()),
				core.IntParam("generation", "Generation", l.generation),
				core.IntParam("population", "Population", l.Population()),
				core.TextParam("state", "State", state),
			},
		},
		{
			Name: "Pacing",
			Params: []core.Parameter{
				core.IntParam("speed", "Speed", l.pacer.Speed()),
				core.TextParam("delay", "Delay", strconv.FormatInt(l.pacer.Delay().Milliseconds(), 10)+"ms"),
				core.FloatParam("density", "Density", l.cfg.Density),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "speed", Label: "Speed", Type: core.ParamTypeInt, Step: 25, Min: 0, Max: float64(l.pacer.MaxSpeed())},
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
	}
}

// SetIntParameter updates an integer parameter by key.
func (l *Life) SetIntParameter(key string, value int) bool {
	switch key {
	case "speed":
		l.pacer.SetSpeed(value)
		return true
	}
	return false
}

// SetFloatParameter updates a floating point parameter by key. Density is
// clamped to [0, 1].
func (l *Life) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "density":
		if math.IsNaN(value) {
			return false
		}
		l.cfg.Density = math.Max(0, math.Min(1, value))
		return true
	}
	return false
}
