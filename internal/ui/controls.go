// Package ui draws the control panel and help overlay next to the board.
package ui

import (
	"image"
	"math"
	"strconv"

	"pulse-life/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	infoHeight     = 18
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(controls []core.ParameterControl, width int) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		states[i] = controlState{control: ctrl, value: "--"}
	}
	layoutControls(states, width)
	return states
}

func layoutControls(states []controlState, width int) {
	if width <= 0 {
		return
	}
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minusRect
		states[i].plusRect = plusRect
	}
}

// infoTop returns the y offset below the last control.
func infoTop(states []controlState) int {
	return controlsTop + len(states)*lineHeight + panelPadding
}

func refreshControlValues(states []controlState, snapshot core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

// adjustTarget computes the value one step in direction, clamped to the
// control bounds. ok is false when the value would not change.
func adjustTarget(state *controlState, direction int) (target float64, ok bool) {
	if state == nil || direction == 0 || !state.hasValue {
		return 0, false
	}
	ctrl := state.control
	switch ctrl.Type {
	case core.ParamTypeInt:
		step := math.Round(ctrl.Step)
		if step <= 0 {
			step = 1
		}
		target = float64(state.intValue) + float64(direction)*step
		target = math.Max(math.Round(ctrl.Min), math.Min(math.Round(ctrl.Max), target))
		return target, int(target) != state.intValue
	case core.ParamTypeFloat:
		step := ctrl.Step
		if step <= 0 {
			step = 0.05
		}
		target = state.floatValue + float64(direction)*step
		target = math.Max(ctrl.Min, math.Min(ctrl.Max, target))
		return target, math.Abs(target-state.floatValue) >= 1e-9
	default:
		return 0, false
	}
}

// applyAdjustment steps a control through the matching setter.
func applyAdjustment(state *controlState, direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	target, ok := adjustTarget(state, direction)
	if !ok {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if ints == nil || !ints.SetIntParameter(state.control.Key, int(target)) {
			return false
		}
		state.intValue = int(target)
		state.floatValue = target
		state.value = strconv.Itoa(state.intValue)
	case core.ParamTypeFloat:
		if floats == nil || !floats.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue = target
		state.value = formatFloat(state.control, target)
	}
	return true
}

// hitControl finds the control button under (x, y) in panel coordinates.
func hitControl(states []controlState, x, y int) (index, direction int) {
	for i := range states {
		if !states[i].hasValue {
			continue
		}
		if pointInRect(x, y, states[i].minusRect) {
			return i, -1
		}
		if pointInRect(x, y, states[i].plusRect) {
			return i, 1
		}
	}
	return -1, 0
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 2
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	default:
		precision = 1
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// HelpLines lists the key bindings shown by the help overlay.
func HelpLines() []string {
	return []string{
		"space  start / stop",
		"n      step once",
		"c      clear",
		"r      randomize",
		"g      spawn pattern",
		"t      next theme",
		"m      play / pause music",
		"bksp   rewind music",
		"up/dn  speed",
		"click  toggle cell",
		"h      toggle help",
		"q/esc  quit",
	}
}
