package ui

import (
	"testing"

	"pulse-life/internal/core"
)

type fakeSetter struct {
	ints   map[string]int
	floats map[string]float64
}

func (f *fakeSetter) SetIntParameter(key string, v int) bool {
	f.ints[key] = v
	return true
}

func (f *fakeSetter) SetFloatParameter(key string, v float64) bool {
	f.floats[key] = v
	return true
}

func testStates() []controlState {
	return newControlStates([]core.ParameterControl{
		{Key: "speed", Label: "Speed", Type: core.ParamTypeInt, Step: 25, Min: 0, Max: 500},
		{Key: "volume", Label: "Volume", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 1},
	}, 200)
}

func TestRefreshParsesSnapshot(t *testing.T) {
	states := testStates()
	refreshControlValues(states, core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Params: []core.Parameter{
			core.IntParam("speed", "Speed", 250),
		},
	}}})
	if !states[0].hasValue || states[0].intValue != 250 || states[0].value != "250" {
		t.Fatalf("speed state = %+v", states[0])
	}
	if states[1].hasValue || states[1].value != "--" {
		t.Fatalf("missing volume should render as --, got %+v", states[1])
	}
}

func TestAdjustClampsToBounds(t *testing.T) {
	states := testStates()
	setter := &fakeSetter{ints: map[string]int{}, floats: map[string]float64{}}
	refreshControlValues(states, core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Params: []core.Parameter{
			core.IntParam("speed", "Speed", 490),
			core.FloatParam("volume", "Volume", 0.05),
		},
	}}})

	if !applyAdjustment(&states[0], 1, setter, setter) || setter.ints["speed"] != 500 {
		t.Fatalf("speed should clamp to 500, got %d", setter.ints["speed"])
	}
	if _, ok := adjustTarget(&states[0], 1); ok {
		t.Fatal("no further increase possible at the max")
	}
	if !applyAdjustment(&states[1], -1, setter, setter) || setter.floats["volume"] != 0 {
		t.Fatalf("volume should clamp to 0, got %f", setter.floats["volume"])
	}
	if states[1].value != "0.0" {
		t.Fatalf("volume label = %q", states[1].value)
	}
}

func TestAdjustWithoutSetter(t *testing.T) {
	states := testStates()
	refreshControlValues(states, core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Params: []core.Parameter{core.IntParam("speed", "Speed", 100)},
	}}})
	if applyAdjustment(&states[0], 1, nil, nil) {
		t.Fatal("adjustment without a setter must fail")
	}
	if states[0].intValue != 100 {
		t.Fatal("failed adjustment must not change the cached value")
	}
}

func TestHitControl(t *testing.T) {
	states := testStates()
	states[0].hasValue = true
	plus := states[0].plusRect
	if i, dir := hitControl(states, plus.Min.X+1, plus.Min.Y+1); i != 0 || dir != 1 {
		t.Fatalf("hit = (%d,%d), expected plus of control 0", i, dir)
	}
	minus := states[1].minusRect
	if i, _ := hitControl(states, minus.Min.X+1, minus.Min.Y+1); i != -1 {
		t.Fatal("controls without a value must not be clickable")
	}
	if i, _ := hitControl(states, 0, 0); i != -1 {
		t.Fatal("click outside buttons must miss")
	}
}

func TestLayoutStacksControls(t *testing.T) {
	states := testStates()
	if states[1].top-states[0].top != lineHeight {
		t.Fatal("controls should be one line apart")
	}
	if states[0].plusRect.Max.X != 200-panelPadding {
		t.Fatalf("plus button should hug the right padding, got %v", states[0].plusRect)
	}
	if states[0].minusRect.Max.X+buttonGap != states[0].plusRect.Min.X {
		t.Fatal("minus button should sit one gap left of plus")
	}
	if infoTop(states) <= states[1].top {
		t.Fatal("info section must start below the controls")
	}
}
