package ui

import (
	"testing"

	"galaxy/internal/core"
)

func TestStepIntClamps(t *testing.T) {
	ctrl := core.ParameterControl{Step: 20, Min: 0, Max: 100000, HasMin: true, HasMax: true}
	if v, ok := stepInt(ctrl, 100, 1); !ok || v != 120 {
		t.Fatalf("step up = %d, %v", v, ok)
	}
	if v, ok := stepInt(ctrl, 10, -1); !ok || v != 0 {
		t.Fatalf("step below min = %d, %v", v, ok)
	}
	if _, ok := stepInt(ctrl, 0, -1); ok {
		t.Fatal("stepping down at min must report no change")
	}
	if v, ok := stepInt(ctrl, 100000, 1); ok || v != 100000 {
		t.Fatalf("step at max = %d, %v", v, ok)
	}
}

func TestStepFloatSnapsToGrid(t *testing.T) {
	ctrl := core.ParameterControl{Step: 0.01, Min: 0, Max: 2, HasMin: true, HasMax: true}
	v := 0.21
	for i := 0; i < 50; i++ {
		v, _ = stepFloat(ctrl, v, 1)
	}
	if got := formatFloat(ctrl, v); got != "0.71" {
		t.Fatalf("after 50 steps value = %s", got)
	}
	if v, ok := stepFloat(ctrl, 2, 1); ok || v != 2 {
		t.Fatalf("step past max = %v, %v", v, ok)
	}
}

func TestStepFloatNegativeRange(t *testing.T) {
	ctrl := core.ParameterControl{Step: 0.5, Min: -5, Max: 5, HasMin: true, HasMax: true}
	if v, ok := stepFloat(ctrl, -4.75, -1); !ok || v != -5 {
		t.Fatalf("step to min = %v, %v", v, ok)
	}
}

func TestStepHue(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeColor, Step: 120}
	next, ok := stepHue(ctrl, "#ff0000", 1)
	if !ok || next != "#00ff00" {
		t.Fatalf("red + 120 deg = %s, %v", next, ok)
	}
	back, ok := stepHue(ctrl, next, -1)
	if !ok || back != "#ff0000" {
		t.Fatalf("green - 120 deg = %s, %v", back, ok)
	}
	if _, ok := stepHue(ctrl, "#808080", 1); ok {
		t.Fatal("grey has no hue to rotate")
	}
	if _, ok := stepHue(ctrl, "bogus", 1); ok {
		t.Fatal("invalid hex must be rejected")
	}
}

func TestRepeatDue(t *testing.T) {
	if repeatDue(repeatDelay - 1) {
		t.Fatal("no repeat before the delay")
	}
	if !repeatDue(repeatDelay) || !repeatDue(repeatDelay+repeatInterval) {
		t.Fatal("repeat expected at the delay and each interval after it")
	}
	if repeatDue(repeatDelay + 1) {
		t.Fatal("no repeat between intervals")
	}
}

func TestFormatFloatPrecision(t *testing.T) {
	if got := formatFloat(core.ParameterControl{Step: 0.001}, 1.266); got != "1.266" {
		t.Fatalf("spin = %s", got)
	}
	if got := formatFloat(core.ParameterControl{Step: 0.5}, 6); got != "6.0" {
		t.Fatalf("radius = %s", got)
	}
	if got := formatFloat(core.ParameterControl{Step: 0.02}, 0.02); got != "0.02" {
		t.Fatalf("size = %s", got)
	}
}
