package ui

import (
	"math"
	"strconv"

	"galaxy/internal/core"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// Frames a button must be held before it starts repeating, then the
	// number of frames between repeats.
	repeatDelay    = 24
	repeatInterval = 4
)

// repeatDue reports whether a button held for the given number of frames
// should apply another step.
func repeatDue(frames int) bool {
	if frames < repeatDelay {
		return false
	}
	return (frames-repeatDelay)%repeatInterval == 0
}

// stepInt moves cur by one step in direction and clamps it to the control
// bounds. ok is false when the value would not change.
func stepInt(ctrl core.ParameterControl, cur, direction int) (int, bool) {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := cur + direction*step
	if ctrl.HasMin {
		if min := int(math.Round(ctrl.Min)); target < min {
			target = min
		}
	}
	if ctrl.HasMax {
		if max := int(math.Round(ctrl.Max)); target > max {
			target = max
		}
	}
	return target, target != cur
}

// stepFloat is the real-valued counterpart of stepInt. The result is snapped
// to the step grid to keep repeated additions from drifting.
func stepFloat(ctrl core.ParameterControl, cur float64, direction int) (float64, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := cur + float64(direction)*step
	target = math.Round(target/step) * step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, math.Abs(target-cur) >= 1e-9
}

// stepHue rotates a "#rrggbb" color around the hue wheel by the control step
// in degrees. Grey colors have no hue to rotate and are reported unchanged.
func stepHue(ctrl core.ParameterControl, hex string, direction int) (string, bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex, false
	}
	h, s, v := c.Hsv()
	if s == 0 {
		return hex, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 10
	}
	h = math.Mod(h+float64(direction)*step+360, 360)
	next := colorful.Hsv(h, s, v).Clamped().Hex()
	return next, next != hex
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 2
	switch {
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	default:
		precision = 1
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
