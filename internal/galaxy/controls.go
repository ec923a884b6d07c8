package galaxy

import (
	"strconv"

	"galaxy/internal/core"

	"github.com/lucasb-eyer/go-colorful"
)

// ParameterControls lists the panel widgets with their ranges and steps.
func (m *Model) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		intControl(KeyCount, "Count", 20, 0, 100000),
		floatControl(KeySize, "Size", 0.02, 0, 1),
		floatControl(KeyRadius, "Radius", 0.5, 1, 10),
		intControl(KeyBranches, "Branches", 1, 1, 10),
		floatControl(KeySpin, "Spin", 0.001, -5, 5),
		floatControl(KeyRandomness, "Randomness", 0.01, 0, 2),
		intControl(KeyRandomnessPower, "Randomness power", 1, 1, 5),
		{Key: KeyInsideColor, Label: "Inside color", Type: core.ParamTypeColor, Step: 10},
		{Key: KeyOutsideColor, Label: "Outside color", Type: core.ParamTypeColor, Step: 10},
	}
}

// Parameters returns a snapshot of the active values for display.
func (m *Model) Parameters() core.ParameterSnapshot {
	p := m.params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Shape",
			Params: []core.Parameter{
				intParam(KeyCount, "Count", p.Count),
				floatParam(KeySize, "Size", p.Size),
				floatParam(KeyRadius, "Radius", p.Radius),
				intParam(KeyBranches, "Branches", p.Branches),
				floatParam(KeySpin, "Spin", p.Spin),
			},
		},
		{
			Name: "Jitter",
			Params: []core.Parameter{
				floatParam(KeyRandomness, "Randomness", p.Randomness),
				intParam(KeyRandomnessPower, "Randomness power", p.RandomnessPower),
			},
		},
		{
			Name: "Colors",
			Params: []core.Parameter{
				colorParam(KeyInsideColor, "Inside color", p.InsideColor),
				colorParam(KeyOutsideColor, "Outside color", p.OutsideColor),
			},
		},
	}}
}

// SetIntParameter commits an integer field and regenerates.
func (m *Model) SetIntParameter(key string, value int) bool {
	next, ok := m.params.WithInt(key, value)
	if !ok {
		return false
	}
	return m.commit(next, key)
}

// SetFloatParameter commits a real field and regenerates.
func (m *Model) SetFloatParameter(key string, value float64) bool {
	next, ok := m.params.WithFloat(key, value)
	if !ok {
		return false
	}
	return m.commit(next, key)
}

// SetColorParameter commits a "#rrggbb" color and regenerates.
func (m *Model) SetColorParameter(key string, hex string) bool {
	c, err := colorful.Hex(hex)
	if err != nil {
		return false
	}
	next, ok := m.params.WithColor(key, c)
	if !ok {
		return false
	}
	return m.commit(next, key)
}

func intControl(key, label string, step, min, max float64) core.ParameterControl {
	return core.ParameterControl{
		Key: key, Label: label, Type: core.ParamTypeInt,
		Step: step, Min: min, Max: max, HasMin: true, HasMax: true,
	}
}

func floatControl(key, label string, step, min, max float64) core.ParameterControl {
	return core.ParameterControl{
		Key: key, Label: label, Type: core.ParamTypeFloat,
		Step: step, Min: min, Max: max, HasMin: true, HasMax: true,
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func colorParam(key, label string, value colorful.Color) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeColor,
		Value: value.Hex(),
	}
}
