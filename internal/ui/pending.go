package ui

import (
	"image"
	"strconv"

	"galaxy/internal/core"
)

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	colorValue string
	hasValue   bool
	dirty      bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// step moves the displayed value of s one step in direction. Nothing reaches
// the scene until the edit is committed.
func (s *hudControlState) step(direction int) bool {
	switch s.control.Type {
	case core.ParamTypeInt:
		if v, ok := stepInt(s.control, s.intValue, direction); ok {
			s.intValue = v
			s.value = strconv.Itoa(v)
			s.dirty = true
			return true
		}
	case core.ParamTypeFloat:
		if v, ok := stepFloat(s.control, s.floatValue, direction); ok {
			s.floatValue = v
			s.value = formatFloat(s.control, v)
			s.dirty = true
			return true
		}
	case core.ParamTypeColor:
		if v, ok := stepHue(s.control, s.colorValue, direction); ok {
			s.colorValue = v
			s.value = v
			s.dirty = true
			return true
		}
	}
	return false
}

// sync copies the scene's value into s. Unknown keys and unparsable values
// leave s without a value.
func (s *hudControlState) sync(snapshot core.ParameterSnapshot) {
	param, ok := snapshot.Lookup(s.control.Key)
	if !ok {
		s.hasValue = false
		s.value = "--"
		return
	}
	s.hasValue = true
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			s.hasValue = false
			s.value = "--"
			return
		}
		s.intValue = parsed
		s.value = strconv.Itoa(parsed)
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			s.hasValue = false
			s.value = "--"
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
	case core.ParamTypeColor:
		s.colorValue = param.Value
		s.value = param.Value
	default:
		s.hasValue = false
		s.value = "--"
	}
}

// hudSetters routes committed values to whichever setters the scene offers.
type hudSetters struct {
	ints   core.IntParameterSetter
	floats core.FloatParameterSetter
	colors core.ColorParameterSetter
}

func settersFor(scene core.Scene) hudSetters {
	var s hudSetters
	s.ints, _ = scene.(core.IntParameterSetter)
	s.floats, _ = scene.(core.FloatParameterSetter)
	s.colors, _ = scene.(core.ColorParameterSetter)
	return s
}

func (s hudSetters) settable(state *hudControlState) bool {
	switch state.control.Type {
	case core.ParamTypeInt:
		return s.ints != nil
	case core.ParamTypeFloat:
		return s.floats != nil
	case core.ParamTypeColor:
		return s.colors != nil
	}
	return false
}

func (s hudSetters) commit(state *hudControlState) bool {
	switch state.control.Type {
	case core.ParamTypeInt:
		return s.ints.SetIntParameter(state.control.Key, state.intValue)
	case core.ParamTypeFloat:
		return s.floats.SetFloatParameter(state.control.Key, state.floatValue)
	case core.ParamTypeColor:
		return s.colors.SetColorParameter(state.control.Key, state.colorValue)
	}
	return false
}

// pendingEdit follows one button from press to release. While held the
// control's value changes locally; release reports whether it should be
// committed.
type pendingEdit struct {
	state *hudControlState
	dir   int
}

func (e *pendingEdit) press(state *hudControlState, direction int) {
	e.state, e.dir = state, direction
	state.step(direction)
}

// tick applies the repeat schedule for a button held for frames frames.
func (e *pendingEdit) tick(frames int) {
	if e.state != nil && repeatDue(frames) {
		e.state.step(e.dir)
	}
}

// release ends the edit. commit is false when the value never changed.
func (e *pendingEdit) release() (state *hudControlState, commit bool) {
	state, e.state, e.dir = e.state, nil, 0
	if state == nil || !state.dirty {
		return state, false
	}
	state.dirty = false
	return state, true
}

func (e *pendingEdit) active() bool { return e.state != nil }

func (e *pendingEdit) holds(state *hudControlState) bool { return e.state == state }
