package galaxy

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Parameter keys shared by the panel, the flag overrides and FromMap.
const (
	KeyCount           = "count"
	KeySize            = "size"
	KeyRadius          = "radius"
	KeyBranches        = "branches"
	KeySpin            = "spin"
	KeyRandomness      = "randomness"
	KeyRandomnessPower = "randomness_power"
	KeyInsideColor     = "inside_color"
	KeyOutsideColor    = "outside_color"
)

// FromMap populates parameters from a string map (flag-style key/value
// pairs). Unknown keys and unparsable values are ignored and leave the
// default in place; range checks are left to Validate.
func FromMap(cfg map[string]string) Parameters {
	p := DefaultParameters()
	for key, value := range cfg {
		if next, ok := p.withString(key, value); ok {
			p = next
		}
	}
	return p
}

// WithInt returns a copy of p with the integer field named by key replaced.
func (p Parameters) WithInt(key string, value int) (Parameters, bool) {
	switch key {
	case KeyCount:
		p.Count = value
	case KeyBranches:
		p.Branches = value
	case KeyRandomnessPower:
		p.RandomnessPower = value
	default:
		return p, false
	}
	return p, true
}

// WithFloat returns a copy of p with the real field named by key replaced.
func (p Parameters) WithFloat(key string, value float64) (Parameters, bool) {
	switch key {
	case KeySize:
		p.Size = value
	case KeyRadius:
		p.Radius = value
	case KeySpin:
		p.Spin = value
	case KeyRandomness:
		p.Randomness = value
	default:
		return p, false
	}
	return p, true
}

// WithColor returns a copy of p with the color named by key replaced.
func (p Parameters) WithColor(key string, c colorful.Color) (Parameters, bool) {
	switch key {
	case KeyInsideColor:
		p.InsideColor = c
	case KeyOutsideColor:
		p.OutsideColor = c
	default:
		return p, false
	}
	return p, true
}

func (p Parameters) withString(key, value string) (Parameters, bool) {
	switch key {
	case KeyCount, KeyBranches, KeyRandomnessPower:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return p, false
		}
		return p.WithInt(key, parsed)
	case KeySize, KeyRadius, KeySpin, KeyRandomness:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return p, false
		}
		return p.WithFloat(key, parsed)
	case KeyInsideColor, KeyOutsideColor:
		c, err := colorful.Hex(value)
		if err != nil {
			return p, false
		}
		return p.WithColor(key, c)
	}
	return p, false
}
