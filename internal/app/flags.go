package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"galaxy/internal/galaxy"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Seed       int64
	TPS        int
	Width      int
	Height     int
	PanelWidth int

	// Overrides holds galaxy parameters given as key=value pairs.
	Overrides Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: 42, TPS: 60, Width: 1280, Height: 720, PanelWidth: 260, Overrides: Overrides{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for galaxy generation")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "control panel width in pixels, 0 hides it")
	fs.Var(c.Overrides, "set", "galaxy parameter as key=value (repeatable), e.g. -set branches=5")
}

// Params returns the galaxy parameters selected by the overrides.
func (c *Config) Params() galaxy.Parameters {
	return galaxy.FromMap(c.Overrides)
}

// Overrides collects repeated key=value flags.
type Overrides map[string]string

// String implements flag.Value.
func (o Overrides) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + o[k]
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (o Overrides) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	o[key] = strings.TrimSpace(value)
	return nil
}
