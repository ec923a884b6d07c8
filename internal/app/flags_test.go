package app

import (
	"flag"
	"io"
	"testing"
)

func TestConfigBindParsesOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("galaxy", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-seed", "9", "-set", "branches=5", "-set", "inside_color=#ffffff", "-panel", "0"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 9 || cfg.PanelWidth != 0 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	p := cfg.Params()
	if p.Branches != 5 {
		t.Fatalf("branches = %d", p.Branches)
	}
	if p.InsideColor.Hex() != "#ffffff" {
		t.Fatalf("inside color = %s", p.InsideColor.Hex())
	}
	if got := cfg.Overrides.String(); got != "branches=5,inside_color=#ffffff" {
		t.Fatalf("String() = %q", got)
	}
}

func TestOverridesRejectMalformed(t *testing.T) {
	o := Overrides{}
	if err := o.Set("branches"); err == nil {
		t.Fatal("missing '=' must fail")
	}
	if err := o.Set("=3"); err == nil {
		t.Fatal("empty key must fail")
	}
}
