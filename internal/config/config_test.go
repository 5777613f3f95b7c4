package config

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/san-kum/gravsim/internal/gravity"
	"github.com/san-kum/gravsim/internal/quantity"
	"github.com/san-kum/gravsim/internal/units"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Tick != DefaultTick {
		t.Errorf("expected tick %s, got %s", DefaultTick, cfg.Tick)
	}
	if cfg.Steps <= 0 {
		t.Error("steps should be positive")
	}
	if len(cfg.Bodies) != 2 {
		t.Errorf("expected 2 bodies, got %d", len(cfg.Bodies))
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("earth_moon")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Bodies[1].Name != "moon" {
		t.Errorf("expected moon, got %s", cfg.Bodies[1].Name)
	}

	cfg.Bodies[1].Position.Direction[0] = 42
	if Presets["earth_moon"].Bodies[1].Position.Direction[0] != 1 {
		t.Error("GetPreset returned a shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	if presets[0] != "binary" {
		t.Errorf("expected sorted names, got %v", presets)
	}
}

func TestBuildPresets(t *testing.T) {
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			sys, dt, err := GetPreset(name).Build()
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if dt.Magnitude() <= 0 {
				t.Errorf("tick = %v", dt)
			}
			p, err := sys.TotalMomentum()
			if err != nil {
				t.Fatalf("TotalMomentum failed: %v", err)
			}
			if p.Length().Magnitude() > 1e20 {
				t.Errorf("total momentum = %v, want near zero", p.Length().Magnitude())
			}
		})
	}
}

func TestBuildScalesUnits(t *testing.T) {
	sys, _, err := GetPreset("sun_earth").Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := sys.Bodies[1].Axis(0); math.Abs(got-1.496e11) > 1 {
		t.Errorf("earth x = %v, want 1.496e11", got)
	}
	if got := sys.Bodies[1].Radius.Magnitude(); got != 6.371e6 {
		t.Errorf("earth radius = %v, want 6.371e6", got)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"tick is length", func(c *Config) { c.Tick = "60m" }, quantity.ErrUnitMismatch},
		{"no bodies", func(c *Config) { c.Bodies = nil }, gravity.ErrNoBodies},
		{"mass is length", func(c *Config) { c.Bodies[0].Mass = "5m" }, quantity.ErrUnitMismatch},
		{"bad number", func(c *Config) { c.Tick = "soon" }, units.ErrInvalidNumber},
		{"strict unknown unit", func(c *Config) { c.StrictUnits = true; c.Bodies[0].Mass = "5 lb" }, units.ErrUnknownUnit},
		{"two-axis direction", func(c *Config) { c.Bodies[1].Momentum.Direction = []float64{0, 1} }, quantity.ErrLengthMismatch},
		{"zero steps", func(c *Config) { c.Steps = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			_, _, err := cfg.Build()
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.yaml")
	cfg := GetPreset("binary")
	cfg.StrictUnits = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Tick != cfg.Tick || loaded.Steps != cfg.Steps || !loaded.StrictUnits {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
	if len(loaded.Bodies) != 2 || loaded.Bodies[0].Mass != "1e30kg" {
		t.Errorf("bodies = %+v", loaded.Bodies)
	}
	if _, _, err := loaded.Build(); err != nil {
		t.Errorf("Build after Load failed: %v", err)
	}
}

func TestLang(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Language = "de"
	lang, err := cfg.Lang()
	if err != nil || lang != units.German {
		t.Errorf("Lang() = %v, %v", lang, err)
	}
}
