package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/antsim/internal/langton"
	"github.com/san-kum/antsim/internal/palette"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Size != 101 || cfg.Rules != "10" {
		t.Errorf("expected classic 101/10, got %d/%s", cfg.Size, cfg.Rules)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	c, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	ants := c.Ants()
	if len(ants) != 1 || ants[0] != (langton.Ant{Heading: langton.East, Row: 50, Col: 50}) {
		t.Errorf("unexpected ants %+v", ants)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("four-ants")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Ants) != 4 || cfg.Size != 51 {
		t.Errorf("unexpected four-ants preset: %+v", cfg)
	}

	// Presets are fresh copies.
	*cfg.Ants[0].Row = 0
	if *GetPreset("four-ants").Ants[0].Row != 25 {
		t.Error("mutating a preset leaked into the registry")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsBuild(t *testing.T) {
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			cfg := GetPreset(name)
			p, err := cfg.Palette()
			if err != nil {
				t.Fatalf("palette: %v", err)
			}
			if len(p) != len(cfg.Rules) {
				t.Errorf("palette has %d colours for rules %s", len(p), cfg.Rules)
			}
			if _, err := cfg.Build(); err != nil {
				t.Fatalf("build: %v", err)
			}
		})
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Error("presets not sorted")
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero size", func(c *Config) { c.Size = 0 }, langton.ErrInvalidGridSize},
		{"bad rules", func(c *Config) { c.Rules = "1a" }, langton.ErrInvalidRuleString},
		{"empty rules", func(c *Config) { c.Rules = "" }, langton.ErrInvalidRuleString},
		{"bad heading", func(c *Config) { c.Ants[0].Heading = "Q" }, langton.ErrInvalidHeading},
		{"row off grid", func(c *Config) { c.Ants[0].Row = intp(101) }, langton.ErrInvalidPosition},
		{"palette mismatch", func(c *Config) { c.Colors = []string{"#ffffff"} }, palette.ErrMismatch},
		{"bad colour", func(c *Config) { c.Colors = []string{"#ffffff", "nope"} }, palette.ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
			if _, err := cfg.Build(); err == nil {
				t.Error("Build() should fail on an invalid config")
			}
		})
	}
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ants.yaml")

	cfg := GetPreset("rule-110")
	cfg.Ants = append(cfg.Ants, AntConfig{})
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Rules != "110" || loaded.Size != 51 || len(loaded.Colors) != 3 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if len(loaded.Ants) != 2 || loaded.Ants[1].Row != nil || loaded.Ants[1].Heading != "" {
		t.Errorf("random ant not preserved: %+v", loaded.Ants)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := []byte("rules: \"1100\"\nants:\n  - heading: n\n    row: 3\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Size != DefaultSize {
		t.Errorf("size should default to %d, got %d", DefaultSize, cfg.Size)
	}

	c, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	a := c.Ants()[0]
	if a.Heading != langton.North || a.Row != 3 {
		t.Errorf("unexpected ant %+v", a)
	}
	if p, _ := cfg.Palette(); len(p) != 4 {
		t.Errorf("default palette should follow the rule length, got %d", len(p))
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
