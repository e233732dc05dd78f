package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arjun-s/springstep/internal/engine"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
	if cfg.StepMillis != 10 {
		t.Errorf("expected 10ms step, got %d", cfg.StepMillis)
	}
	if cfg.MaxCatchup != 50 {
		t.Errorf("expected catch-up bound 50, got %d", cfg.MaxCatchup)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative stiffness", func(c *Config) { c.Stiffness = -1 }},
		{"negative damping", func(c *Config) { c.Damping = -0.1 }},
		{"zero inverse mass", func(c *Config) { c.InverseMass = 0 }},
		{"zero step", func(c *Config) { c.StepMillis = 0 }},
		{"negative catchup", func(c *Config) { c.MaxCatchup = -1 }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spring.yaml")

	cfg := DefaultConfig()
	cfg.Stiffness = 0.2
	cfg.Rest = 40

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spring.yaml")
	if err := os.WriteFile(path, []byte("stiffness: 0.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Stiffness != 0.5 {
		t.Errorf("expected stiffness 0.5, got %f", cfg.Stiffness)
	}
	if cfg.StepMillis != 10 {
		t.Errorf("unset fields should keep defaults, got step %d", cfg.StepMillis)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("snappy")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset must validate: %v", err)
	}

	cfg.Stiffness = 99
	if Presets["snappy"].Stiffness == 99 {
		t.Error("GetPreset must return a copy")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestAllPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %q invalid: %v", name, err)
		}
	}
}

func TestZeroCatchupBoundSurvivesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxCatchup = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("zero catch-up bound must validate: %v", err)
	}
	eng, err := cfg.Engine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := cfg.InitialState()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A stale sample implies 30 steps of lag; the configured zero
	// bound must reach the engine intact, so only one step lands.
	next, err := eng.Transition(s, engine.ClockTick{WallClock: 300})
	if err != nil {
		t.Fatalf("transition failed: %v", err)
	}
	if next.StepCount != 1 {
		t.Errorf("configured bound 0 was ignored; got %d steps", next.StepCount)
	}
}

func TestInitialState(t *testing.T) {
	cfg := DefaultConfig()
	s, err := cfg.InitialState()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Position() != cfg.Start {
		t.Errorf("expected start %f, got %f", cfg.Start, s.Position())
	}
	if s.Held {
		t.Error("initial state must not be held")
	}
}
