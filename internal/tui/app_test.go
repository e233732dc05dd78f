package tui

import (
	"testing"

	"github.com/arjun-s/springstep/internal/config"
)

func TestCoordinateMappingRoundTrip(t *testing.T) {
	m, err := NewModel(config.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.width = 80
	m.cam = 100

	for _, col := range []int{0, 17, 40, 79} {
		world := m.worldX(col)
		if back := m.screenX(world); back != col {
			t.Errorf("column %d maps to world %f and back to %d", col, world, back)
		}
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	cfg := config.DefaultConfig()
	m, err := NewModel(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.advance()
	if m.state.StepCount == 0 {
		t.Fatal("a clock sample must apply at least one step")
	}

	m.reset(cfg)
	if m.state.StepCount != 0 {
		t.Errorf("expected fresh state, got %d steps", m.state.StepCount)
	}
	if len(m.history) != 0 {
		t.Errorf("expected cleared history, got %d entries", len(m.history))
	}
	if m.state.Position() != cfg.Start {
		t.Errorf("expected start position %f, got %f", cfg.Start, m.state.Position())
	}
	if !m.running || m.lastErr != nil {
		t.Error("reset should clear pause and error state")
	}
}

func TestLagStepsNeverNegative(t *testing.T) {
	m, err := NewModel(config.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A caught-up tick leaves StepCount one ahead of the wall-clock
	// quotient; the display must show zero lag, not a negative count.
	m.advance()
	if m.state.StepCount <= m.state.WallClock/m.eng.StepMillis() {
		t.Fatalf("expected the absorbed step to run ahead, got %d steps at %dms",
			m.state.StepCount, m.state.WallClock)
	}
	if got := m.lagSteps(); got != 0 {
		t.Errorf("expected clamped lag 0, got %d", got)
	}
}

func TestCyclePresetKeepsModelValid(t *testing.T) {
	m, err := NewModel(config.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < len(config.ListPresets())+1; i++ {
		m.cyclePreset()
		if m.eng == nil {
			t.Fatal("cycling presets must keep a usable engine")
		}
		if err := m.cfg.Validate(); err != nil {
			t.Fatalf("preset config invalid: %v", err)
		}
	}
}
