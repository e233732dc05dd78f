package trace

import (
	"math"

	"github.com/arjun-s/springstep/internal/engine"
)

// Metric accumulates a scalar summary over observed states.
type Metric interface {
	Name() string
	Observe(s engine.State)
	Value() float64
	Reset()
}

// PeakDisplacement tracks the largest distance from the rest point.
type PeakDisplacement struct {
	peak float64
}

func NewPeakDisplacement() *PeakDisplacement { return &PeakDisplacement{} }

func (m *PeakDisplacement) Name() string { return "peak_displacement" }

func (m *PeakDisplacement) Observe(s engine.State) {
	d := math.Abs(s.Position() - s.Spring.Rest)
	if d > m.peak {
		m.peak = d
	}
}

func (m *PeakDisplacement) Value() float64 { return m.peak }
func (m *PeakDisplacement) Reset()         { m.peak = 0 }

// Settling counts the trailing run of samples inside a tolerance band
// around the rest point. A long tail means the spring has settled.
type Settling struct {
	tolerance float64
	run       int
}

func NewSettling(tolerance float64) *Settling {
	return &Settling{tolerance: tolerance}
}

func (m *Settling) Name() string { return "settled_samples" }

func (m *Settling) Observe(s engine.State) {
	if math.Abs(s.Position()-s.Spring.Rest) <= m.tolerance {
		m.run++
	} else {
		m.run = 0
	}
}

func (m *Settling) Value() float64 { return float64(m.run) }
func (m *Settling) Reset()         { m.run = 0 }

// EnergyDrift records the ratio of final to initial mechanical energy.
// For a damped spring released from displacement it should fall toward
// zero; values near or above one flag a configuration that is not
// dissipating.
type EnergyDrift struct {
	initial float64
	last    float64
	seen    bool
}

func NewEnergyDrift() *EnergyDrift { return &EnergyDrift{} }

func (m *EnergyDrift) Name() string { return "energy_ratio" }

func (m *EnergyDrift) Observe(s engine.State) {
	e := s.Energy()
	if !m.seen {
		m.initial = e
		m.seen = true
	}
	m.last = e
}

func (m *EnergyDrift) Value() float64 {
	if !m.seen || m.initial == 0 {
		return 0
	}
	return m.last / m.initial
}

func (m *EnergyDrift) Reset() {
	m.initial, m.last, m.seen = 0, 0, false
}
