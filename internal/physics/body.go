package physics

import "math"

const (
	DefaultStiffness   = 0.08
	DefaultDamping     = 0.12
	DefaultInverseMass = 1.0
)

// Body is the kinematic state of the animated scalar. It is a value
// type: operations return a new Body, the receiver is never modified.
type Body struct {
	Position     float64
	Velocity     float64
	PendingForce float64
	InverseMass  float64
}

// NewBody returns a body at rest at pos with unit mass.
func NewBody(pos float64) Body {
	return Body{Position: pos, InverseMass: DefaultInverseMass}
}

// ApplyForce accumulates f into the pending force. Multiple force
// sources may be summed before a single Step consumes them.
func (b Body) ApplyForce(f float64) Body {
	b.PendingForce += f
	return b
}

// Step advances the body by one fixed unit of simulated time using the
// accumulated pending force, then clears it. Velocities are expressed
// in units per step, so no dt factor appears here.
func (b Body) Step() Body {
	acc := b.PendingForce * b.InverseMass
	b.Position += b.Velocity + 0.5*acc
	b.Velocity += acc
	b.PendingForce = 0
	return b
}

// Finite reports whether all kinematic fields are finite numbers.
func (b Body) Finite() bool {
	for _, v := range [...]float64{b.Position, b.Velocity, b.PendingForce, b.InverseMass} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Validate checks the body invariants. InverseMass must be strictly
// positive so that acceleration is always well defined.
func (b Body) Validate() error {
	if !b.Finite() {
		return ErrNonFinite
	}
	if b.InverseMass <= 0 {
		return ErrInvalidConfig
	}
	return nil
}
