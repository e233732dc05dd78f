package physics

import "math"

// Spring is the configuration of the restoring force pulling a body
// toward Rest.
type Spring struct {
	Stiffness float64
	Damping   float64
	Rest      float64
}

// NewSpring returns a spring with the default feel anchored at rest.
func NewSpring(rest float64) Spring {
	return Spring{Stiffness: DefaultStiffness, Damping: DefaultDamping, Rest: rest}
}

// Force computes the damped restoring force for the body's current
// state: attraction toward Rest scaled by Stiffness, opposed by a
// friction term proportional to velocity. No memoization; position and
// velocity change every step.
func (s Spring) Force(b Body) float64 {
	return s.Stiffness*(s.Rest-b.Position) - s.Damping*b.Velocity
}

// Energy returns the total mechanical energy of the body on this
// spring: kinetic plus elastic potential relative to Rest.
func (s Spring) Energy(b Body) float64 {
	stretch := b.Position - s.Rest
	return 0.5*b.Velocity*b.Velocity/b.InverseMass + 0.5*s.Stiffness*stretch*stretch
}

// Validate rejects non-finite or negative coefficients. Values are
// never clamped; a bad configuration fails fast at construction.
func (s Spring) Validate() error {
	for _, v := range [...]float64{s.Stiffness, s.Damping, s.Rest} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidConfig
		}
	}
	if s.Stiffness < 0 || s.Damping < 0 {
		return ErrInvalidConfig
	}
	return nil
}
