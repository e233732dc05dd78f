package engine

import "github.com/arjun-s/springstep/internal/physics"

// Vec2 is a pointer coordinate in the shell's render space. Only X
// feeds the body while held; Y is carried for shells that want it.
type Vec2 struct {
	X float64
	Y float64
}

// State is the full simulation record. It is a value: every accepted
// event produces a new State and the old one stays untouched, so the
// caller may freely keep historical snapshots.
type State struct {
	// WallClock is the last wall-clock sample, in milliseconds.
	WallClock int64
	// StepCount is the number of fixed steps applied so far. It only
	// grows, by exactly one per applied step.
	StepCount int64

	Spring physics.Spring
	Body   physics.Body

	// Held is true while the user is dragging the body. Integration is
	// suspended and position is slaved to Pointer.X.
	Held    bool
	Pointer Vec2
}

// NewState validates the configuration and returns the initial record:
// body resting at the spring's anchor, zero velocity, not held.
func NewState(spring physics.Spring, body physics.Body) (State, error) {
	if err := spring.Validate(); err != nil {
		return State{}, err
	}
	if err := body.Validate(); err != nil {
		return State{}, err
	}
	return State{Spring: spring, Body: body}, nil
}

// Position is the one value consumed downstream: the scalar location
// the shell maps onto a drawable shape.
func (s State) Position() float64 { return s.Body.Position }

// Energy reports the body's mechanical energy on the spring.
func (s State) Energy() float64 { return s.Spring.Energy(s.Body) }
