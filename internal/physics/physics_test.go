package physics

import (
	"math"
	"testing"
)

func TestStepConsumesForce(t *testing.T) {
	b := Body{Position: 1.0, Velocity: 2.0, PendingForce: 4.0, InverseMass: 0.5}
	next := b.Step()

	if next.PendingForce != 0 {
		t.Errorf("pending force should be cleared, got %f", next.PendingForce)
	}
	if math.Abs(next.Position-(1.0+2.0+0.5*4.0*0.5)) > 1e-12 {
		t.Errorf("unexpected position %f", next.Position)
	}
	if math.Abs(next.Velocity-(2.0+4.0*0.5)) > 1e-12 {
		t.Errorf("unexpected velocity %f", next.Velocity)
	}
	if b.PendingForce != 4.0 {
		t.Error("receiver must not be mutated")
	}
}

func TestStepDeterministic(t *testing.T) {
	b := Body{Position: -3.2, Velocity: 0.7, PendingForce: 1.1, InverseMass: 2.0}
	a := b.Step()
	c := b.Step()
	if a != c {
		t.Errorf("same input must yield identical output: %+v vs %+v", a, c)
	}
}

func TestApplyForceAccumulates(t *testing.T) {
	b := NewBody(0).ApplyForce(1.5).ApplyForce(-0.5)
	if math.Abs(b.PendingForce-1.0) > 1e-12 {
		t.Errorf("expected summed force 1.0, got %f", b.PendingForce)
	}
}

func TestSpringForceAtRest(t *testing.T) {
	s := NewSpring(40)
	b := NewBody(40)
	if f := s.Force(b); f != 0 {
		t.Errorf("force at rest should be zero, got %f", f)
	}
}

func TestSpringForceDirection(t *testing.T) {
	s := Spring{Stiffness: 0.1, Damping: 0.2, Rest: 0}

	right := s.Force(Body{Position: -10, InverseMass: 1})
	if right <= 0 {
		t.Errorf("body left of rest should be pulled right, got %f", right)
	}

	left := s.Force(Body{Position: 10, InverseMass: 1})
	if left >= 0 {
		t.Errorf("body right of rest should be pulled left, got %f", left)
	}

	drag := s.Force(Body{Position: 0, Velocity: 5, InverseMass: 1})
	if drag >= 0 {
		t.Errorf("damping should oppose velocity, got %f", drag)
	}
}

func TestConvergenceTowardRest(t *testing.T) {
	s := NewSpring(0)
	b := NewBody(100)

	for i := 0; i < 500; i++ {
		b = b.ApplyForce(s.Force(b)).Step()
	}

	if math.Abs(b.Position) > 5 {
		t.Errorf("displacement after 500 steps should decay below 5%% of initial, got %f", b.Position)
	}
	if !b.Finite() {
		t.Error("state diverged")
	}
}

func TestEquilibriumIsStable(t *testing.T) {
	s := NewSpring(25)
	b := NewBody(25)

	for i := 0; i < 100; i++ {
		b = b.ApplyForce(s.Force(b)).Step()
	}

	if b.Position != 25 || b.Velocity != 0 {
		t.Errorf("body at rest must not drift, got pos=%f vel=%f", b.Position, b.Velocity)
	}
}

func TestEnergyDecays(t *testing.T) {
	s := NewSpring(0)
	b := NewBody(50)

	initial := s.Energy(b)
	for i := 0; i < 200; i++ {
		b = b.ApplyForce(s.Force(b)).Step()
	}
	final := s.Energy(b)

	if final >= initial {
		t.Errorf("damped spring must dissipate energy: initial %f, final %f", initial, final)
	}
}

func TestValidate(t *testing.T) {
	if err := (Body{InverseMass: 1}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (Body{InverseMass: 0}).Validate(); err == nil {
		t.Error("zero inverse mass should be rejected")
	}
	if err := (Body{InverseMass: -1}).Validate(); err == nil {
		t.Error("negative inverse mass should be rejected")
	}
	if err := (Body{Position: math.NaN(), InverseMass: 1}).Validate(); err == nil {
		t.Error("NaN position should be rejected")
	}

	if err := (Spring{Stiffness: -0.1}).Validate(); err == nil {
		t.Error("negative stiffness should be rejected")
	}
	if err := (Spring{Damping: math.Inf(1)}).Validate(); err == nil {
		t.Error("infinite damping should be rejected")
	}
	if err := NewSpring(0).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFinite(t *testing.T) {
	if !(Body{InverseMass: 1}).Finite() {
		t.Error("plain body should be finite")
	}
	if (Body{Velocity: math.Inf(-1), InverseMass: 1}).Finite() {
		t.Error("infinite velocity should be detected")
	}
}
