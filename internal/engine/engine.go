package engine

import (
	"fmt"

	"github.com/arjun-s/springstep/internal/physics"
)

const (
	// DefaultStepMillis is the fixed simulated-time tick: one
	// integration step per 10ms of wall-clock time.
	DefaultStepMillis = 10

	// DefaultMaxCatchup caps how many steps of lag are chased within a
	// single clock sample. Beyond it the engine accepts drift instead
	// of spending unbounded work, e.g. after a long driver stall.
	DefaultMaxCatchup = 50
)

// Engine holds the timing tunables and applies events to a State. It
// carries no mutable state itself; Transition is a pure function of
// its arguments and a single Engine may serve any number of states.
type Engine struct {
	stepMillis int64
	maxCatchup int64
}

// Options configures an Engine. All fields are taken literally: a
// MaxCatchup of zero is a real bound (never chase lag), not a request
// for the default. Start from DefaultOptions for the standard tunables.
type Options struct {
	StepMillis int64
	MaxCatchup int64
}

// DefaultOptions returns the standard timing tunables.
func DefaultOptions() Options {
	return Options{StepMillis: DefaultStepMillis, MaxCatchup: DefaultMaxCatchup}
}

// New validates opts and returns an Engine.
func New(opts Options) (*Engine, error) {
	if opts.StepMillis <= 0 {
		return nil, fmt.Errorf("engine: step duration must be positive, got %dms", opts.StepMillis)
	}
	if opts.MaxCatchup < 0 {
		return nil, fmt.Errorf("engine: catch-up bound must be non-negative, got %d", opts.MaxCatchup)
	}
	return &Engine{stepMillis: opts.StepMillis, maxCatchup: opts.MaxCatchup}, nil
}

// StepMillis returns the fixed step duration in milliseconds.
func (e *Engine) StepMillis() int64 { return e.stepMillis }

// Transition applies one event and returns the successor state. The
// input state is never modified; on error it is returned unchanged so
// the caller keeps the last valid state.
func (e *Engine) Transition(s State, ev Event) (State, error) {
	switch ev := ev.(type) {
	case ClockTick:
		return e.tick(s, ev.WallClock)
	case PointerDown:
		s.Held = ev.Held
		return s, nil
	case PointerMove:
		s.Pointer = ev.Position
		if s.Held {
			s.Body.Position = ev.Position.X
		}
		return s, nil
	default:
		return s, nil
	}
}

// tick advances the simulation for one wall-clock sample. While the
// body is held, integration is suspended and only the clock advances.
// Otherwise at least one step is applied, then the loop keeps stepping
// while the simulation is behind the wall clock and the lag is within
// the catch-up bound.
func (e *Engine) tick(s State, wallClock int64) (State, error) {
	if s.Held {
		s.WallClock = wallClock
		return s, nil
	}

	expected := wallClock / e.stepMillis
	cur := s
	for {
		candidate := e.stepOnce(cur, wallClock)
		if !candidate.Body.Finite() {
			return s, &StepError{Step: cur.StepCount, WallClock: wallClock, Err: physics.ErrNonFinite}
		}

		lag := expected - cur.StepCount
		if lag > 0 && lag <= e.maxCatchup {
			cur = candidate
			continue
		}
		return candidate, nil
	}
}

// stepOnce applies the spring force and one integration step.
func (e *Engine) stepOnce(s State, wallClock int64) State {
	s.Body = s.Body.ApplyForce(s.Spring.Force(s.Body)).Step()
	s.StepCount++
	s.WallClock = wallClock
	return s
}
