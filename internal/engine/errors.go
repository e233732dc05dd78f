package engine

import "fmt"

// StepError reports a rejected integration step with its simulation
// context. It wraps the underlying cause, typically
// physics.ErrNonFinite when a pathological configuration blows up.
type StepError struct {
	Step      int64
	WallClock int64
	Err       error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("engine: step %d (t=%dms): %v", e.Step, e.WallClock, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
