// Package engine reconciles a fixed-timestep spring simulation against
// an irregular wall clock.
//
// The engine is a reducer: [Engine.Transition] maps a [State] and one
// [Event] to a successor State, with no ambient clock, no goroutines
// and no locks. The driving shell samples real time once per frame and
// feeds [ClockTick] events; the engine applies as many fixed
// integration steps as the sample implies, bounded so a stalled driver
// (a backgrounded process resuming after seconds of silence) costs at
// most the catch-up bound in extra steps before drift is accepted.
//
// Pointer events switch the state machine between two modes: Free,
// where the spring integrates normally, and Held, where integration is
// suspended and the body's position is slaved to the pointer.
//
// # Thread safety
//
// Transition is pure, but callers must not invoke it concurrently for
// the same logical state stream; state is an immutable value replaced
// atomically between calls, so serializing the calls is the only
// synchronization needed.
package engine
