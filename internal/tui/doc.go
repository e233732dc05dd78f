// Package tui is the interactive terminal shell around the engine.
//
// It owns everything the engine deliberately does not: the real clock
// (frame ticks become ClockTick samples), the mouse (press, drag and
// release become PointerDown/PointerMove events), and the drawing of
// the ball on its rail. A harmonica spring smooths the camera toward
// the ball so large overshoots stay in view.
//
// # Key bindings
//
//	mouse drag - grab and move the ball
//	Space      - pause/resume the clock
//	Tab        - cycle spring presets
//	R          - reset
//	Q          - quit
package tui
