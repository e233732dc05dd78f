package engine

// Event is the closed union of inputs the engine accepts. The three
// variants below are the only implementations.
type Event interface {
	isEvent()
}

// ClockTick carries one wall-clock sample from the frame driver, in
// milliseconds. Samples are expected to be non-decreasing; only deltas
// matter, the epoch is the driver's choice.
type ClockTick struct {
	WallClock int64
}

// PointerDown toggles held mode: true on press, false on release.
// Applying the same value twice is a no-op beyond the assignment.
type PointerDown struct {
	Held bool
}

// PointerMove carries the latest pointer coordinate. While held, the
// body's position tracks Position.X directly; velocity and pending
// force are left alone so integration resumes from them on release.
type PointerMove struct {
	Position Vec2
}

func (ClockTick) isEvent()   {}
func (PointerDown) isEvent() {}
func (PointerMove) isEvent() {}
