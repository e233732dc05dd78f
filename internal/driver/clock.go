package driver

import (
	"context"
	"fmt"
	"time"
)

// FrameClock samples wall-clock time on a best-effort periodic basis
// and hands each sample to a single handler, in milliseconds relative
// to the clock's epoch. The engine never sees an ambient clock; this
// is the only place real time enters the system.
//
// All handler invocations happen on one goroutine, so a handler that
// folds samples into an engine state needs no locking.
type FrameClock struct {
	interval time.Duration
	epoch    time.Time
}

// NewFrameClock targets the given frames per second.
func NewFrameClock(fps int) (*FrameClock, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("driver: frame rate must be positive, got %d", fps)
	}
	return &FrameClock{interval: time.Second / time.Duration(fps)}, nil
}

// Run delivers samples until ctx is cancelled. The epoch is the moment
// Run is called, so the first samples are small and only deltas carry
// meaning.
func (c *FrameClock) Run(ctx context.Context, handle func(wallMillis int64)) error {
	c.epoch = time.Now()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			handle(now.Sub(c.epoch).Milliseconds())
		}
	}
}

// SyntheticClock generates deterministic frame timestamps without any
// real time source. Headless runs use it so results are reproducible.
type SyntheticClock struct {
	interval int64
	jitter   int64
	now      int64
}

// NewSyntheticClock emits samples intervalMillis apart. A non-zero
// jitter adds a repeating irregularity to exercise the catch-up path
// the way a wobbly display callback would, while staying deterministic.
func NewSyntheticClock(intervalMillis, jitterMillis int64) *SyntheticClock {
	if jitterMillis >= intervalMillis {
		// Keep the sample sequence non-decreasing.
		jitterMillis = intervalMillis - 1
	}
	return &SyntheticClock{interval: intervalMillis, jitter: jitterMillis}
}

// Next returns the following timestamp. Samples are non-decreasing.
func (c *SyntheticClock) Next() int64 {
	c.now += c.interval
	if c.jitter == 0 {
		return c.now
	}
	// Triangle wave over the sample index keeps jitter bounded and
	// free of any random source.
	phase := (c.now / c.interval) % 4
	switch phase {
	case 1:
		return c.now + c.jitter
	case 3:
		return c.now - c.jitter
	default:
		return c.now
	}
}
