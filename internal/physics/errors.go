package physics

import "errors"

// Domain errors for kinematic operations.
var (
	// ErrInvalidConfig indicates a non-positive inverse mass or a
	// negative spring coefficient.
	ErrInvalidConfig = errors.New("physics: invalid configuration")

	// ErrNonFinite indicates a NaN or Inf kinematic value.
	ErrNonFinite = errors.New("physics: non-finite state (NaN or Inf detected)")
)
