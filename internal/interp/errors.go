package interp

import "errors"

var (
	// ErrUnknownCommand indicates an unrecognized or missing verb.
	ErrUnknownCommand = errors.New("interp: unknown command")

	// ErrTooFewPoints indicates a line command with fewer than four coordinates.
	ErrTooFewPoints = errors.New("interp: not enough coordinates")

	// ErrNonInteger indicates a coordinate that is not a base-10 integer.
	ErrNonInteger = errors.New("interp: coordinate is not an integer")

	// ErrCoordinateRange indicates a coordinate that does not fit in 32 bits.
	ErrCoordinateRange = errors.New("interp: coordinate out of range")
)
