package canvas

import "errors"

// ErrInvalidDimension indicates a non-positive width or height.
var ErrInvalidDimension = errors.New("canvas: width and height must be positive")
