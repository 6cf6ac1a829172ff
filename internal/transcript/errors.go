package transcript

import (
	"errors"
	"fmt"
)

var (
	// ErrOpen indicates the transcript destination could not be opened.
	ErrOpen = errors.New("transcript: cannot open file")

	// ErrNotFound indicates an archived session that does not exist.
	ErrNotFound = errors.New("transcript: session not found")

	// ErrInvalidName indicates an archive name that is not a single path
	// element.
	ErrInvalidName = errors.New("transcript: invalid session name")
)

// OpError wraps a file failure with the operation and path involved.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("transcript %s %s", e.Op, e.Path)
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
