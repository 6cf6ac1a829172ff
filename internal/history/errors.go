package history

import "errors"

// ErrEmpty indicates an operation that needs at least one recorded command.
var ErrEmpty = errors.New("history: no commands recorded")
