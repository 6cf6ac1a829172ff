// Package transcript reads and writes plain-text command transcripts and
// keeps an archive of named sessions.
package transcript

import (
	"fmt"
	"io"
	"os"

	"github.com/san-kum/linepaint/internal/history"
)

// DefaultFile is the transcript path used when save is given no name.
const DefaultFile = "history.txt"

// Save writes the log to path, one command per line, truncating any
// existing file. The file is closed before Save returns.
func Save(path string, src io.WriterTo) (err error) {
	if path == "" {
		path = DefaultFile
	}
	f, err := os.Create(path)
	if err != nil {
		return &OpError{Op: "open", Path: path, Err: fmt.Errorf("%w: %w", ErrOpen, err)}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &OpError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if _, err := src.WriteTo(f); err != nil {
		return &OpError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Load reads a transcript written by Save.
func Load(path string) (*history.Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpError{Op: "open", Path: path, Err: fmt.Errorf("%w: %w", ErrOpen, err)}
	}
	defer f.Close()

	l, err := history.Read(f)
	if err != nil {
		return nil, &OpError{Op: "read", Path: path, Err: err}
	}
	return l, nil
}
