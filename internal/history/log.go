// Package history records accepted drawing commands in the order they
// were accepted so a canvas can be rebuilt by replaying them.
package history

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
)

// Log is an append-only sequence of command lines. Only the last entry
// can be removed.
type Log struct {
	entries []string
}

func New() *Log {
	return &Log{}
}

func (l *Log) Append(text string) {
	l.entries = append(l.entries, text)
}

// RemoveLast drops and returns the newest entry.
func (l *Log) RemoveLast() (string, error) {
	if len(l.entries) == 0 {
		return "", ErrEmpty
	}
	last := l.entries[len(l.entries)-1]
	l.entries[len(l.entries)-1] = ""
	l.entries = l.entries[:len(l.entries)-1]
	return last, nil
}

func (l *Log) Len() int {
	return len(l.entries)
}

// All yields entries oldest first. The sequence can be ranged over more
// than once.
func (l *Log) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range l.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Snapshot copies the current entries; later log mutations do not affect it.
func (l *Log) Snapshot() []string {
	return append([]string(nil), l.entries...)
}

// WriteTo writes every entry back to back. Entries carry their own line
// terminators. An empty log writes nothing.
func (l *Log) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, e := range l.entries {
		n, err := io.WriteString(w, e)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Read builds a log from a transcript, one entry per line. A final line
// without a terminator gets one.
func Read(r io.Reader) (*Log, error) {
	l := New()
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			l.Append(Terminate(line))
		}
		if errors.Is(err, io.EOF) {
			return l, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Terminate returns text ending in exactly one trailing newline.
func Terminate(text string) string {
	if strings.HasSuffix(text, "\n") {
		return text
	}
	return text + "\n"
}
