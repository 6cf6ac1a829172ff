// Package logger holds the structured logger shared by the drawing
// packages. Records go to a file under the data dir since stdout is the
// canvas itself.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const fileName = "linepaint.log"

type Config struct {
	Dir   string
	Debug bool
}

// sink is the currently installed logger and the file behind it, if any.
type sink struct {
	mu   sync.RWMutex
	l    *slog.Logger
	f    *os.File
	path string
}

var active = &sink{l: slog.New(slog.NewTextHandler(io.Discard, nil))}

func (s *sink) swap(l *slog.Logger, f *os.File, path string) *os.File {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.f
	s.l, s.f, s.path = l, f, path
	return old
}

// Setup appends to <Dir>/logs/linepaint.log. Calling the returned func
// closes the file; until Setup succeeds again L discards everything.
func Setup(cfg Config) (func() error, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	dir = filepath.Join(filepath.Clean(dir), "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, fileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	l := New(f, level)
	if old := active.swap(l, f, path); old != nil {
		old.Close()
	}
	l.Debug("log.opened", "path", path)

	return func() error {
		f := active.swap(slog.New(slog.NewTextHandler(io.Discard, nil)), nil, "")
		if f == nil {
			return nil
		}
		return f.Close()
	}, nil
}

// New returns a JSON logger on w. Times are UTC with millisecond
// precision; a "line" attribute loses its trailing newline so raw command
// input stays on one record line.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch {
			case len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime:
				return slog.String(a.Key, a.Value.Time().UTC().Format("2006-01-02T15:04:05.000Z"))
			case a.Key == "line" && a.Value.Kind() == slog.KindString:
				return slog.String(a.Key, strings.TrimRight(a.Value.String(), "\r\n"))
			}
			return a
		},
	}))
}

// ForCanvas tags every record from l with the canvas geometry and pen.
func ForCanvas(l *slog.Logger, width, height int, pen rune) *slog.Logger {
	return l.With(slog.Group("canvas",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.String("pen", string(pen)),
	))
}

func L() *slog.Logger {
	active.mu.RLock()
	defer active.mu.RUnlock()
	return active.l
}

// Path is the open log file, or "" when logging is discarded.
func Path() string {
	active.mu.RLock()
	defer active.mu.RUnlock()
	return active.path
}
