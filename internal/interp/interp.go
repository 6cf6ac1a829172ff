package interp

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/san-kum/linepaint/internal/canvas"
	"github.com/san-kum/linepaint/internal/history"
	"github.com/san-kum/linepaint/internal/logger"
	"github.com/san-kum/linepaint/internal/transcript"
)

const (
	msgDrawn       = "1 line drawn"
	msgSaved       = "saved as \"%s\""
	msgUndo        = "undo!"
	msgNothingUndo = "nothing to undo."
	msgUnknown     = "error: unknown command."
	msgTooFew      = "the number of point is not enough."
	msgNonInt      = "Non-int value is included."
	msgRange       = "coordinate out of range."
	msgCannotOpen  = "error: cannot open %s."
	msgCannotWrite = "error: cannot write %s."
)

type handler func(in *Interpreter, args []string) Result

// SaveFunc writes a transcript to path.
type SaveFunc func(path string, src io.WriterTo) error

type Interpreter struct {
	canvas      *canvas.Canvas
	log         *history.Log
	logger      *slog.Logger
	save        SaveFunc
	historyFile string
	verbs       map[string]handler
}

// New returns an interpreter drawing on c and undoing against log. A nil
// logger falls back to the process logger.
func New(c *canvas.Canvas, log *history.Log, l *slog.Logger) *Interpreter {
	if l == nil {
		l = logger.L()
	}
	return &Interpreter{
		canvas: c,
		log:    log,
		logger: l,
		save:        transcript.Save,
		historyFile: transcript.DefaultFile,
		verbs: map[string]handler{
			"line": (*Interpreter).line,
			"save": (*Interpreter).saveHistory,
			"undo": (*Interpreter).undo,
			"quit": (*Interpreter).quit,
		},
	}
}

// SetSaveFunc replaces the transcript writer used by save.
func (in *Interpreter) SetSaveFunc(fn SaveFunc) {
	in.save = fn
}

// SetHistoryFile sets the path save writes to when given no argument.
// An empty path restores the default.
func (in *Interpreter) SetHistoryFile(path string) {
	if path == "" {
		path = transcript.DefaultFile
	}
	in.historyFile = path
}

// Interpret is a one-shot helper for New(c, log, nil).Interpret(line).
func Interpret(line string, log *history.Log, c *canvas.Canvas) Result {
	return New(c, log, nil).Interpret(line)
}

// Interpret classifies and applies a single command line. It does not
// record the line; callers append Normal lines to the log themselves.
func (in *Interpreter) Interpret(line string) Result {
	tokens := tokenize(line)
	if len(tokens) == 0 {
		return in.classified(Result{Class: Unknown, Message: msgUnknown, Err: ErrUnknownCommand})
	}

	verb := tokens[0]
	h, ok := in.verbs[verb]
	if !ok {
		return in.classified(Result{
			Class:   Unknown,
			Verb:    verb,
			Message: msgUnknown,
			Err:     fmt.Errorf("%w: %s", ErrUnknownCommand, verb),
		})
	}

	r := h(in, tokens[1:])
	r.Verb = verb
	return in.classified(r)
}

func (in *Interpreter) classified(r Result) Result {
	in.logger.Debug("command.classified", "verb", r.Verb, "class", r.Class.String(), "err", r.Err)
	return r
}

func (in *Interpreter) line(args []string) Result {
	p, err := parsePoints(args)
	if err != nil {
		msg := msgNonInt
		switch {
		case errors.Is(err, ErrTooFewPoints):
			msg = msgTooFew
		case errors.Is(err, ErrCoordinateRange):
			msg = msgRange
		}
		return Result{Class: ParseError, Message: msg, Err: err}
	}

	in.canvas.DrawLine(p[0], p[1], p[2], p[3])
	return Result{Class: Normal, Message: msgDrawn}
}

func (in *Interpreter) saveHistory(args []string) Result {
	path := in.historyFile
	if len(args) > 0 {
		path = args[0]
	}

	if err := in.save(path, in.log); err != nil {
		in.logger.Warn("history.save_failed", "path", path, "err", err)
		msg := fmt.Sprintf(msgCannotWrite, path)
		if errors.Is(err, transcript.ErrOpen) {
			msg = fmt.Sprintf(msgCannotOpen, path)
		}
		return Result{Class: CommandOnly, Message: msg, Err: err}
	}

	in.logger.Info("history.saved", "path", path, "entries", in.log.Len())
	return Result{Class: CommandOnly, Message: fmt.Sprintf(msgSaved, path)}
}

func (in *Interpreter) undo(_ []string) Result {
	if in.log.Len() == 0 {
		return Result{Class: CommandOnly, Message: msgNothingUndo, Err: history.ErrEmpty}
	}

	in.canvas.Reset()
	if _, err := in.log.RemoveLast(); err != nil {
		return Result{Class: CommandOnly, Message: msgNothingUndo, Err: err}
	}
	drawn := in.Replay(slices.Values(in.log.Snapshot()))

	in.logger.Info("history.replayed", "entries", in.log.Len(), "drawn", drawn)
	return Result{Class: CommandOnly, Message: msgUndo}
}

func (in *Interpreter) quit(_ []string) Result {
	return Result{Class: Exit}
}

// Replay draws every line command in entries onto the canvas, in order,
// and returns how many were drawn. Other verbs and malformed lines are
// skipped. The log is never modified.
func (in *Interpreter) Replay(entries iter.Seq[string]) int {
	drawn := 0
	for entry := range entries {
		tokens := tokenize(entry)
		if len(tokens) == 0 || tokens[0] != "line" {
			in.logger.Debug("history.replay_skipped", "entry", strings.TrimSpace(entry))
			continue
		}
		p, err := parsePoints(tokens[1:])
		if err != nil {
			in.logger.Debug("history.replay_skipped", "entry", strings.TrimSpace(entry), "err", err)
			continue
		}
		in.canvas.DrawLine(p[0], p[1], p[2], p[3])
		drawn++
	}
	return drawn
}

func tokenize(line string) []string {
	return strings.Fields(strings.TrimSuffix(line, "\n"))
}

// parsePoints reads four 32-bit coordinates; tokens past the fourth are
// ignored.
func parsePoints(args []string) ([4]int, error) {
	var p [4]int
	if len(args) < len(p) {
		return p, fmt.Errorf("%w: got %d of %d", ErrTooFewPoints, len(args), len(p))
	}
	for i := range p {
		v, err := strconv.ParseInt(args[i], 10, 32)
		if errors.Is(err, strconv.ErrRange) {
			return p, fmt.Errorf("%w: %s", ErrCoordinateRange, args[i])
		}
		if err != nil {
			return p, fmt.Errorf("%w: %q", ErrNonInteger, args[i])
		}
		p[i] = int(v)
	}
	return p, nil
}
