// Package session runs the interactive read-interpret-render loop and
// owns the canvas and history for its lifetime.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/san-kum/linepaint/internal/canvas"
	"github.com/san-kum/linepaint/internal/history"
	"github.com/san-kum/linepaint/internal/interp"
	"github.com/san-kum/linepaint/internal/logger"
)

const prompt = "> "

type Options struct {
	Width, Height int
	Pen           rune
	StrictClip    bool
	// Redraw repaints the canvas in place using cursor movement. Only
	// useful when output is a terminal.
	Redraw bool
	// HistoryFile is where a bare save writes. Empty means history.txt.
	HistoryFile string
	Logger      *slog.Logger
}

type Session struct {
	Canvas *canvas.Canvas
	Log    *history.Log

	interp *interp.Interpreter
	logger *slog.Logger
	redraw bool
}

func New(opts Options) (*Session, error) {
	c, err := canvas.New(opts.Width, opts.Height, opts.Pen)
	if err != nil {
		return nil, err
	}
	c.StrictClip = opts.StrictClip

	l := opts.Logger
	if l == nil {
		l = logger.L()
	}
	l = logger.ForCanvas(l, c.Width, c.Height, c.Pen)

	log := history.New()
	in := interp.New(c, log, l)
	in.SetHistoryFile(opts.HistoryFile)
	return &Session{
		Canvas: c,
		Log:    log,
		interp: in,
		logger: l,
		redraw: opts.Redraw,
	}, nil
}

// Handle interprets one line and records it when it drew something.
func (s *Session) Handle(line string) interp.Result {
	s.logger.Debug("command.received", "line", line)
	r := s.interp.Interpret(line)
	if r.Class == interp.Normal {
		s.Log.Append(history.Terminate(line))
	}
	return r
}

// Run reads commands from in until quit or end of input, printing the
// canvas and a status line to out after each one.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	br := bufio.NewReader(in)
	w := bufio.NewWriter(out)

	s.logger.Info("session.started", "redraw", s.redraw)

	if s.redraw {
		fmt.Fprintln(w)
	}

	var runErr error
	for {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		fmt.Fprint(w, s.Canvas.Render())
		fmt.Fprint(w, prompt)
		if err := w.Flush(); err != nil {
			runErr = err
			break
		}

		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			runErr = err
			break
		}
		if line == "" {
			break
		}

		r := s.Handle(line)
		if r.Class == interp.Exit {
			break
		}
		s.status(w, r)
	}

	if s.redraw {
		fmt.Fprint(w, clearScreen)
	} else {
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil && runErr == nil {
		runErr = err
	}

	s.logger.Info("session.ended", "entries", s.Log.Len(), "err", runErr)
	return runErr
}

func (s *Session) status(w io.Writer, r interp.Result) {
	if !s.redraw {
		fmt.Fprintln(w, r.Message)
		return
	}
	fmt.Fprint(w, clearLine)
	fmt.Fprintln(w, r.Message)
	// back over the status and command lines, then to the top border
	fmt.Fprint(w, cursorUp(2))
	fmt.Fprint(w, clearLine)
	fmt.Fprint(w, cursorUp(s.Canvas.Height+2))
}
