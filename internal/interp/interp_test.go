package interp_test

import (
	"errors"
	"io"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/linepaint/internal/canvas"
	"github.com/san-kum/linepaint/internal/history"
	"github.com/san-kum/linepaint/internal/interp"
	"github.com/san-kum/linepaint/internal/transcript"
)

var _ = Describe("Interpreter", func() {
	var (
		c   *canvas.Canvas
		log *history.Log
		in  *interp.Interpreter
	)

	newCanvas := func(w, h int) *canvas.Canvas {
		cv, err := canvas.New(w, h, '*')
		Expect(err).NotTo(HaveOccurred())
		return cv
	}

	// accept records Normal lines the way the session loop does.
	accept := func(line string) interp.Result {
		r := in.Interpret(line)
		if r.Class == interp.Normal {
			log.Append(history.Terminate(line))
		}
		return r
	}

	BeforeEach(func() {
		c = newCanvas(5, 5)
		log = history.New()
		in = interp.New(c, log, nil)
	})

	Describe("line", func() {
		It("draws a diagonal and reports Normal", func() {
			r := in.Interpret("line 0 0 2 2\n")
			Expect(r.Class).To(Equal(interp.Normal))
			Expect(r.Message).To(Equal("1 line drawn"))
			Expect(r.Err).NotTo(HaveOccurred())
			Expect(c.At(0, 0)).To(Equal('*'))
			Expect(c.At(1, 1)).To(Equal('*'))
			Expect(c.At(2, 2)).To(Equal('*'))
			Expect(c.Ink()).To(Equal(3))
		})

		It("does not record the line itself", func() {
			in.Interpret("line 0 0 2 2")
			Expect(log.Len()).To(BeZero())
		})

		It("accepts signed coordinates and ignores extra tokens", func() {
			r := in.Interpret("line +1 -0 1 4 junk")
			Expect(r.Class).To(Equal(interp.Normal))
			Expect(c.Ink()).To(Equal(5))
		})

		It("splits on any whitespace", func() {
			r := in.Interpret("line\t0  0\t4 0\r\n")
			Expect(r.Class).To(Equal(interp.Normal))
			Expect(c.Rows()[0]).To(Equal("*****"))
		})

		It("rejects too few coordinates without drawing", func() {
			before := c.Clone()
			r := in.Interpret("line 0 0 1")
			Expect(r.Class).To(Equal(interp.ParseError))
			Expect(r.Message).To(Equal("the number of point is not enough."))
			Expect(errors.Is(r.Err, interp.ErrTooFewPoints)).To(BeTrue())
			Expect(c.Equal(before)).To(BeTrue())
		})

		DescribeTable("rejects non-integer coordinates without drawing",
			func(line string) {
				r := in.Interpret(line)
				Expect(r.Class).To(Equal(interp.ParseError))
				Expect(r.Message).To(Equal("Non-int value is included."))
				Expect(errors.Is(r.Err, interp.ErrNonInteger)).To(BeTrue())
				Expect(c.Ink()).To(BeZero())
			},
			Entry("trailing garbage", "line 0 0 2x 2"),
			Entry("float", "line 0 0 2.5 2"),
			Entry("word", "line zero 0 2 2"),
			Entry("last token bad", "line 0 0 2 2a"),
		)

		DescribeTable("rejects coordinates beyond 32 bits without drawing",
			func(line string) {
				r := in.Interpret(line)
				Expect(r.Class).To(Equal(interp.ParseError))
				Expect(r.Message).To(Equal("coordinate out of range."))
				Expect(errors.Is(r.Err, interp.ErrCoordinateRange)).To(BeTrue())
				Expect(c.Ink()).To(BeZero())
			},
			Entry("huge end point", "line 0 0 9000000000000000000 0"),
			Entry("just past max", "line 0 0 2147483648 0"),
			Entry("just past min", "line -2147483649 0 0 0"),
			Entry("overflow", "line 0 0 2 99999999999999999999999"),
		)

		It("draws the visible part of a line reaching the 32-bit limit", func() {
			r := in.Interpret("line 0 0 2147483647 0")
			Expect(r.Class).To(Equal(interp.Normal))
			Expect(c.Rows()[0]).To(Equal("*****"))
			Expect(c.Ink()).To(Equal(5))
		})
	})

	Describe("unknown verbs", func() {
		It("classifies and leaves state alone", func() {
			accept("line 0 0 4 0")
			before := c.Clone()

			r := in.Interpret("frobnicate")
			Expect(r.Class).To(Equal(interp.Unknown))
			Expect(r.Message).To(Equal("error: unknown command."))
			Expect(errors.Is(r.Err, interp.ErrUnknownCommand)).To(BeTrue())
			Expect(c.Equal(before)).To(BeTrue())
			Expect(log.Len()).To(Equal(1))
		})

		It("treats a blank line as unknown", func() {
			Expect(in.Interpret("\n").Class).To(Equal(interp.Unknown))
			Expect(in.Interpret("   ").Class).To(Equal(interp.Unknown))
		})

		It("is case sensitive", func() {
			Expect(in.Interpret("LINE 0 0 1 1").Class).To(Equal(interp.Unknown))
		})
	})

	Describe("quit", func() {
		It("signals Exit", func() {
			Expect(in.Interpret("quit\n").Class).To(Equal(interp.Exit))
		})
	})

	Describe("undo", func() {
		It("rebuilds the canvas from all but the last entry", func() {
			Expect(accept("line 0 0 1 1\n").Class).To(Equal(interp.Normal))
			Expect(accept("line 1 1 2 2\n").Class).To(Equal(interp.Normal))

			r := in.Interpret("undo\n")
			Expect(r.Class).To(Equal(interp.CommandOnly))
			Expect(r.Message).To(Equal("undo!"))
			Expect(log.Len()).To(Equal(1))

			want := newCanvas(5, 5)
			want.DrawLine(0, 0, 1, 1)
			Expect(c.Equal(want)).To(BeTrue())
		})

		It("keeps overlapping marks that belong to earlier lines", func() {
			accept("line 0 2 4 2")
			accept("line 2 0 2 4")

			in.Interpret("undo")
			Expect(c.Rows()[2]).To(Equal("*****"))
			Expect(c.At(2, 0)).To(Equal(canvas.Blank))
		})

		It("can walk back to a blank canvas", func() {
			accept("line 0 0 4 4")
			accept("line 4 0 0 4")
			in.Interpret("undo")
			in.Interpret("undo")
			Expect(c.Ink()).To(BeZero())
			Expect(log.Len()).To(BeZero())
		})

		It("is a harmless no-op on an empty log", func() {
			r := in.Interpret("undo")
			Expect(r.Class).To(Equal(interp.CommandOnly))
			Expect(errors.Is(r.Err, history.ErrEmpty)).To(BeTrue())
			Expect(c.Ink()).To(BeZero())
			Expect(log.Len()).To(BeZero())
		})

		It("tolerates non-line entries during replay without touching the log", func() {
			log.Append("line 0 0 4 0\n")
			log.Append("undo\n")
			log.Append("save nowhere.txt\n")
			log.Append("line 0 4 4 4\n")

			saved := false
			in.SetSaveFunc(func(string, io.WriterTo) error {
				saved = true
				return nil
			})

			in.Interpret("undo")
			Expect(saved).To(BeFalse())
			Expect(log.Snapshot()).To(Equal([]string{"line 0 0 4 0\n", "undo\n", "save nowhere.txt\n"}))
			Expect(c.Rows()[0]).To(Equal("*****"))
			Expect(c.Rows()[4]).To(Equal("     "))
		})
	})

	Describe("save", func() {
		var dir string

		BeforeEach(func() {
			dir = GinkgoT().TempDir()
		})

		It("writes the transcript to the given file", func() {
			accept("line 0 0 4 4")
			path := filepath.Join(dir, "pic.txt")

			r := in.Interpret("save " + path + "\n")
			Expect(r.Class).To(Equal(interp.CommandOnly))
			Expect(r.Message).To(Equal(`saved as "` + path + `"`))
			Expect(r.Err).NotTo(HaveOccurred())

			loaded, err := transcript.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Snapshot()).To(Equal([]string{"line 0 0 4 4\n"}))
		})

		It("defaults to history.txt", func() {
			var got string
			in.SetSaveFunc(func(path string, _ io.WriterTo) error {
				got = path
				return nil
			})
			r := in.Interpret("save")
			Expect(got).To(Equal("history.txt"))
			Expect(r.Message).To(Equal(`saved as "history.txt"`))
		})

		It("uses the configured history file when given no name", func() {
			accept("line 0 0 4 0")
			path := filepath.Join(dir, "pic.txt")
			in.SetHistoryFile(path)

			r := in.Interpret("save\n")
			Expect(r.Message).To(Equal(`saved as "` + path + `"`))
			loaded, err := transcript.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Snapshot()).To(Equal([]string{"line 0 0 4 0\n"}))
		})

		It("restores the default history file for an empty path", func() {
			var got string
			in.SetSaveFunc(func(path string, _ io.WriterTo) error {
				got = path
				return nil
			})
			in.SetHistoryFile("elsewhere.txt")
			in.SetHistoryFile("")
			in.Interpret("save")
			Expect(got).To(Equal("history.txt"))
		})

		It("reports an unopenable destination and carries on", func() {
			accept("line 0 0 4 4")
			before := c.Clone()
			path := filepath.Join(dir, "no", "such", "dir.txt")

			r := in.Interpret("save " + path)
			Expect(r.Class).To(Equal(interp.CommandOnly))
			Expect(r.Message).To(Equal("error: cannot open " + path + "."))
			Expect(errors.Is(r.Err, transcript.ErrOpen)).To(BeTrue())
			Expect(c.Equal(before)).To(BeTrue())
			Expect(log.Len()).To(Equal(1))
		})

		It("round-trips: replaying the saved transcript reproduces the canvas", func() {
			accept("line 0 0 4 4")
			accept("line 0 4 4 0")
			accept("line 0 2 9 2")
			accept("line 1 0 1 0")
			path := filepath.Join(dir, "round.txt")
			Expect(in.Interpret("save " + path).Err).NotTo(HaveOccurred())

			loaded, err := transcript.Load(path)
			Expect(err).NotTo(HaveOccurred())

			fresh := newCanvas(5, 5)
			replayer := interp.New(fresh, history.New(), nil)
			for line := range loaded.All() {
				Expect(replayer.Interpret(line).Class).To(Equal(interp.Normal))
			}
			Expect(fresh.Equal(c)).To(BeTrue())
		})
	})

	Describe("Replay", func() {
		It("counts only drawn lines", func() {
			entries := []string{"line 0 0 1 1\n", "quit\n", "line 0 0 x 1\n", "line 4 4 3 3\n"}
			n := in.Replay(func(yield func(string) bool) {
				for _, e := range entries {
					if !yield(e) {
						return
					}
				}
			})
			Expect(n).To(Equal(2))
			Expect(c.Ink()).To(Equal(4))
		})
	})

	Describe("Classification", func() {
		It("has readable names", func() {
			Expect(interp.Normal.String()).To(Equal("normal"))
			Expect(interp.Classification(42).String()).To(Equal("invalid"))
		})
	})
})

var _ = Describe("Interpret helper", func() {
	It("applies a line against the given canvas", func() {
		c, err := canvas.New(3, 3, '#')
		Expect(err).NotTo(HaveOccurred())
		r := interp.Interpret("line 0 0 2 2", history.New(), c)
		Expect(r.Class).To(Equal(interp.Normal))
		Expect(c.At(1, 1)).To(Equal('#'))
	})
})
