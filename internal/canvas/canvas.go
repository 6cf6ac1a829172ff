package canvas

import (
	"fmt"
	"math"
	"math/bits"
	"sort"
	"strings"
)

// Blank is the character of an unmarked cell.
const Blank = ' '

// Coordinates accepted by DrawLine.
const (
	MinCoord = math.MinInt32
	MaxCoord = math.MaxInt32
)

type Canvas struct {
	Width, Height int
	Pen           rune
	// StrictClip clips the start point of a line like every other point.
	StrictClip bool

	// column-major: cell (x, y) lives at x*Height + y
	cells []rune
}

func New(width, height int, pen rune) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}
	c := &Canvas{
		Width:  width,
		Height: height,
		Pen:    pen,
		cells:  make([]rune, width*height),
	}
	c.Reset()
	return c, nil
}

// Reset blanks every cell.
func (c *Canvas) Reset() {
	for i := range c.cells {
		c.cells[i] = Blank
	}
}

// InBounds reports whether (x, y) is a cell of the grid.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// Set marks (x, y) with the pen. Points outside the grid are skipped.
func (c *Canvas) Set(x, y int) bool {
	if !c.InBounds(x, y) {
		return false
	}
	c.cells[x*c.Height+y] = c.Pen
	return true
}

// At returns the cell at (x, y), or Blank outside the grid.
func (c *Canvas) At(x, y int) rune {
	if !c.InBounds(x, y) {
		return Blank
	}
	return c.cells[x*c.Height+y]
}

func (c *Canvas) setStart(x, y int) {
	if c.StrictClip {
		c.Set(x, y)
		return
	}
	// fold y into whole columns so the offset never wraps
	col, row := x+y/c.Height, y%c.Height
	if row < 0 {
		row += c.Height
		col--
	}
	if col >= 0 && col < c.Width {
		c.cells[col*c.Height+row] = c.Pen
	}
}

// DrawLine rasterizes the segment (x0, y0)-(x1, y1) with n+1 candidate
// points, n = max(|x1-x0|, |y1-y0|), stepping with truncating division.
// Only the candidates that can land inside the grid are visited. Lines
// with a coordinate outside [MinCoord, MaxCoord] are ignored.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	for _, v := range [...]int{x0, y0, x1, y1} {
		if v < MinCoord || v > MaxCoord {
			return
		}
	}

	dx := x1 - x0
	dy := y1 - y0
	n := max(absInt(dx), absInt(dy))

	c.setStart(x0, y0)
	if n == 0 {
		return
	}

	xlo, xhi := visible(x0, dx, n, c.Width)
	ylo, yhi := visible(y0, dy, n, c.Height)
	for i := max(xlo, ylo); i <= min(xhi, yhi); i++ {
		c.Set(x0+step(i, dx, n), y0+step(i, dy, n))
	}
}

// step returns trunc(i*d/n) for 0 <= i <= n and |d| <= n without
// overflowing the intermediate product.
func step(i, d, n int) int {
	ad := uint64(absInt(d))
	hi, lo := bits.Mul64(uint64(i), ad)
	q, _ := bits.Div64(hi, lo, uint64(n))
	if d < 0 {
		return -int(q)
	}
	return int(q)
}

// visible returns the range of i in [1, n] for which v0+step(i, d, n)
// lies in [0, limit). The range is empty when lo > hi.
func visible(v0, d, n, limit int) (lo, hi int) {
	first := func(pred func(v int) bool) int {
		return 1 + sort.Search(n, func(k int) bool {
			return pred(v0 + step(k+1, d, n))
		})
	}
	if d >= 0 {
		lo = first(func(v int) bool { return v >= 0 })
		hi = first(func(v int) bool { return v >= limit }) - 1
	} else {
		lo = first(func(v int) bool { return v < limit })
		hi = first(func(v int) bool { return v < 0 }) - 1
	}
	return lo, hi
}

// Rows returns the grid contents top to bottom, without borders.
func (c *Canvas) Rows() []string {
	rows := make([]string, c.Height)
	row := make([]rune, c.Width)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			row[x] = c.cells[x*c.Height+y]
		}
		rows[y] = string(row)
	}
	return rows
}

// Render returns the grid framed by a "+---+" rule and "|" rails.
func (c *Canvas) Render() string {
	var b strings.Builder
	rule := "+" + strings.Repeat("-", c.Width) + "+\n"

	b.WriteString(rule)
	for _, row := range c.Rows() {
		b.WriteString("|")
		b.WriteString(row)
		b.WriteString("|\n")
	}
	b.WriteString(rule)
	return b.String()
}

func (c *Canvas) String() string {
	return c.Render()
}

// Equal reports whether both canvases have the same size and cells.
func (c *Canvas) Equal(o *Canvas) bool {
	if o == nil || c.Width != o.Width || c.Height != o.Height {
		return false
	}
	for i := range c.cells {
		if c.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

func (c *Canvas) Clone() *Canvas {
	cp := *c
	cp.cells = append([]rune(nil), c.cells...)
	return &cp
}

// Ink counts the marked cells.
func (c *Canvas) Ink() int {
	n := 0
	for _, r := range c.cells {
		if r != Blank {
			n++
		}
	}
	return n
}

// ColumnInk returns the number of marked cells in each column.
func (c *Canvas) ColumnInk() []float64 {
	out := make([]float64, c.Width)
	for x := 0; x < c.Width; x++ {
		for y := 0; y < c.Height; y++ {
			if c.cells[x*c.Height+y] != Blank {
				out[x]++
			}
		}
	}
	return out
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
