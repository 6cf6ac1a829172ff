// Package canvas provides the fixed-size character grid that drawing
// commands rasterize onto.
//
//   - [Canvas]: width x height cells, each either [Blank] or the pen
//   - [Canvas.DrawLine]: integer line rasterization with clipping
//   - [Canvas.Render]: bordered text rendering ("+", "-", "|")
//
// # Example
//
//	c, _ := canvas.New(20, 5, '*')
//	c.DrawLine(0, 0, 19, 4)
//	fmt.Print(c.Render())
//
// # Start point
//
// DrawLine always plots its start point, even when it lies outside the
// grid: the cell at the start point's column-major storage offset is
// marked whenever that offset exists. Every later point is clipped.
// Set StrictClip to clip the start point like the rest.
package canvas
