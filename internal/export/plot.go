package export

import (
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/linepaint/internal/canvas"
)

// InkPlot charts how many cells are marked in each column.
func InkPlot(c *canvas.Canvas, caption string) string {
	data := c.ColumnInk()
	if len(data) == 1 {
		// asciigraph needs two samples to draw a line
		data = append(data, data[0])
	}
	return asciigraph.Plot(data,
		asciigraph.Height(max(c.Height, 2)),
		asciigraph.Caption(caption),
	)
}
