// Package export turns a canvas into formats other than terminal text.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/linepaint/internal/canvas"
)

// CanvasToSVG draws every marked cell as a filled square of side scale.
func CanvasToSVG(c *canvas.Canvas, scale float64) string {
	if c == nil {
		return ""
	}
	if scale <= 0 {
		scale = 1
	}

	width := float64(c.Width) * scale
	height := float64(c.Height) * scale

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.At(x, y) == canvas.Blank {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, float64(x)*scale, float64(y)*scale, scale, scale))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
