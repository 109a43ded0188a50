package render

import (
	"github.com/gdamore/tcell/v2"

	"pentagram/canvas"
	"pentagram/core"
)

// Paint copies c onto a tcell screen with its top-left cell at (x, y).
// Cells that fall outside the screen are dropped. The caller decides when
// to call Show.
func Paint(s tcell.Screen, c canvas.Canvas, x, y int, style tcell.Style) {
	sw, sh := s.Size()
	w, h := c.Size()
	for row := 0; row < h; row++ {
		sy := y + row
		if sy < 0 || sy >= sh {
			continue
		}
		for col := 0; col < w; col++ {
			sx := x + col
			if sx < 0 || sx >= sw {
				continue
			}
			s.SetContent(sx, sy, c.Get(core.Cell{X: col, Y: row}), nil, style)
		}
	}
}
