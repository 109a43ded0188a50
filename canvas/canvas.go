// Package canvas provides the 2D character grid the star is rasterized onto.
package canvas

import "pentagram/core"

// Canvas represents a 2D grid for drawing.
type Canvas interface {
	// Size returns the width and height in cells.
	Size() (width, height int)
	// Get returns the character at c, or the blank character outside the grid.
	Get(c core.Cell) rune
	// Set places a character at c.
	Set(c core.Cell, r rune) error
	// DrawLine marks the cells between a and b and reports how many were written.
	DrawLine(a, b core.Cell, mark rune) int
	// String renders the grid, one line per row.
	String() string
}
