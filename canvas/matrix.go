package canvas

import (
	"errors"
	"strings"

	"pentagram/core"
	"pentagram/geometry"
)

// Common errors
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid canvas size")
)

// MatrixCanvas is a fixed-size character grid backed by a single row-major buffer.
//
// MatrixCanvas is NOT safe for concurrent use. A canvas is filled by one
// rendering pass and read afterwards.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward
//   - Y increases downward
//   - All coordinates are in character cells
//
// Writes outside the grid are never performed: Set reports ErrOutOfBounds
// and DrawLine skips the cell.
type MatrixCanvas struct {
	cells  []rune
	width  int
	height int
	blank  rune
}

// NewMatrixCanvas creates a canvas of the given size filled with spaces.
func NewMatrixCanvas(width, height int) (*MatrixCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	c := &MatrixCanvas{
		cells:  make([]rune, width*height),
		width:  width,
		height: height,
		blank:  ' ',
	}
	c.Clear()
	return c, nil
}

// Size returns the width and height of the canvas.
func (c *MatrixCanvas) Size() (width, height int) {
	return c.width, c.height
}

// Bounds returns the half-open cell rectangle covered by the canvas.
func (c *MatrixCanvas) Bounds() core.Bounds {
	return core.Bounds{Max: core.Cell{X: c.width, Y: c.height}}
}

// Blank returns the character used for empty cells.
func (c *MatrixCanvas) Blank() rune {
	return c.blank
}

// SetBlank changes the empty-cell character and clears the canvas.
func (c *MatrixCanvas) SetBlank(r rune) {
	c.blank = r
	c.Clear()
}

func (c *MatrixCanvas) inside(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Get returns the character at the given cell.
// Returns the blank character if the cell is out of bounds.
func (c *MatrixCanvas) Get(p core.Cell) rune {
	if !c.inside(p.X, p.Y) {
		return c.blank
	}
	return c.cells[p.Y*c.width+p.X]
}

// Set places a character at the given cell.
// Returns ErrOutOfBounds if the cell is outside the canvas.
func (c *MatrixCanvas) Set(p core.Cell, r rune) error {
	if !c.inside(p.X, p.Y) {
		return ErrOutOfBounds
	}
	c.cells[p.Y*c.width+p.X] = r
	return nil
}

// Clear resets every cell to the blank character.
func (c *MatrixCanvas) Clear() {
	for i := range c.cells {
		c.cells[i] = c.blank
	}
}

// Row returns row y as a string, or "" if y is out of range.
func (c *MatrixCanvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	return string(c.cells[y*c.width : (y+1)*c.width])
}

// Lines returns every row, top row first.
func (c *MatrixCanvas) Lines() []string {
	lines := make([]string, c.height)
	for y := range lines {
		lines[y] = c.Row(y)
	}
	return lines
}

// String returns the canvas as height lines of width characters,
// separated by newlines, with no trailing newline.
func (c *MatrixCanvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))

	for y := 0; y < c.height; y++ {
		for _, r := range c.cells[y*c.width : (y+1)*c.width] {
			sb.WriteRune(r)
		}
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}

// DrawLine draws a line between two cells using Bresenham's algorithm.
// Cells outside the canvas are skipped; the rest of the line is still drawn.
// Returns the number of cells written.
func (c *MatrixCanvas) DrawLine(a, b core.Cell, mark rune) int {
	written := 0
	walkLine(a, b, func(x, y int) {
		if c.inside(x, y) {
			c.cells[y*c.width+x] = mark
			written++
		}
	})
	return written
}

// Marked returns every cell holding mark, in row-major order.
func (c *MatrixCanvas) Marked(mark rune) []core.Cell {
	var cells []core.Cell
	for i, r := range c.cells {
		if r == mark {
			cells = append(cells, core.Cell{X: i % c.width, Y: i / c.width})
		}
	}
	return cells
}

// Count returns the number of cells holding mark.
func (c *MatrixCanvas) Count(mark rune) int {
	n := 0
	for _, r := range c.cells {
		if r == mark {
			n++
		}
	}
	return n
}

// TraceLine returns the cells DrawLine visits between a and b, including
// cells outside any canvas, ordered from the smaller endpoint.
func TraceLine(a, b core.Cell) []core.Cell {
	cells := make([]core.Cell, 0, geometry.ChebyshevDistance(a.X, a.Y, b.X, b.Y)+1)
	walkLine(a, b, func(x, y int) {
		cells = append(cells, core.Cell{X: x, Y: y})
	})
	return cells
}

// walkLine runs the integer error-accumulator walk from a to b, calling
// visit once per cell. The walk always starts at the smaller endpoint
// (see core.Cell.Less), so swapping a and b visits the same cells.
func walkLine(a, b core.Cell, visit func(x, y int)) {
	if b.Less(a) {
		a, b = b, a
	}

	dx := geometry.Abs(b.X - a.X)
	dy := geometry.Abs(b.Y - a.Y)
	sx := geometry.Sign(a.X, b.X)
	sy := geometry.Sign(a.Y, b.Y)
	err := dx - dy

	x, y := a.X, a.Y
	for {
		visit(x, y)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}
