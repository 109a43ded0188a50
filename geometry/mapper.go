package geometry

import (
	"math"

	"seehuhn.de/go/geom/matrix"

	"pentagram/core"
)

// Rounding selects how a fractional canvas coordinate snaps to a cell.
type Rounding int

const (
	// RoundHalfAway rounds to the nearest integer, ties away from zero.
	RoundHalfAway Rounding = iota
	// RoundHalfEven rounds to the nearest integer, ties to even.
	RoundHalfEven
	// Truncate drops the fractional part.
	Truncate
)

// String returns the name of the rounding mode.
func (r Rounding) String() string {
	switch r {
	case RoundHalfAway:
		return "half-away"
	case RoundHalfEven:
		return "half-even"
	case Truncate:
		return "truncate"
	default:
		return "unknown"
	}
}

// Apply snaps v to an integer using the rounding mode.
func (r Rounding) Apply(v float64) int {
	switch r {
	case RoundHalfEven:
		return int(math.RoundToEven(v))
	case Truncate:
		return int(math.Trunc(v))
	default:
		return int(math.Round(v))
	}
}

// Orientation tells the mapper which way circle-space y points on the canvas.
type Orientation int

const (
	// YDown maps increasing y to increasing rows, so -90 degrees is the top of the canvas.
	YDown Orientation = iota
	// YUp flips y so that increasing y moves towards row 0.
	YUp
)

// String returns the name of the orientation.
func (o Orientation) String() string {
	if o == YUp {
		return "y-up"
	}
	return "y-down"
}

// Mapper converts circle-space points into canvas cells.
// The circle's origin lands on the centre cell (Width/2, Height/2).
// ScaleX and ScaleY correct for the aspect ratio of character cells.
type Mapper struct {
	Width, Height  int
	ScaleX, ScaleY float64
	Rounding       Rounding
	Orientation    Orientation
}

// Transform returns the affine map from circle space to fractional canvas
// coordinates: scale each axis, flip y for YUp, then move the origin to the centre.
func (m Mapper) Transform() matrix.Matrix {
	sy := m.ScaleY
	if m.Orientation == YUp {
		sy = -sy
	}
	return matrix.Matrix{
		m.ScaleX, 0,
		0, sy,
		float64(m.Width / 2), float64(m.Height / 2),
	}
}

// Map returns the cell for p. The result may lie outside the canvas;
// clipping is left to the rasterizer.
func (m Mapper) Map(p core.Point) core.Cell {
	t := m.Transform()
	x := t[0]*p.X + t[2]*p.Y + t[4]
	y := t[1]*p.X + t[3]*p.Y + t[5]
	return core.Cell{X: m.Rounding.Apply(x), Y: m.Rounding.Apply(y)}
}

// MapAll maps every point in order.
func (m Mapper) MapAll(points []core.Point) []core.Cell {
	cells := make([]core.Cell, len(points))
	for i, p := range points {
		cells[i] = m.Map(p)
	}
	return cells
}
