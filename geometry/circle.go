package geometry

import (
	"math"

	"pentagram/core"
)

// Vertices returns n points evenly spaced on a circle of the given radius.
//
// Point k lies at angle k*(360/n) + offset degrees, measured from the
// positive x axis, so the sequence proceeds in increasing-angle order.
// An offset of -90 puts the first point on the negative y axis.
// n <= 0 returns an empty sequence.
func Vertices(n int, radius, offset float64) []core.Point {
	if n <= 0 {
		return []core.Point{}
	}

	step := 360 / float64(n)
	points := make([]core.Point, n)
	for k := range points {
		angle := Radians(float64(k)*step + offset)
		points[k] = core.Point{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
	}
	return points
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees returns the angle of p in degrees, in the range (-180, 180].
func Degrees(p core.Point) float64 {
	return math.Atan2(p.Y, p.X) * 180 / math.Pi
}
