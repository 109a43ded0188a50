// Package core contains the fundamental types used throughout the pentagram renderer.
package core

import "seehuhn.de/go/geom/vec"

// Point is a coordinate in continuous circle space, with the circle's
// centre at the origin. Re-exported from the geom package for convenience.
type Point = vec.Vec2

// Cell addresses one character position on a canvas.
// X is the column, Y is the row; row 0 is the top of the canvas.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Less orders cells by column, then by row.
func (c Cell) Less(o Cell) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// Segment joins two vertices, identified by their index in the vertex list.
type Segment struct {
	From, To int
}

// Segments splits a connection order into the consecutive vertex pairs it visits.
// An order with fewer than two entries has no segments.
func Segments(order []int) []Segment {
	if len(order) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(order)-1)
	for i := 0; i < len(order)-1; i++ {
		segs = append(segs, Segment{From: order[i], To: order[i+1]})
	}
	return segs
}

// Bounds represents a rectangular area.
type Bounds struct {
	Min, Max Cell
}

// Width returns the width of the bounds.
func (b Bounds) Width() int {
	return b.Max.X - b.Min.X
}

// Height returns the height of the bounds.
func (b Bounds) Height() int {
	return b.Max.Y - b.Min.Y
}

// Contains checks if a cell is within the bounds.
// Min is inclusive, Max is exclusive.
func (b Bounds) Contains(c Cell) bool {
	return c.X >= b.Min.X && c.X < b.Max.X &&
		c.Y >= b.Min.Y && c.Y < b.Max.Y
}
