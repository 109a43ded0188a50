// Package render assembles the star scene: it generates the vertices,
// maps them onto the canvas and joins them in connection order.
package render

import (
	"fmt"

	"pentagram/canvas"
	"pentagram/core"
	"pentagram/geometry"
)

// Stats describes the last rendering pass.
type Stats struct {
	Segments int // lines drawn
	Written  int // cell writes, counting overlaps
	Clipped  int // cells skipped because they fell outside the canvas
}

// Renderer orchestrates the star rendering pipeline.
// Vertices and their cells are computed once; every Render call draws
// onto a fresh canvas, so repeated calls produce identical output.
type Renderer struct {
	cfg      Config
	mapper   geometry.Mapper
	order    []int
	vertices []core.Point
	cells    []core.Cell
	stats    Stats
}

// NewRenderer validates cfg and prepares the vertices.
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mapper := cfg.Mapper()
	vertices := geometry.Vertices(cfg.NumPoints, cfg.Radius, cfg.OffsetDegrees)

	return &Renderer{
		cfg:      cfg,
		mapper:   mapper,
		order:    append([]int(nil), cfg.ConnectionOrder()...),
		vertices: vertices,
		cells:    mapper.MapAll(vertices),
	}, nil
}

// Config returns the configuration the renderer was built with.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Vertices returns the star's points in circle space.
func (r *Renderer) Vertices() []core.Point {
	return append([]core.Point(nil), r.vertices...)
}

// Cells returns the canvas cell of every vertex, possibly outside the canvas.
func (r *Renderer) Cells() []core.Cell {
	return append([]core.Cell(nil), r.cells...)
}

// Segments returns the lines joined by the connection order.
func (r *Renderer) Segments() []core.Segment {
	return core.Segments(r.order)
}

// Stats reports on the most recent Render call.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Render draws the star onto a new canvas.
func (r *Renderer) Render() (*canvas.MatrixCanvas, error) {
	c, err := canvas.NewMatrixCanvas(r.cfg.Width, r.cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create canvas: %w", err)
	}
	c.SetBlank(r.cfg.Blank)

	stats := Stats{}
	for _, seg := range r.Segments() {
		from, to := r.cells[seg.From], r.cells[seg.To]
		written := c.DrawLine(from, to, r.cfg.Marker)

		stats.Segments++
		stats.Written += written
		stats.Clipped += geometry.ChebyshevDistance(from.X, from.Y, to.X, to.Y) + 1 - written
	}
	r.stats = stats

	return c, nil
}

// RenderString draws the star and serializes the canvas.
func (r *Renderer) RenderString() (string, error) {
	c, err := r.Render()
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// Render is a convenience wrapper that renders cfg in one call.
func Render(cfg Config) (string, error) {
	r, err := NewRenderer(cfg)
	if err != nil {
		return "", err
	}
	return r.RenderString()
}
