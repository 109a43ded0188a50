package render

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"pentagram/canvas"
	"pentagram/geometry"
)

// Configuration errors.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrUnknownPreset = errors.New("unknown preset")
)

// Config holds every parameter of the star rendering pipeline.
type Config struct {
	NumPoints     int     // vertices on the circle
	Radius        float64 // circle radius in circle-space units
	Width, Height int     // canvas size in cells
	ScaleX        float64 // horizontal stretch, cells per unit
	ScaleY        float64 // vertical stretch, cells per unit
	OffsetDegrees float64 // angle of the first vertex

	// Order lists the vertex indices visited when drawing. Nil means
	// SkipOrder(NumPoints, 2).
	Order []int

	Marker rune // drawn cells
	Blank  rune // empty cells

	Rounding    geometry.Rounding
	Orientation geometry.Orientation
}

// DefaultConfig returns the five-pointed star on an 80x40 canvas.
func DefaultConfig() Config {
	return Config{
		NumPoints:     5,
		Radius:        20,
		Width:         80,
		Height:        40,
		ScaleX:        1.3,
		ScaleY:        0.7,
		OffsetDegrees: -90,
		Order:         []int{0, 2, 4, 1, 3, 0},
		Marker:        '*',
		Blank:         ' ',
		Rounding:      geometry.RoundHalfAway,
		Orientation:   geometry.YDown,
	}
}

// Preset names.
const (
	PresetClassic  = "classic"
	PresetUnscaled = "unscaled"
	PresetCompact  = "compact"
)

var presets = map[string]func() Config{
	PresetClassic: DefaultConfig,
	PresetUnscaled: func() Config {
		cfg := DefaultConfig()
		cfg.Radius = 15
		cfg.Width, cfg.Height = 60, 30
		cfg.ScaleX, cfg.ScaleY = 1, 1
		cfg.Rounding = geometry.RoundHalfEven
		cfg.Orientation = geometry.YUp
		return cfg
	},
	PresetCompact: func() Config {
		cfg := DefaultConfig()
		cfg.Radius = 10
		cfg.Width, cfg.Height = 40, 20
		cfg.ScaleX, cfg.ScaleY = 1, 1
		cfg.OffsetDegrees = 0
		cfg.Rounding = geometry.Truncate
		cfg.Orientation = geometry.YUp
		return cfg
	},
}

// Preset returns a named configuration.
func Preset(name string) (Config, error) {
	build, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return build(), nil
}

// PresetNames returns the available preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mapper returns the coordinate mapper described by the configuration.
func (c Config) Mapper() geometry.Mapper {
	return geometry.Mapper{
		Width:       c.Width,
		Height:      c.Height,
		ScaleX:      c.ScaleX,
		ScaleY:      c.ScaleY,
		Rounding:    c.Rounding,
		Orientation: c.Orientation,
	}
}

// ConnectionOrder returns Order, or the skip-one star order when Order is nil.
func (c Config) ConnectionOrder() []int {
	if c.Order != nil {
		return c.Order
	}
	return SkipOrder(c.NumPoints, 2)
}

// Validate rejects configurations that cannot produce a star.
// All returned errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if c.NumPoints < 3 {
		return fmt.Errorf("%w: need at least 3 points, got %d", ErrInvalidConfig, c.NumPoints)
	}
	if !positive(c.Radius) {
		return fmt.Errorf("%w: radius must be positive, got %g", ErrInvalidConfig, c.Radius)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if !positive(c.ScaleX) || !positive(c.ScaleY) {
		return fmt.Errorf("%w: scales must be positive, got (%g, %g)", ErrInvalidConfig, c.ScaleX, c.ScaleY)
	}
	if math.IsNaN(c.OffsetDegrees) || math.IsInf(c.OffsetDegrees, 0) {
		return fmt.Errorf("%w: offset must be finite", ErrInvalidConfig)
	}

	order := c.ConnectionOrder()
	if len(order) < 2 {
		return fmt.Errorf("%w: connection order needs at least 2 entries, got %v", ErrInvalidConfig, order)
	}
	for i, idx := range order {
		if idx < 0 || idx >= c.NumPoints {
			return fmt.Errorf("%w: order[%d] = %d outside [0, %d)", ErrInvalidConfig, i, idx, c.NumPoints)
		}
	}

	if !canvas.IsCellRune(c.Marker) {
		return fmt.Errorf("%w: marker %q does not fill one cell", ErrInvalidConfig, c.Marker)
	}
	if !canvas.IsCellRune(c.Blank) {
		return fmt.Errorf("%w: blank %q does not fill one cell", ErrInvalidConfig, c.Blank)
	}
	if c.Marker == c.Blank {
		return fmt.Errorf("%w: marker and blank are both %q", ErrInvalidConfig, c.Marker)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
