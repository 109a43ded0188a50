package render

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"Default", func(*Config) {}, true},
		{"Derived order", func(c *Config) { c.Order = nil }, true},
		{"Triangle", func(c *Config) { c.NumPoints = 3; c.Order = []int{0, 1, 2, 0} }, true},
		{"Two points", func(c *Config) { c.NumPoints = 2; c.Order = []int{0, 1, 0} }, false},
		{"Zero points", func(c *Config) { c.NumPoints = 0 }, false},
		{"Zero radius", func(c *Config) { c.Radius = 0 }, false},
		{"Negative radius", func(c *Config) { c.Radius = -5 }, false},
		{"NaN radius", func(c *Config) { c.Radius = math.NaN() }, false},
		{"Infinite radius", func(c *Config) { c.Radius = math.Inf(1) }, false},
		{"Zero width", func(c *Config) { c.Width = 0 }, false},
		{"Zero height", func(c *Config) { c.Height = 0 }, false},
		{"Zero scale", func(c *Config) { c.ScaleX = 0 }, false},
		{"Negative scale", func(c *Config) { c.ScaleY = -0.7 }, false},
		{"Infinite offset", func(c *Config) { c.OffsetDegrees = math.Inf(-1) }, false},
		{"Short order", func(c *Config) { c.Order = []int{0} }, false},
		{"Empty order", func(c *Config) { c.Order = []int{} }, false},
		{"Index too large", func(c *Config) { c.Order = []int{0, 5} }, false},
		{"Negative index", func(c *Config) { c.Order = []int{-1, 2} }, false},
		{"Newline marker", func(c *Config) { c.Marker = '\n' }, false},
		{"Wide marker", func(c *Config) { c.Marker = '星' }, false},
		{"Marker equals blank", func(c *Config) { c.Marker = ' ' }, false},
		{"Dot blank", func(c *Config) { c.Blank = '.' }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDefaultConfigIsFresh(t *testing.T) {
	a := DefaultConfig()
	a.Order[0] = 4
	b := DefaultConfig()
	if b.Order[0] != 0 {
		t.Error("DefaultConfig shares its Order slice between calls")
	}
}

func TestPreset(t *testing.T) {
	want := []string{PresetClassic, PresetCompact, PresetUnscaled}
	if got := PresetNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("PresetNames() = %v, want %v", got, want)
	}

	classic, err := Preset(PresetClassic)
	if err != nil {
		t.Fatalf("Preset(classic): %v", err)
	}
	if !reflect.DeepEqual(classic, DefaultConfig()) {
		t.Error("classic preset differs from DefaultConfig")
	}

	compact, err := Preset(PresetCompact)
	if err != nil {
		t.Fatalf("Preset(compact): %v", err)
	}
	if compact.Width != 40 || compact.Height != 20 || compact.Radius != 10 {
		t.Errorf("compact preset = %dx%d r%g", compact.Width, compact.Height, compact.Radius)
	}

	if _, err := Preset("spiral"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Preset(spiral) error = %v, want ErrUnknownPreset", err)
	}
}

func TestConfigMapper(t *testing.T) {
	cfg := DefaultConfig()
	m := cfg.Mapper()
	if m.Width != 80 || m.Height != 40 || m.ScaleX != 1.3 || m.ScaleY != 0.7 {
		t.Errorf("Mapper() = %+v", m)
	}
}
