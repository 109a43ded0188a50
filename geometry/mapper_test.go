package geometry

import (
	"testing"

	"pentagram/core"
)

func TestRounding_Apply(t *testing.T) {
	tests := []struct {
		v                    float64
		away, even, truncate int
	}{
		{0.5, 1, 0, 0},
		{1.5, 2, 2, 1},
		{2.5, 3, 2, 2},
		{-0.5, -1, 0, 0},
		{-2.5, -3, -2, -2},
		{3.4, 3, 3, 3},
		{3.6, 4, 4, 3},
		{-3.6, -4, -4, -3},
	}

	for _, tt := range tests {
		if got := RoundHalfAway.Apply(tt.v); got != tt.away {
			t.Errorf("half-away(%g) = %d, want %d", tt.v, got, tt.away)
		}
		if got := RoundHalfEven.Apply(tt.v); got != tt.even {
			t.Errorf("half-even(%g) = %d, want %d", tt.v, got, tt.even)
		}
		if got := Truncate.Apply(tt.v); got != tt.truncate {
			t.Errorf("truncate(%g) = %d, want %d", tt.v, got, tt.truncate)
		}
	}
}

func TestMapper_Map(t *testing.T) {
	star := Mapper{Width: 80, Height: 40, ScaleX: 1.3, ScaleY: 0.7}
	flipped := star
	flipped.Orientation = YUp
	unit := Mapper{Width: 80, Height: 40, ScaleX: 1, ScaleY: 1}
	even := unit
	even.Rounding = RoundHalfEven
	odd := Mapper{Width: 41, Height: 21, ScaleX: 1, ScaleY: 1}

	tests := []struct {
		name   string
		mapper Mapper
		point  core.Point
		want   core.Cell
	}{
		{"Origin", star, core.Point{}, core.Cell{X: 40, Y: 20}},
		{"Top y-down", star, core.Point{X: 0, Y: -20}, core.Cell{X: 40, Y: 6}},
		{"Top y-up", flipped, core.Point{X: 0, Y: -20}, core.Cell{X: 40, Y: 34}},
		{"Right", star, core.Point{X: 20, Y: 0}, core.Cell{X: 66, Y: 20}},
		{"Left", star, core.Point{X: -20, Y: 0}, core.Cell{X: 14, Y: 20}},
		{"Tie half-away", unit, core.Point{X: 0.5, Y: 0.5}, core.Cell{X: 41, Y: 21}},
		{"Tie half-even", even, core.Point{X: 0.5, Y: 0.5}, core.Cell{X: 40, Y: 20}},
		{"Odd size centre", odd, core.Point{}, core.Cell{X: 20, Y: 10}},
		{"Far outside", unit, core.Point{X: 1000, Y: -1000}, core.Cell{X: 1040, Y: -980}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mapper.Map(tt.point); got != tt.want {
				t.Errorf("Map(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestMapper_Deterministic(t *testing.T) {
	m := Mapper{Width: 80, Height: 40, ScaleX: 1.3, ScaleY: 0.7}
	points := Vertices(5, 20, -90)
	first := m.MapAll(points)
	for i := 0; i < 10; i++ {
		again := m.MapAll(points)
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("run %d: point %d mapped to %v, first run gave %v", i, j, again[j], first[j])
			}
		}
	}
}

func TestMapper_Transform(t *testing.T) {
	m := Mapper{Width: 60, Height: 30, ScaleX: 2, ScaleY: 3, Orientation: YUp}
	got := m.Transform()
	want := [6]float64{2, 0, 0, -3, 30, 15}
	if [6]float64(got) != want {
		t.Errorf("Transform() = %v, want %v", got, want)
	}
}
