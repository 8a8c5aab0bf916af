package utils

import (
	"image"
	"math"
	"testing"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTolerance
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"zero vector stays zero", Vec2{}, Vec2{}},
		{"3-4-5 triangle", Vec2{3, 4}, Vec2{0.6, 0.8}},
		{"negative axis", Vec2{0, -7}, Vec2{0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if !almostEqual(got.X, tt.want.X) || !almostEqual(got.Y, tt.want.Y) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDirectionTo_SamePointIsZero(t *testing.T) {
	dir, dist := DirectionTo(Vec2{5, 5}, Vec2{5, 5})
	if dir != (Vec2{}) || dist != 0 {
		t.Errorf("DirectionTo same point = %v, %v; want zero vector and 0", dir, dist)
	}
}

func TestDirectionTo(t *testing.T) {
	dir, dist := DirectionTo(Vec2{0, 0}, Vec2{30, 40})
	if !almostEqual(dist, 50) {
		t.Errorf("distance = %v, want 50", dist)
	}
	if !almostEqual(dir.X, 0.6) || !almostEqual(dir.Y, 0.8) {
		t.Errorf("direction = %v, want (0.6, 0.8)", dir)
	}
}

func TestAngleAndFromAngle(t *testing.T) {
	angle := AngleTo(Vec2{10, 10}, Vec2{10, 50})
	if !almostEqual(angle, math.Pi/2) {
		t.Errorf("AngleTo straight down = %v, want pi/2", angle)
	}
	v := FromAngle(0, 35)
	if !almostEqual(v.X, 35) || !almostEqual(v.Y, 0) {
		t.Errorf("FromAngle(0, 35) = %v", v)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp inside = %v", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp below = %v", got)
	}
	if got := Clamp(12, 0, 10); got != 10 {
		t.Errorf("Clamp above = %v", got)
	}
	// Арена уже сущности: нижняя граница побеждает.
	if got := Clamp(5, 0, -10); got != 0 {
		t.Errorf("Clamp with lo > hi = %v, want lo", got)
	}
}

func TestBoxTruncatesTowardZero(t *testing.T) {
	got := Box(Vec2{-0.5, 1.9}, 5, 5)
	want := image.Rect(0, 1, 5, 6)
	if got != want {
		t.Errorf("Box = %v, want %v", got, want)
	}
}

func TestOverlaps(t *testing.T) {
	a := image.Rect(0, 0, 10, 10)
	tests := []struct {
		name string
		b    image.Rectangle
		want bool
	}{
		{"intersecting", image.Rect(5, 5, 15, 15), true},
		{"touching edge", image.Rect(10, 0, 20, 10), false},
		{"separate", image.Rect(30, 30, 40, 40), false},
		{"contained", image.Rect(2, 2, 3, 3), true},
	}
	for _, tt := range tests {
		if got := Overlaps(a, tt.b); got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}
