package game

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestNormalizeZeroVector(t *testing.T) {
	v := Vec2{}.Normalize()
	if v.X != 0 || v.Y != 0 {
		t.Errorf("Expected zero vector, got %+v", v)
	}
	if math.IsNaN(v.X) || math.IsNaN(v.Y) {
		t.Errorf("Normalize of zero produced NaN: %+v", v)
	}

	var w Vec2
	w.SelfNormalize()
	if w.X != 0 || w.Y != 0 {
		t.Errorf("Expected SelfNormalize to leave zero vector, got %+v", w)
	}
}

func TestNormalize(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalize()
	if !near(v.X, 0.6) || !near(v.Y, 0.8) {
		t.Errorf("Expected (0.6, 0.8), got %+v", v)
	}
	if !near(v.Magnitude(), 1) {
		t.Errorf("Expected unit length, got %f", v.Magnitude())
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
	}{
		{"perpendicular", Vec2{X: 1}, Vec2{Y: 1}, math.Pi / 2},
		{"parallel", Vec2{X: 2, Y: 2}, Vec2{X: 5, Y: 5}, 0},
		{"opposite", Vec2{X: 1}, Vec2{X: -3}, math.Pi},
		{"zero vector", Vec2{}, Vec2{X: 1}, math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Angle(tt.b)
			if math.IsNaN(got) {
				t.Fatalf("Angle returned NaN")
			}
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestHeading(t *testing.T) {
	if h := (Vec2{X: 0, Y: -1}).Heading(); !near(h, -math.Pi/2) {
		t.Errorf("Expected -pi/2 for up, got %f", h)
	}
	if h := (Vec2{X: 0, Y: 1}).Heading(); !near(h, math.Pi/2) {
		t.Errorf("Expected pi/2 for down, got %f", h)
	}
	if h := (Vec2{X: 1, Y: 0}).Heading(); !near(h, 0) {
		t.Errorf("Expected 0 for right, got %f", h)
	}
}

func TestInPlaceOps(t *testing.T) {
	v := Vec2{X: 1, Y: 2}
	v.AddOn(Vec2{X: 2, Y: 3})
	v.MulOn(2)
	v.SubOn(Vec2{X: 1, Y: 1})
	if v.X != 5 || v.Y != 9 {
		t.Errorf("Expected (5, 9), got %+v", v)
	}
	if d := (Vec2{}).Distance(Vec2{X: 3, Y: 4}); d != 5 {
		t.Errorf("Expected distance 5, got %f", d)
	}
}
