package game

import "math"

// Vec2 is a 2D vector used for positions, velocities and forces
type Vec2 struct {
	X, Y float64
}

// Right is the unit vector along +X, used as the zero-angle reference
var Right = Vec2{X: 1, Y: 0}

// Magnitude returns the length of the vector
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit-length copy. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	m := v.Magnitude()
	if m == 0 {
		m = 1
	}
	return Vec2{X: v.X / m, Y: v.Y / m}
}

// SelfNormalize normalizes the vector in place
func (v *Vec2) SelfNormalize() {
	*v = v.Normalize()
}

// Dot returns the dot product
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// AddOn adds o to v in place
func (v *Vec2) AddOn(o Vec2) {
	v.X += o.X
	v.Y += o.Y
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// SubOn subtracts o from v in place
func (v *Vec2) SubOn(o Vec2) {
	v.X -= o.X
	v.Y -= o.Y
}

// Mul returns v scaled by s
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// MulOn scales v in place
func (v *Vec2) MulOn(s float64) {
	v.X *= s
	v.Y *= s
}

// Distance returns the euclidean distance between two points
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Magnitude()
}

// DistanceSq returns the squared distance between two points
func (v Vec2) DistanceSq(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// Angle returns the unsigned angle between v and o in radians
func (v Vec2) Angle(o Vec2) float64 {
	c := v.Normalize().Dot(o.Normalize())
	// Rounding can push the cosine just past 1
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c)
}

// Heading returns the signed angle of v measured from Right
func (v Vec2) Heading() float64 {
	a := v.Angle(Right)
	if v.Y < 0 {
		a = -a
	}
	return a
}
