package arc

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Vec2 is a 2D position or displacement in float32, the precision vertex
// buffers are stored in.
type Vec2 struct {
	X, Y float32
}

// V is a convenience function to create a Vec2.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// MulVec returns the component-wise product of two vectors.
func (v Vec2) MulVec(w Vec2) Vec2 {
	return Vec2{X: v.X * w.X, Y: v.Y * w.Y}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Angle returns the direction of the vector in degrees, in (-180, 180].
func (v Vec2) Angle() float32 {
	return Degrees(float32(math.Atan2(float64(v.Y), float64(v.X))))
}

// Lerp linearly interpolates between v and w. t is not clamped.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{X: Lerp(v.X, w.X, t), Y: Lerp(v.Y, w.Y, t)}
}

// F32 converts the vector to the golang.org/x/image/math/f32 representation.
func (v Vec2) F32() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// Vec2FromF32 converts a golang.org/x/image/math/f32 vector.
func Vec2FromF32(v f32.Vec2) Vec2 {
	return Vec2{X: v[0], Y: v[1]}
}
