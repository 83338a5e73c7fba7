package arc

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Lerp linearly interpolates between a and b. t is not clamped, so values
// outside [0, 1] extrapolate. The endpoints are exact: Lerp(a, b, 0) == a
// and Lerp(a, b, 1) == b.
func Lerp[T constraints.Float](a, b, t T) T {
	return a*(1-t) + b*t
}

// LerpVec linearly interpolates between two points.
func LerpVec(a, b Vec2, t float32) Vec2 {
	return a.Lerp(b, t)
}

// LerpColor interpolates each channel of two colours.
//
// Channels are not clamped: for t outside [0, 1] the result is truncated
// toward zero and wraps modulo 256.
func LerpColor(a, b Color, t float32) Color {
	return Color{
		R: channel(Lerp(float32(a.R), float32(b.R), t)),
		G: channel(Lerp(float32(a.G), float32(b.G), t)),
		B: channel(Lerp(float32(a.B), float32(b.B), t)),
		A: channel(Lerp(float32(a.A), float32(b.A), t)),
	}
}

// channel narrows an interpolated value through int so the wrap-around is
// well defined rather than implementation-specific.
func channel(v float32) uint8 {
	return uint8(int(v))
}

// cosineEase remaps t through 0.5*(1-cos(t*pi)).
func cosineEase[T constraints.Float](t T) T {
	return T(0.5 * (1 - math.Cos(float64(t)*math.Pi)))
}

// CosineLerp interpolates between a and b with cosine ease-in/ease-out.
func CosineLerp[T constraints.Float](a, b, t T) T {
	return Lerp(a, b, cosineEase(t))
}

// CosineLerpVec interpolates between two points with cosine easing.
func CosineLerpVec(a, b Vec2, t float32) Vec2 {
	return a.Lerp(b, cosineEase(t))
}

// CosineLerpColor interpolates between two colours with cosine easing.
func CosineLerpColor(a, b Color, t float32) Color {
	return LerpColor(a, b, cosineEase(t))
}

// Oscillate maps t onto [lo, hi] through a sine wave with the given
// frequency (cycles per unit of t) and phase (radians). It is a pure
// function of t; callers supply elapsed time.
func Oscillate(t, frequency, phase, lo, hi float32) float32 {
	s := 0.5 * (1 + math.Sin(2*math.Pi*float64(frequency)*float64(t)+float64(phase)))
	return lo + (hi-lo)*float32(s)
}

// CubicBezier evaluates the cubic Bezier with control values p0..p3 at t
// using De Casteljau's reduction.
func CubicBezier[T constraints.Float](p0, p1, p2, p3, t T) T {
	a, b, c := Lerp(p0, p1, t), Lerp(p1, p2, t), Lerp(p2, p3, t)
	d, e := Lerp(a, b, t), Lerp(b, c, t)
	return Lerp(d, e, t)
}

// CubicBezierVec evaluates a cubic Bezier curve through 2D control points.
func CubicBezierVec(p0, p1, p2, p3 Vec2, t float32) Vec2 {
	return Vec2{
		X: CubicBezier(p0.X, p1.X, p2.X, p3.X, t),
		Y: CubicBezier(p0.Y, p1.Y, p2.Y, p3.Y, t),
	}
}

// QuadraticBezierVec evaluates a quadratic Bezier curve at t.
func QuadraticBezierVec(p0, p1, p2 Vec2, t float32) Vec2 {
	return p0.Lerp(p1, t).Lerp(p1.Lerp(p2, t), t)
}

// CubicBezierColor evaluates a cubic Bezier per colour channel. Channels
// follow the same wrap-around policy as LerpColor.
func CubicBezierColor(c0, c1, c2, c3 Color, t float32) Color {
	ch := func(a, b, c, d uint8) uint8 {
		return channel(CubicBezier(float32(a), float32(b), float32(c), float32(d), t))
	}
	return Color{
		R: ch(c0.R, c1.R, c2.R, c3.R),
		G: ch(c0.G, c1.G, c2.G, c3.G),
		B: ch(c0.B, c1.B, c2.B, c3.B),
		A: ch(c0.A, c1.A, c2.A, c3.A),
	}
}
