package arc

import "math"

// Pi is π at float32 precision. Pi64 is the float64 value.
const (
	Pi   float32 = math.Pi
	Pi64 float64 = math.Pi
)

// Radians converts an angle in degrees to radians.
func Radians(degrees float32) float32 {
	return (Pi / 180) * degrees
}

// Degrees converts an angle in radians to degrees.
func Degrees(radians float32) float32 {
	return (180 / Pi) * radians
}

// sincos returns the sine and cosine of an angle given in degrees.
// Evaluated in float64 so repeated rotations accumulate less error.
func sincos(degrees float32) (sin, cos float32) {
	s, c := math.Sincos(float64(degrees) * Pi64 / 180)
	return float32(s), float32(c)
}

// UnitVector returns the unit vector pointing at the given angle in degrees,
// measured clockwise from +X in screen space (y down).
func UnitVector(degrees float32) Vec2 {
	sin, cos := sincos(degrees)
	return Vec2{X: cos, Y: sin}
}
