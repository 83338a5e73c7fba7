package arc

import "golang.org/x/image/math/f32"

// Affine returns the matrix equivalent of TransformPoint for the given
// parameters, in the row-major layout of f32.Aff3:
//
//	x' = m[0]*x + m[1]*y + m[2]
//	y' = m[3]*x + m[4]*y + m[5]
//
// Use it to hand a quad transform to a renderer that accepts matrices
// instead of pre-transformed positions.
func Affine(translation Vec2, degrees float32, factor, center Vec2) f32.Aff3 {
	sin, cos := sincos(degrees)
	a, b := factor.X*cos, -factor.X*sin
	d, e := factor.Y*sin, factor.Y*cos
	return f32.Aff3{
		a, b, translation.X + center.X - a*center.X - b*center.Y,
		d, e, translation.Y + center.Y - d*center.X - e*center.Y,
	}
}

// ApplyAffine transforms p by m.
func ApplyAffine(m f32.Aff3, p Vec2) Vec2 {
	return Vec2{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}
