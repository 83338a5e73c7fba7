package arc

// Point transforms operate on a single position about a pivot (center).
// Pass Vec2{} to use the origin. The sin and cos arguments are the
// precomputed sine and cosine of the rotation angle so range transforms
// evaluate the trigonometry once per call rather than once per vertex.

// RotatePoint rotates p about center.
func RotatePoint(p Vec2, sin, cos float32, center Vec2) Vec2 {
	dx, dy := p.X-center.X, p.Y-center.Y
	return Vec2{
		X: dx*cos - dy*sin + center.X,
		Y: dx*sin + dy*cos + center.Y,
	}
}

// ScalePoint scales the offset of p from center per axis.
func ScalePoint(p, factor, center Vec2) Vec2 {
	return Vec2{
		X: (p.X-center.X)*factor.X + center.X,
		Y: (p.Y-center.Y)*factor.Y + center.Y,
	}
}

// ShearPoint applies the shear
//
//	| 1+fx*fy  fy |
//	|   fx      1 |
//
// to the offset of p from center. The y axis keeps its absolute coordinate,
// so only the x component of the pivot shifts the result.
func ShearPoint(p, factor, center Vec2) Vec2 {
	dx, dy := p.X-center.X, p.Y-center.Y
	return Vec2{
		X: (1+factor.X*factor.Y)*dx + factor.Y*dy + center.X,
		Y: factor.X*dx + p.Y,
	}
}

// ReflectPointAlongX mirrors p across the horizontal line through center.
func ReflectPointAlongX(p, center Vec2) Vec2 {
	return Vec2{X: p.X, Y: 2*center.Y - p.Y}
}

// ReflectPointAlongY mirrors p across the vertical line through center.
func ReflectPointAlongY(p, center Vec2) Vec2 {
	return Vec2{X: 2*center.X - p.X, Y: p.Y}
}

// TransformPoint rotates p about center, scales the rotated offset per
// axis and translates the result, in a single pass.
func TransformPoint(p, translation Vec2, sin, cos float32, factor, center Vec2) Vec2 {
	dx, dy := p.X-center.X, p.Y-center.Y
	return Vec2{
		X: factor.X*(dx*cos-dy*sin) + translation.X + center.X,
		Y: factor.Y*(dx*sin+dy*cos) + translation.Y + center.Y,
	}
}
