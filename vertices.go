package arc

// Range transforms apply a point transform to the positions of
// vertices[start : start+count]. Colours and texture coordinates are left
// untouched. The range must lie within the buffer.

// MoveVertices translates every position in the range.
func MoveVertices(vertices []Vertex, start, count int, translation Vec2) {
	for i := start; i < start+count; i++ {
		vertices[i].Position = vertices[i].Position.Add(translation)
	}
}

// RotateVertices rotates the range by degrees about center.
func RotateVertices(vertices []Vertex, start, count int, degrees float32, center Vec2) {
	sin, cos := sincos(degrees)
	for i := start; i < start+count; i++ {
		vertices[i].Position = RotatePoint(vertices[i].Position, sin, cos, center)
	}
}

// ScaleVertices scales the range per axis about center.
func ScaleVertices(vertices []Vertex, start, count int, factor, center Vec2) {
	for i := start; i < start+count; i++ {
		vertices[i].Position = ScalePoint(vertices[i].Position, factor, center)
	}
}

// TransformVertices rotates, scales and translates the range in one pass.
// See TransformPoint.
func TransformVertices(vertices []Vertex, start, count int, translation Vec2, degrees float32, factor, center Vec2) {
	sin, cos := sincos(degrees)
	for i := start; i < start+count; i++ {
		vertices[i].Position = TransformPoint(vertices[i].Position, translation, sin, cos, factor, center)
	}
}

// ShearVertices shears the range about center. See ShearPoint.
func ShearVertices(vertices []Vertex, start, count int, factor, center Vec2) {
	for i := start; i < start+count; i++ {
		vertices[i].Position = ShearPoint(vertices[i].Position, factor, center)
	}
}

// ReflectVerticesAlongX mirrors the range across the horizontal line
// through center.
func ReflectVerticesAlongX(vertices []Vertex, start, count int, center Vec2) {
	for i := start; i < start+count; i++ {
		vertices[i].Position = ReflectPointAlongX(vertices[i].Position, center)
	}
}

// ReflectVerticesAlongY mirrors the range across the vertical line
// through center.
func ReflectVerticesAlongY(vertices []Vertex, start, count int, center Vec2) {
	for i := start; i < start+count; i++ {
		vertices[i].Position = ReflectPointAlongY(vertices[i].Position, center)
	}
}

// SetVerticesPosition moves the range so that the point currently at
// center ends up at position.
func SetVerticesPosition(vertices []Vertex, start, count int, position, center Vec2) {
	MoveVertices(vertices, start, count, position.Sub(center))
}

// SetVerticesColor sets the colour of every vertex in the range.
func SetVerticesColor(vertices []Vertex, start, count int, c Color) {
	for i := start; i < start+count; i++ {
		vertices[i].Color = c
	}
}

// VerticesBounds returns the axis-aligned bounding box of the positions in
// the range. An empty range yields the zero Rect.
func VerticesBounds(vertices []Vertex, start, count int) Rect {
	if count <= 0 {
		return Rect{}
	}
	lo := vertices[start].Position
	hi := lo
	for i := start + 1; i < start+count; i++ {
		p := vertices[i].Position
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
	}
	return Rect{Left: lo.X, Top: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// VerticesCenter returns the centroid of the positions in the range.
// Range transforms never compute it implicitly; callers pass it as the
// pivot when they want to transform a range about its own centre.
func VerticesCenter(vertices []Vertex, start, count int) Vec2 {
	if count <= 0 {
		return Vec2{}
	}
	var sum Vec2
	for i := start; i < start+count; i++ {
		sum = sum.Add(vertices[i].Position)
	}
	return sum.Mul(1 / float32(count))
}
