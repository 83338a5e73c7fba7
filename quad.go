package arc

// QuadSpec describes a fully specified quad for MakeQuadWith.
type QuadSpec struct {
	Center  Vec2
	Size    Vec2
	Angle   float32 // degrees, about Center
	Color   Color
	TexRect Rect
}

// GridSpec describes a row-major grid of axis-aligned quads for MakeGrid.
type GridSpec struct {
	Cols, Rows int
	CellSize   Vec2
	Position   Vec2 // top-left corner of the first cell
	Padding    Vec2 // gap between neighbouring cells
}

// QuadCenter returns the midpoint of the quad's top-left and bottom-right
// corners.
func QuadCenter(vertices []Vertex, id int) Vec2 {
	idx := id * QuadVertices
	start := vertices[idx+TopLeft].Position
	end := vertices[idx+BottomRight].Position
	return start.Add(end.Sub(start).Mul(0.5))
}

// QuadRotation returns the angle in degrees of the quad's top edge.
func QuadRotation(vertices []Vertex, id int) float32 {
	idx := id * QuadVertices
	return vertices[idx+TopRight].Position.Sub(vertices[idx+TopLeft].Position).Angle()
}

// QuadSize returns the lengths of the quad's top and right edges.
func QuadSize(vertices []Vertex, id int) Vec2 {
	idx := id * QuadVertices
	w := vertices[idx+TopRight].Position.Sub(vertices[idx+TopLeft].Position)
	h := vertices[idx+BottomRight].Position.Sub(vertices[idx+TopRight].Position)
	return Vec2{X: w.Length(), Y: h.Length()}
}

// QuadBounds returns the axis-aligned bounding box of the quad.
func QuadBounds(vertices []Vertex, id int) Rect {
	return VerticesBounds(vertices, id*QuadVertices, QuadVertices)
}

// MoveQuad translates the quad.
func MoveQuad(vertices []Vertex, id int, translation Vec2) {
	MoveVertices(vertices, id*QuadVertices, QuadVertices, translation)
}

// RotateQuad rotates the quad by degrees about its own centre.
func RotateQuad(vertices []Vertex, id int, degrees float32) {
	RotateQuadAround(vertices, id, degrees, QuadCenter(vertices, id))
}

// RotateQuadAround rotates the quad by degrees about center.
func RotateQuadAround(vertices []Vertex, id int, degrees float32, center Vec2) {
	RotateVertices(vertices, id*QuadVertices, QuadVertices, degrees, center)
}

// ScaleQuad scales the quad about its own centre.
func ScaleQuad(vertices []Vertex, id int, factor Vec2) {
	ScaleQuadAround(vertices, id, factor, QuadCenter(vertices, id))
}

// ScaleQuadAround scales the quad about center.
func ScaleQuadAround(vertices []Vertex, id int, factor, center Vec2) {
	ScaleVertices(vertices, id*QuadVertices, QuadVertices, factor, center)
}

// TransformQuad rotates, scales and translates the quad about its own centre.
func TransformQuad(vertices []Vertex, id int, translation Vec2, degrees float32, factor Vec2) {
	TransformQuadAround(vertices, id, translation, degrees, factor, QuadCenter(vertices, id))
}

// TransformQuadAround rotates, scales and translates the quad about center.
func TransformQuadAround(vertices []Vertex, id int, translation Vec2, degrees float32, factor, center Vec2) {
	TransformVertices(vertices, id*QuadVertices, QuadVertices, translation, degrees, factor, center)
}

// ShearQuad shears the quad about its own centre.
func ShearQuad(vertices []Vertex, id int, factor Vec2) {
	ShearQuadAround(vertices, id, factor, QuadCenter(vertices, id))
}

// ShearQuadAround shears the quad about center.
func ShearQuadAround(vertices []Vertex, id int, factor, center Vec2) {
	ShearVertices(vertices, id*QuadVertices, QuadVertices, factor, center)
}

// ReflectQuadAlongX mirrors the quad across the horizontal line through center.
func ReflectQuadAlongX(vertices []Vertex, id int, center Vec2) {
	ReflectVerticesAlongX(vertices, id*QuadVertices, QuadVertices, center)
}

// ReflectQuadAlongY mirrors the quad across the vertical line through center.
func ReflectQuadAlongY(vertices []Vertex, id int, center Vec2) {
	ReflectVerticesAlongY(vertices, id*QuadVertices, QuadVertices, center)
}

// SetQuadColor sets the colour of all four corners.
func SetQuadColor(vertices []Vertex, id int, c Color) {
	SetVerticesColor(vertices, id*QuadVertices, QuadVertices, c)
}

// SetQuadTextureRect maps the texture rectangle onto the quad's corners in
// clockwise order.
func SetQuadTextureRect(vertices []Vertex, id int, r Rect) {
	idx := id * QuadVertices
	vertices[idx+TopLeft].TexCoords = Vec2{X: r.Left, Y: r.Top}
	vertices[idx+TopRight].TexCoords = Vec2{X: r.Right(), Y: r.Top}
	vertices[idx+BottomRight].TexCoords = Vec2{X: r.Right(), Y: r.Bottom()}
	vertices[idx+BottomLeft].TexCoords = Vec2{X: r.Left, Y: r.Bottom()}
}

// MakeRect writes the corners of r into the quad.
func MakeRect(vertices []Vertex, id int, r Rect) {
	idx := id * QuadVertices
	vertices[idx+TopLeft].Position = Vec2{X: r.Left, Y: r.Top}
	vertices[idx+TopRight].Position = Vec2{X: r.Right(), Y: r.Top}
	vertices[idx+BottomRight].Position = Vec2{X: r.Right(), Y: r.Bottom()}
	vertices[idx+BottomLeft].Position = Vec2{X: r.Left, Y: r.Bottom()}
}

// MakeQuad writes an axis-aligned quad of the given size centred on center.
func MakeQuad(vertices []Vertex, id int, center, size Vec2) {
	idx := id * QuadVertices
	hw, hh := size.X/2, size.Y/2
	vertices[idx+TopLeft].Position = Vec2{X: center.X - hw, Y: center.Y - hh}
	vertices[idx+TopRight].Position = Vec2{X: center.X + hw, Y: center.Y - hh}
	vertices[idx+BottomRight].Position = Vec2{X: center.X + hw, Y: center.Y + hh}
	vertices[idx+BottomLeft].Position = Vec2{X: center.X - hw, Y: center.Y + hh}
}

// MakeQuadWith builds the quad, rotates it about its centre, then sets its
// colour and texture rectangle.
func MakeQuadWith(vertices []Vertex, id int, spec QuadSpec) {
	MakeQuad(vertices, id, spec.Center, spec.Size)
	if spec.Angle != 0 {
		RotateQuadAround(vertices, id, spec.Angle, spec.Center)
	}
	SetQuadColor(vertices, id, spec.Color)
	SetQuadTextureRect(vertices, id, spec.TexRect)
}

// MakeGrid writes Cols*Rows axis-aligned quads starting at quad index
// start, row-major with columns varying fastest. It returns the number of
// quads written.
func MakeGrid(vertices []Vertex, start int, g GridSpec) int {
	id := start
	y := g.Position.Y
	for row := 0; row < g.Rows; row++ {
		x := g.Position.X
		for col := 0; col < g.Cols; col++ {
			MakeRect(vertices, id, Rect{Left: x, Top: y, Width: g.CellSize.X, Height: g.CellSize.Y})
			id++
			x += g.CellSize.X + g.Padding.X
		}
		y += g.CellSize.Y + g.Padding.Y
	}
	return id - start
}

// MakeDiamond writes a rhombus centred on center whose corners are the top,
// right, bottom and left edge midpoints of a width x height box.
func MakeDiamond(vertices []Vertex, id int, center Vec2, width, height float32) {
	idx := id * QuadVertices
	vertices[idx+0].Position = Vec2{X: center.X, Y: center.Y - height/2}
	vertices[idx+1].Position = Vec2{X: center.X + width/2, Y: center.Y}
	vertices[idx+2].Position = Vec2{X: center.X, Y: center.Y + height/2}
	vertices[idx+3].Position = Vec2{X: center.X - width/2, Y: center.Y}
}

// SetQuadPosition moves the quad so its centre is at position.
func SetQuadPosition(vertices []Vertex, id int, position Vec2) {
	SetVerticesPosition(vertices, id*QuadVertices, QuadVertices, position, QuadCenter(vertices, id))
}

// SetQuadSize rebuilds the quad at its current centre with the given size.
// Any rotation is discarded.
func SetQuadSize(vertices []Vertex, id int, size Vec2) {
	MakeQuad(vertices, id, QuadCenter(vertices, id), size)
}

// SetQuadRotation rotates the quad about its centre so that its top edge
// points at degrees.
func SetQuadRotation(vertices []Vertex, id int, degrees float32) {
	RotateQuad(vertices, id, degrees-QuadRotation(vertices, id))
}
