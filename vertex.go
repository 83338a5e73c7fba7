package arc

// Vertex is one record of a vertex buffer: a position, a colour and a
// texture coordinate in texels.
type Vertex struct {
	Position  Vec2
	Color     Color
	TexCoords Vec2
}

// QuadVertices is the number of vertices making up a quad.
const QuadVertices = 4

// Quad corner offsets relative to the quad's base index.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)
