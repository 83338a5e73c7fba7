package arc

// MaxIndexedQuads is the largest number of quads whose vertex indices fit
// in a uint16 index buffer.
const MaxIndexedQuads = (1 << 16) / QuadVertices

// QuadIndexCount is the number of indices drawing one quad as two
// triangles.
const QuadIndexCount = 6

// AppendQuadIndices appends the indices of quads quads to dst, two
// triangles per quad wound TopLeft, TopRight, BottomRight and TopLeft,
// BottomRight, BottomLeft. It panics if quads exceeds MaxIndexedQuads.
func AppendQuadIndices(dst []uint16, quads int) []uint16 {
	if quads > MaxIndexedQuads {
		panic("arc: too many quads for uint16 indices")
	}
	for q := 0; q < quads; q++ {
		base := uint16(q * QuadVertices)
		dst = append(dst,
			base+TopLeft, base+TopRight, base+BottomRight,
			base+TopLeft, base+BottomRight, base+BottomLeft,
		)
	}
	return dst
}

// Normalized returns c's straight-alpha channels scaled to [0, 1].
func (c Color) Normalized() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}
