// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/arc"

// texMap maps a screen point inside a quad to texture space. The quad is
// treated as the parallelogram spanned by its top-left corner and the
// edges towards top-right and bottom-left.
type texMap struct {
	origin arc.Vec2
	inv    [4]float32 // inverse of the [u v] edge matrix, row-major
	texO   arc.Vec2
	texU   arc.Vec2
	texV   arc.Vec2
}

func newTexMap(q []arc.Vertex) (texMap, bool) {
	tl, tr, bl := q[arc.TopLeft], q[arc.TopRight], q[arc.BottomLeft]
	u := tr.Position.Sub(tl.Position)
	v := bl.Position.Sub(tl.Position)

	det := u.X*v.Y - v.X*u.Y
	if det == 0 {
		return texMap{}, false
	}
	return texMap{
		origin: tl.Position,
		inv:    [4]float32{v.Y / det, -v.X / det, -u.Y / det, u.X / det},
		texO:   tl.TexCoords,
		texU:   tr.TexCoords.Sub(tl.TexCoords),
		texV:   bl.TexCoords.Sub(tl.TexCoords),
	}, true
}

func (m texMap) at(p arc.Vec2) arc.Vec2 {
	d := p.Sub(m.origin)
	s := m.inv[0]*d.X + m.inv[1]*d.Y
	t := m.inv[2]*d.X + m.inv[3]*d.Y
	return m.texO.Add(m.texU.Mul(s)).Add(m.texV.Mul(t))
}
