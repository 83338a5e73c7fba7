// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenarc

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/arc"
)

// maxBatchQuads keeps vertex indices within uint16.
const maxBatchQuads = arc.MaxIndexedQuads

var (
	whiteOnce  sync.Once
	whiteImage *ebiten.Image
)

// white returns a 1x1 opaque white sub-image used for untextured quads.
// It is cut from a 3x3 image so linear filtering never samples an edge.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteImage
}

// Vertices appends src converted to Ebitengine vertices to dst.
// Colours are straight alpha scaled to [0, 1].
func Vertices(dst []ebiten.Vertex, src []arc.Vertex) []ebiten.Vertex {
	for _, v := range src {
		c := v.Color.Normalized()
		dst = append(dst, ebiten.Vertex{
			DstX:   v.Position.X,
			DstY:   v.Position.Y,
			SrcX:   v.TexCoords.X,
			SrcY:   v.TexCoords.Y,
			ColorR: c[0],
			ColorG: c[1],
			ColorB: c[2],
			ColorA: c[3],
		})
	}
	return dst
}

// QuadIndices appends the indices of quads quads, two triangles each, to
// dst. It panics if quads exceeds arc.MaxIndexedQuads.
func QuadIndices(dst []uint16, quads int) []uint16 {
	return arc.AppendQuadIndices(dst, quads)
}

// DrawQuads draws vertices onto screen with a throwaway Batch.
func DrawQuads(screen, img *ebiten.Image, vertices []arc.Vertex) {
	var b Batch
	b.Draw(screen, img, vertices)
}

// Batch converts and draws vertex buffers, reusing its scratch slices
// between frames. The zero value is ready to use.
type Batch struct {
	// Options is passed to every DrawTriangles call.
	Options ebiten.DrawTrianglesOptions

	vertices []ebiten.Vertex
	indices  []uint16
}

// Draw draws every complete quad in vertices onto screen, textured with
// img, or flat-coloured when img is nil. Large buffers are split into
// several DrawTriangles calls.
func (b *Batch) Draw(screen, img *ebiten.Image, vertices []arc.Vertex) {
	quads := len(vertices) / arc.QuadVertices
	flat := img == nil
	if flat {
		img = white()
	}

	for start := 0; start < quads; start += maxBatchQuads {
		n := min(quads-start, maxBatchQuads)
		chunk := vertices[start*arc.QuadVertices : (start+n)*arc.QuadVertices]

		b.vertices = Vertices(b.vertices[:0], chunk)
		if flat {
			for i := range b.vertices {
				b.vertices[i].SrcX, b.vertices[i].SrcY = 1.5, 1.5
			}
		}
		b.indices = QuadIndices(b.indices[:0], n)
		screen.DrawTriangles(b.vertices, b.indices, img, &b.Options)
	}
}
