// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/arc"
)

// Rasterizer fills quads into an image. The zero value is not usable;
// create one with NewRasterizer. A Rasterizer reuses its coverage buffers
// and is not safe for concurrent use.
type Rasterizer struct {
	z *vector.Rasterizer
}

// NewRasterizer creates a rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{z: vector.NewRasterizer(0, 0)}
}

// DrawQuads composites every quad in vertices onto dst. Each quad is filled
// with the average of its four vertex colours; fully transparent quads are
// skipped. A trailing partial quad is ignored. It returns the number of
// quads drawn.
func (r *Rasterizer) DrawQuads(dst draw.Image, vertices []arc.Vertex) int {
	drawn := 0
	for i := 0; i+arc.QuadVertices <= len(vertices); i += arc.QuadVertices {
		q := vertices[i : i+arc.QuadVertices]
		c := averageColor(q)
		if c.A == 0 {
			continue
		}
		bounds, ok := r.cover(dst.Bounds(), q)
		if !ok {
			continue
		}
		r.z.Draw(dst, bounds, image.NewUniform(c), image.Point{})
		drawn++
	}
	return drawn
}

// DrawTextured composites every quad in vertices onto dst, sampling tex
// with nearest filtering. Texture coordinates are mapped affinely from the
// quad's top-left, top-right and bottom-left corners, which is exact for
// any rotated, scaled or sheared rectangle. The sample is tinted by the
// average vertex colour. It returns the number of quads drawn.
func (r *Rasterizer) DrawTextured(dst draw.Image, vertices []arc.Vertex, tex image.Image) int {
	if tex == nil {
		return 0
	}
	drawn := 0
	for i := 0; i+arc.QuadVertices <= len(vertices); i += arc.QuadVertices {
		q := vertices[i : i+arc.QuadVertices]
		tint := averageColor(q)
		if tint.A == 0 {
			continue
		}
		m, ok := newTexMap(q)
		if !ok {
			continue
		}
		bounds, ok := r.cover(dst.Bounds(), q)
		if !ok {
			continue
		}

		mask := image.NewAlpha(bounds)
		r.z.Draw(mask, bounds, image.Opaque, image.Point{})

		sampled := image.NewNRGBA(bounds)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				if mask.AlphaAt(x, y).A == 0 {
					continue
				}
				tc := m.at(arc.V(float32(x)+0.5, float32(y)+0.5))
				sampled.SetNRGBA(x, y, modulate(sample(tex, tc), tint))
			}
		}
		draw.DrawMask(dst, bounds, sampled, bounds.Min, mask, bounds.Min, draw.Over)
		drawn++
	}
	return drawn
}

// cover loads the outline of q into the vector rasterizer and returns the
// pixel bounds it spans within clip.
func (r *Rasterizer) cover(clip image.Rectangle, q []arc.Vertex) (image.Rectangle, bool) {
	b := quadPixelBounds(q).Intersect(clip)
	if b.Empty() {
		return b, false
	}
	size := b.Size()
	r.z.Reset(size.X, size.Y)

	ox, oy := float32(b.Min.X), float32(b.Min.Y)
	r.z.MoveTo(q[0].Position.X-ox, q[0].Position.Y-oy)
	for _, v := range q[1:] {
		r.z.LineTo(v.Position.X-ox, v.Position.Y-oy)
	}
	r.z.ClosePath()
	return b, true
}

func quadPixelBounds(q []arc.Vertex) image.Rectangle {
	minX, minY := q[0].Position.X, q[0].Position.Y
	maxX, maxY := minX, minY
	for _, v := range q[1:] {
		minX = min(minX, v.Position.X)
		minY = min(minY, v.Position.Y)
		maxX = max(maxX, v.Position.X)
		maxY = max(maxY, v.Position.Y)
	}
	return image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
}

func averageColor(q []arc.Vertex) color.NRGBA {
	var r, g, b, a int
	for _, v := range q {
		r += int(v.Color.R)
		g += int(v.Color.G)
		b += int(v.Color.B)
		a += int(v.Color.A)
	}
	n := len(q)
	return color.NRGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: uint8(a / n)}
}

func sample(tex image.Image, p arc.Vec2) color.NRGBA {
	b := tex.Bounds()
	x := clampInt(int(math.Floor(float64(p.X))), b.Min.X, b.Max.X-1)
	y := clampInt(int(math.Floor(float64(p.Y))), b.Min.Y, b.Max.Y-1)
	if nrgba, ok := tex.(*image.NRGBA); ok {
		return nrgba.NRGBAAt(x, y)
	}
	return color.NRGBAModel.Convert(tex.At(x, y)).(color.NRGBA)
}

func modulate(c, tint color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(uint16(c.R) * uint16(tint.R) / 255),
		G: uint8(uint16(c.G) * uint16(tint.G) / 255),
		B: uint8(uint16(c.B) * uint16(tint.B) / 255),
		A: uint8(uint16(c.A) * uint16(tint.A) / 255),
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
