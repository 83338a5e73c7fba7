// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/arc"
)

func quads(n int) []arc.Vertex {
	return make([]arc.Vertex, n*arc.QuadVertices)
}

func TestDrawQuads(t *testing.T) {
	v := quads(2)
	arc.MakeRect(v, 0, arc.R(4, 4, 8, 8))
	arc.SetQuadColor(v, 0, arc.Red)
	arc.MakeRect(v, 1, arc.R(0, 0, 20, 20))
	arc.SetQuadColor(v, 1, arc.Transparent)

	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	if n := NewRasterizer().DrawQuads(img, v); n != 1 {
		t.Errorf("DrawQuads() = %d, want 1 (transparent quad skipped)", n)
	}

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{8, 8, color.RGBA{R: 255, A: 255}},
		{4, 4, color.RGBA{R: 255, A: 255}},
		{11, 11, color.RGBA{R: 255, A: 255}},
		{12, 12, color.RGBA{}},
		{1, 1, color.RGBA{}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawQuadsAverageColor(t *testing.T) {
	v := quads(1)
	arc.MakeRect(v, 0, arc.R(0, 0, 4, 4))
	v[0].Color = arc.RGB(200, 0, 0)
	v[1].Color = arc.RGB(200, 0, 0)
	v[2].Color = arc.RGB(0, 0, 200)
	v[3].Color = arc.RGB(0, 0, 200)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	NewRasterizer().DrawQuads(img, v)
	if got, want := img.RGBAAt(2, 2), (color.RGBA{R: 100, B: 100, A: 255}); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestDrawQuadsRotated(t *testing.T) {
	v := quads(1)
	arc.MakeQuad(v, 0, arc.V(20, 20), arc.V(20, 20))
	arc.RotateQuad(v, 0, 45)
	arc.SetQuadColor(v, 0, arc.White)

	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	NewRasterizer().DrawQuads(img, v)

	if c := img.RGBAAt(20, 20); c.A < 250 {
		t.Errorf("centre alpha = %d, want opaque", c.A)
	}
	// The diamond reaches x = 20 - 10*sqrt2 on the centre line but leaves
	// the corners of its bounding box empty.
	if c := img.RGBAAt(7, 20); c.A < 250 {
		t.Errorf("left tip alpha = %d, want opaque", c.A)
	}
	if c := img.RGBAAt(7, 7); c.A != 0 {
		t.Errorf("bounding box corner alpha = %d, want 0", c.A)
	}
}

func TestDrawQuadsIgnoresPartialQuad(t *testing.T) {
	v := quads(1)
	arc.MakeRect(v, 0, arc.R(0, 0, 4, 4))
	arc.SetQuadColor(v, 0, arc.White)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if n := NewRasterizer().DrawQuads(img, v[:3]); n != 0 {
		t.Errorf("DrawQuads(3 vertices) = %d, want 0", n)
	}
}

func TestDrawQuadsOffscreen(t *testing.T) {
	v := quads(1)
	arc.MakeRect(v, 0, arc.R(100, 100, 4, 4))
	arc.SetQuadColor(v, 0, arc.White)

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if n := NewRasterizer().DrawQuads(img, v); n != 0 {
		t.Errorf("DrawQuads(offscreen) = %d, want 0", n)
	}
}

func twoTexelTexture() *image.NRGBA {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	tex.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	tex.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})
	return tex
}

func TestDrawTextured(t *testing.T) {
	v := quads(1)
	arc.MakeRect(v, 0, arc.R(0, 0, 10, 10))
	arc.SetQuadColor(v, 0, arc.White)
	arc.SetQuadTextureRect(v, 0, arc.R(0, 0, 2, 1))

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if n := NewRasterizer().DrawTextured(img, v, twoTexelTexture()); n != 1 {
		t.Fatalf("DrawTextured() = %d, want 1", n)
	}
	if got := img.RGBAAt(2, 5); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("left half = %v, want red", got)
	}
	if got := img.RGBAAt(7, 5); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("right half = %v, want blue", got)
	}
}

func TestDrawTexturedRotated(t *testing.T) {
	v := quads(1)
	arc.MakeRect(v, 0, arc.R(0, 0, 10, 10))
	arc.SetQuadColor(v, 0, arc.White)
	arc.SetQuadTextureRect(v, 0, arc.R(0, 0, 2, 1))
	arc.RotateQuad(v, 0, 180)

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	NewRasterizer().DrawTextured(img, v, twoTexelTexture())
	if got := img.RGBAAt(2, 5); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("left half = %v, want blue after a half turn", got)
	}
	if got := img.RGBAAt(7, 5); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("right half = %v, want red after a half turn", got)
	}
}

func TestDrawTexturedTint(t *testing.T) {
	v := quads(1)
	arc.MakeRect(v, 0, arc.R(0, 0, 4, 4))
	arc.SetQuadColor(v, 0, arc.RGB(255, 0, 255))
	arc.SetQuadTextureRect(v, 0, arc.R(1, 0, 1, 1))

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	NewRasterizer().DrawTextured(img, v, twoTexelTexture())
	if got := img.RGBAAt(1, 1); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("tinted pixel = %v, want blue", got)
	}

	if n := NewRasterizer().DrawTextured(img, v, nil); n != 0 {
		t.Errorf("DrawTextured(nil texture) = %d, want 0", n)
	}
}
