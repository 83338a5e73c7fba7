// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render rasterises arc vertex buffers on the CPU.
//
// It is a preview path: no window, no GPU, just a draw.Image. The demo
// command uses it to write PNGs and tests use it to check that transformed
// geometry lands where it should.
//
// Vertices are consumed four at a time as quads (see arc.QuadVertices).
// Coverage is computed by golang.org/x/image/vector, so edges are
// anti-aliased.
//
//	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
//	r := render.NewRasterizer()
//	r.DrawQuads(img, vertices)
package render
