// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenarc draws arc vertex buffers with Ebitengine.
//
// arc keeps quads as four clockwise vertices; Ebitengine draws indexed
// triangles. Vertices converts the layout, QuadIndices emits two triangles
// per quad and Batch ties both together with reusable buffers:
//
//	var batch ebitenarc.Batch
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//	    batch.Draw(screen, g.texture, g.vertices)
//	}
//
// A nil texture draws flat-coloured quads.
package ebitenarc
