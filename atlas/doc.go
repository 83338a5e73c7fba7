// Package atlas packs many small images into one texture.
//
// A vertex buffer can only reference a single texture, so sprites that
// share a buffer must share a texture too. An Atlas is a grid of
// equally sized cells on one RGBA image; each cell is filled from a source
// image with EditCell (or with text via DrawLabel) and mapped onto a quad
// with TexRect:
//
//	a, _ := atlas.New(image.Pt(4, 4), image.Pt(64, 64))
//	_ = a.EditCell(0, playerImg, playerImg.Bounds())
//	arc.SetQuadTextureRect(vertices, 0, a.TexRect(0))
//
// Atlas is not safe for concurrent use.
package atlas
