// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package atlascanvas uploads an atlas.Atlas to a GPU texture and draws it
// into a gogpu window.
//
// The data flow is:
//
//	atlas.Atlas (CPU, NRGBA) -> pixel upload -> GPU texture -> window
//
// # Usage
//
//	a, _ := atlas.New(image.Pt(8, 8), image.Pt(32, 32))
//	canvas, _ := atlascanvas.New(app.GPUContextProvider(), a)
//	defer canvas.Close()
//
//	_ = a.EditCell(0, sprite, sprite.Bounds())
//	canvas.RenderTo(dc)
//
// The GPU texture is created lazily on the first RenderTo and re-uploaded
// only when the atlas generation changes. When the surface format is
// BGRA8 the pixels are swizzled on upload.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use.
//
// # Integration Without Circular Imports
//
// This package uses interfaces to avoid importing gogpu directly:
//
//   - gpucontext.DeviceProvider for device access and surface format
//   - gpucontext.TextureDrawer, TextureCreator, Texture and TextureUpdater
//     for texture creation, upload and drawing
package atlascanvas
