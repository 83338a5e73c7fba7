// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package atlascanvas

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/arc"
	"github.com/gogpu/arc/atlas"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("atlascanvas: canvas is closed")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("atlascanvas: nil DeviceProvider")

	// ErrNilAtlas is returned when a nil atlas is passed.
	ErrNilAtlas = errors.New("atlascanvas: nil atlas")
)

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Canvas keeps a GPU texture in sync with an atlas.
type Canvas struct {
	atlas    *atlas.Atlas
	provider gpucontext.DeviceProvider
	texture  any // *pendingTexture until RenderTo creates a gpucontext.Texture
	closed   bool
}

// New creates a Canvas for a. The provider should come from
// gogpu.App.GPUContextProvider().
func New(provider gpucontext.DeviceProvider, a *atlas.Atlas) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if a == nil {
		return nil, ErrNilAtlas
	}
	return &Canvas{atlas: a, provider: provider}, nil
}

// Atlas returns the atlas being uploaded, or nil if the canvas is closed.
func (c *Canvas) Atlas() *atlas.Atlas {
	if c.closed {
		return nil
	}
	return c.atlas
}

// Provider returns the DeviceProvider associated with this canvas.
// Returns nil if the canvas is closed.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}

// Texture returns the current texture without flushing. It is nil before
// the first Flush and a placeholder until the first RenderTo.
func (c *Canvas) Texture() any {
	return c.texture
}

// Flush uploads the atlas pixels if they changed since the last upload.
// The first call only records the pixels; the GPU texture itself is
// created by RenderTo, which has access to a gpucontext.TextureCreator.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	if c.texture != nil && !c.atlas.Dirty() {
		return c.texture, nil
	}

	data := c.pixels()
	switch tex := c.texture.(type) {
	case nil:
		size := c.atlas.Image().Bounds().Size()
		c.texture = &pendingTexture{width: size.X, height: size.Y, data: data}
	case *pendingTexture:
		tex.data = data
	default:
		if updater, ok := tex.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(data); err != nil {
				return nil, fmt.Errorf("atlascanvas: texture update failed: %w", err)
			}
		}
	}

	c.atlas.MarkClean()
	arc.Logger().Debug("atlascanvas: atlas flushed",
		slog.Uint64("generation", c.atlas.Generation()),
		slog.Int("bytes", len(data)))
	return c.texture, nil
}

// pixels returns a copy of the atlas pixels in the surface's byte order.
func (c *Canvas) pixels() []byte {
	src := c.atlas.Image().Pix
	out := make([]byte, len(src))
	copy(out, src)
	if c.provider.SurfaceFormat() == gputypes.TextureFormatBGRA8Unorm {
		for i := 0; i+3 < len(out); i += 4 {
			out[i], out[i+2] = out[i+2], out[i]
		}
	}
	return out
}

// Close releases the GPU texture. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if destroyer, ok := c.texture.(textureDestroyer); ok {
		destroyer.Destroy()
	}
	c.texture = nil
	c.atlas = nil
	c.provider = nil
	return nil
}

// pendingTexture holds pixels until a TextureCreator is available.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
