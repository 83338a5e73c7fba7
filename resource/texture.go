package resource

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
)

// LoadTexture decodes an image file into a non-premultiplied RGBA image.
// Supported formats: png, jpeg, gif, bmp, tiff, webp.
func LoadTexture(path string) (*image.NRGBA, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("resource: open texture: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeTexture(f)
}

// DecodeTexture decodes an image from r, auto-detecting the format.
func DecodeTexture(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("resource: decode texture: %w", err)
	}
	return toNRGBA(img), nil
}

// TextureFromBytes decodes an in-memory image.
func TextureFromBytes(data []byte) (*image.NRGBA, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return DecodeTexture(bytes.NewReader(data))
}

// toNRGBA returns img as an *image.NRGBA with its origin at (0, 0).
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
