package arc

import "image/color"

// Color is a non-premultiplied 8-bit RGBA colour, the layout vertex buffers
// carry per vertex.
type Color struct {
	R, G, B, A uint8
}

// Common colours.
var (
	Transparent = Color{}
	Black       = Color{A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Red         = Color{R: 255, A: 255}
	Green       = Color{G: 255, A: 255}
	Blue        = Color{B: 255, A: 255}
)

// RGB creates an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// NRGBA returns the colour as a color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// ColorFrom converts any color.Color to a Color.
func ColorFrom(c color.Color) Color {
	switch c := c.(type) {
	case Color:
		return c
	case color.NRGBA:
		return Color{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
