package arc

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Left, Top, Width, Height float32
}

// R is a convenience function to create a Rect.
func R(left, top, width, height float32) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Top + r.Height }

// Position returns the top-left corner.
func (r Rect) Position() Vec2 { return Vec2{X: r.Left, Y: r.Top} }

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{X: r.Width, Y: r.Height} }

// Center returns the centre point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive, matching image.Rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left && p.X < r.Right() && p.Y >= r.Top && p.Y < r.Bottom()
}

// Intersects reports whether r and s overlap with a non-empty area.
func (r Rect) Intersects(s Rect) bool {
	return r.Left < s.Right() && s.Left < r.Right() && r.Top < s.Bottom() && s.Top < r.Bottom()
}

// Image returns the smallest integer rectangle covering r.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(r.Left))),
		int(math.Floor(float64(r.Top))),
		int(math.Ceil(float64(r.Right()))),
		int(math.Ceil(float64(r.Bottom()))),
	)
}

// RectFromImage converts an integer rectangle.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{
		Left:   float32(r.Min.X),
		Top:    float32(r.Min.Y),
		Width:  float32(r.Dx()),
		Height: float32(r.Dy()),
	}
}
