package atlas

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/arc"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestNewInvalidSize(t *testing.T) {
	tests := []struct {
		name       string
		grid, cell image.Point
	}{
		{"zero grid", image.Pt(0, 2), image.Pt(8, 8)},
		{"negative cell", image.Pt(2, 2), image.Pt(8, -1)},
		{"zero cell", image.Pt(2, 2), image.Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.grid, tt.cell); !errors.Is(err, ErrInvalidSize) {
				t.Errorf("New(%v, %v) error = %v, want ErrInvalidSize", tt.grid, tt.cell, err)
			}
		})
	}
}

func TestCellRects(t *testing.T) {
	a, err := New(image.Pt(3, 2), image.Pt(16, 8))
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", a.Len())
	}
	if got := a.Image().Bounds(); got != image.Rect(0, 0, 48, 16) {
		t.Errorf("Image().Bounds() = %v", got)
	}
	if got := a.Rect(4); got != image.Rect(16, 8, 32, 16) {
		t.Errorf("Rect(4) = %v, want (16,8)-(32,16)", got)
	}
	if got, want := a.TexRect(2), arc.R(32, 0, 16, 8); got != want {
		t.Errorf("TexRect(2) = %v, want %v", got, want)
	}
	if a.GridSize() != image.Pt(3, 2) || a.CellSize() != image.Pt(16, 8) {
		t.Errorf("GridSize() = %v, CellSize() = %v", a.GridSize(), a.CellSize())
	}
	if a.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v", a.Format())
	}
}

func TestEditCell(t *testing.T) {
	a, err := New(image.Pt(2, 2), image.Pt(4, 4), WithInterpolator(draw.NearestNeighbor))
	if err != nil {
		t.Fatal(err)
	}
	red := color.NRGBA{R: 255, A: 255}
	if err := a.EditCell(3, solid(2, 2, red), image.Rectangle{}); err != nil {
		t.Fatalf("EditCell() error = %v", err)
	}

	img := a.Image()
	for y := 4; y < 8; y++ {
		for x := 4; x < 8; x++ {
			if c := img.NRGBAAt(x, y); c != red {
				t.Fatalf("pixel (%d,%d) = %v, want red", x, y, c)
			}
		}
	}
	if c := img.NRGBAAt(0, 0); c != (color.NRGBA{}) {
		t.Errorf("untouched cell pixel = %v, want transparent", c)
	}
}

func TestEditCellSubRect(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	blue := color.NRGBA{B: 255, A: 255}
	draw.Draw(src, image.Rect(2, 0, 4, 2), image.NewUniform(blue), image.Point{}, draw.Src)

	a, _ := New(image.Pt(1, 1), image.Pt(8, 8), WithInterpolator(draw.NearestNeighbor))
	if err := a.EditCell(0, src, image.Rect(2, 0, 4, 2)); err != nil {
		t.Fatal(err)
	}
	if c := a.Image().NRGBAAt(0, 0); c != blue {
		t.Errorf("pixel (0,0) = %v, want blue", c)
	}
}

func TestEditCellErrors(t *testing.T) {
	a, _ := New(image.Pt(2, 1), image.Pt(4, 4))
	src := solid(2, 2, color.NRGBA{A: 255})

	if err := a.EditCell(2, src, src.Bounds()); !errors.Is(err, ErrCellIndex) {
		t.Errorf("EditCell(2) error = %v, want ErrCellIndex", err)
	}
	if err := a.EditCell(-1, src, src.Bounds()); !errors.Is(err, ErrCellIndex) {
		t.Errorf("EditCell(-1) error = %v, want ErrCellIndex", err)
	}
	if err := a.EditCell(0, nil, image.Rectangle{}); !errors.Is(err, ErrNilSource) {
		t.Errorf("EditCell(nil) error = %v, want ErrNilSource", err)
	}
	if err := a.EditCell(0, src, image.Rect(10, 10, 20, 20)); !errors.Is(err, ErrEmptySource) {
		t.Errorf("EditCell(outside) error = %v, want ErrEmptySource", err)
	}
}

func TestDrawLabel(t *testing.T) {
	a, _ := New(image.Pt(2, 1), image.Pt(40, 20))
	if err := a.DrawLabel(1, basicfont.Face7x13, "Hi", color.White); err != nil {
		t.Fatalf("DrawLabel() error = %v", err)
	}

	img := a.Image()
	inside := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 80; x++ {
			if img.NRGBAAt(x, y).A == 0 {
				continue
			}
			if x < 40 {
				t.Fatalf("label leaked into cell 0 at (%d,%d)", x, y)
			}
			inside++
		}
	}
	if inside == 0 {
		t.Error("DrawLabel() drew nothing")
	}

	if err := a.DrawLabel(5, basicfont.Face7x13, "x", color.White); !errors.Is(err, ErrCellIndex) {
		t.Errorf("DrawLabel(5) error = %v, want ErrCellIndex", err)
	}
}

func TestDirtyTracking(t *testing.T) {
	a, _ := New(image.Pt(1, 1), image.Pt(2, 2))
	if !a.Dirty() {
		t.Error("new atlas should be dirty")
	}
	a.MarkClean()
	if a.Dirty() {
		t.Error("Dirty() = true after MarkClean")
	}
	gen := a.Generation()
	_ = a.EditCell(0, solid(1, 1, color.NRGBA{G: 255, A: 255}), image.Rectangle{})
	if !a.Dirty() || a.Generation() <= gen {
		t.Errorf("after EditCell: Dirty() = %v, Generation() = %d (was %d)", a.Dirty(), a.Generation(), gen)
	}
}

func TestClearBackground(t *testing.T) {
	bg := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	a, _ := New(image.Pt(1, 1), image.Pt(3, 3), WithBackground(bg))
	_ = a.EditCell(0, solid(1, 1, color.NRGBA{R: 255, A: 255}), image.Rectangle{})
	a.Clear()
	if c := a.Image().NRGBAAt(1, 1); c != bg {
		t.Errorf("after Clear pixel = %v, want %v", c, bg)
	}
}

func TestSavePNG(t *testing.T) {
	a, _ := New(image.Pt(2, 1), image.Pt(4, 4), WithInterpolator(draw.NearestNeighbor))
	green := color.NRGBA{G: 255, A: 255}
	_ = a.EditCell(1, solid(1, 1, green), image.Rectangle{})

	path := filepath.Join(t.TempDir(), "atlas.png")
	if err := a.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 8, 4) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	if c := color.NRGBAModel.Convert(img.At(5, 2)); c != green {
		t.Errorf("pixel (5,2) = %v, want green", c)
	}
}
