package atlas

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/arc"
)

// Atlas is a grid of fixed-size cells on a single NRGBA image.
// Cells are numbered row-major starting at the top-left.
type Atlas struct {
	img   *image.NRGBA
	grid  image.Point
	cell  image.Point
	rects []image.Rectangle
	opts  options

	gen   uint64
	clean uint64
}

// New creates an atlas of grid.X by grid.Y cells, each cell.X by cell.Y
// pixels. The image starts cleared to the background colour.
func New(grid, cell image.Point, opts ...Option) (*Atlas, error) {
	if grid.X <= 0 || grid.Y <= 0 || cell.X <= 0 || cell.Y <= 0 {
		return nil, fmt.Errorf("%w: grid=%v cell=%v", ErrInvalidSize, grid, cell)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	a := &Atlas{
		img:   image.NewNRGBA(image.Rect(0, 0, grid.X*cell.X, grid.Y*cell.Y)),
		grid:  grid,
		cell:  cell,
		rects: make([]image.Rectangle, 0, grid.X*grid.Y),
		opts:  o,
	}
	for y := 0; y < grid.Y; y++ {
		for x := 0; x < grid.X; x++ {
			origin := image.Pt(x*cell.X, y*cell.Y)
			a.rects = append(a.rects, image.Rectangle{Min: origin, Max: origin.Add(cell)})
		}
	}
	a.Clear()
	return a, nil
}

// Len returns the number of cells.
func (a *Atlas) Len() int { return len(a.rects) }

// GridSize returns the number of columns and rows.
func (a *Atlas) GridSize() image.Point { return a.grid }

// CellSize returns the size of one cell in pixels.
func (a *Atlas) CellSize() image.Point { return a.cell }

// Image returns the backing image. Writes to it must be followed by
// Touch so that uploaders notice the change.
func (a *Atlas) Image() *image.NRGBA { return a.img }

// Format returns the GPU texture format matching Image's pixel layout.
func (a *Atlas) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Rect returns the pixel rectangle of cell index. It panics if index is
// out of range.
func (a *Atlas) Rect(index int) image.Rectangle {
	return a.rects[index]
}

// TexRect returns the texture rectangle of cell index, ready for
// arc.SetQuadTextureRect. It panics if index is out of range.
func (a *Atlas) TexRect(index int) arc.Rect {
	return arc.RectFromImage(a.rects[index])
}

// Clear fills the whole atlas with the background colour.
func (a *Atlas) Clear() {
	draw.Draw(a.img, a.img.Bounds(), image.NewUniform(a.opts.background), image.Point{}, draw.Src)
	a.Touch()
}

// EditCell scales srcRect of src into cell index, replacing its contents.
// An empty srcRect means the whole source image.
func (a *Atlas) EditCell(index int, src image.Image, srcRect image.Rectangle) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	if src == nil {
		return ErrNilSource
	}
	if srcRect.Empty() {
		srcRect = src.Bounds()
	}
	srcRect = srcRect.Intersect(src.Bounds())
	if srcRect.Empty() {
		return ErrEmptySource
	}

	dst := a.rects[index]
	a.opts.interp.Scale(a.img, dst, src, srcRect, draw.Src, nil)
	a.Touch()

	arc.Logger().Debug("atlas: cell edited",
		slog.Int("index", index),
		slog.String("src", srcRect.String()))
	return nil
}

// DrawLabel draws text centred in cell index. Glyphs falling outside the
// cell are clipped. The cell is not cleared first.
func (a *Atlas) DrawLabel(index int, face font.Face, text string, c color.Color) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	r := a.rects[index]
	d := font.Drawer{
		Dst:  a.img.SubImage(r).(*image.NRGBA),
		Src:  image.NewUniform(c),
		Face: face,
	}
	m := face.Metrics()
	width := d.MeasureString(text)
	height := m.Ascent + m.Descent
	d.Dot = fixed.Point26_6{
		X: fixed.I(r.Min.X) + (fixed.I(r.Dx())-width)/2,
		Y: fixed.I(r.Min.Y) + (fixed.I(r.Dy())-height)/2 + m.Ascent,
	}
	d.DrawString(text)
	a.Touch()

	arc.Logger().Debug("atlas: label drawn", slog.Int("index", index), slog.String("text", text))
	return nil
}

// Touch records a modification of the image.
func (a *Atlas) Touch() { a.gen++ }

// Generation returns a counter that increases on every modification.
func (a *Atlas) Generation() uint64 { return a.gen }

// Dirty reports whether the atlas changed since the last MarkClean.
func (a *Atlas) Dirty() bool { return a.gen != a.clean }

// MarkClean records the current contents as uploaded.
func (a *Atlas) MarkClean() { a.clean = a.gen }

// Encode writes the atlas as PNG.
func (a *Atlas) Encode(w io.Writer) error {
	if err := png.Encode(w, a.img); err != nil {
		return fmt.Errorf("atlas: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the atlas to a PNG file.
func (a *Atlas) SavePNG(path string) (err error) {
	// #nosec G304 -- output path is provided by the application
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("atlas: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("atlas: close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := a.Encode(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("atlas: write %s: %w", path, err)
	}
	arc.Logger().Info("atlas: saved", slog.String("path", path), slog.Int("cells", len(a.rects)))
	return nil
}

func (a *Atlas) checkIndex(index int) error {
	if index < 0 || index >= len(a.rects) {
		return fmt.Errorf("%w: %d (cells: %d)", ErrCellIndex, index, len(a.rects))
	}
	return nil
}
