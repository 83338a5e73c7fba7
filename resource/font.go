package resource

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/arc/internal/cache"
)

// maxFaces bounds the number of sizes kept per Font.
const maxFaces = 16

// Font is a parsed TrueType or OpenType font. Rasterising faces come from
// golang.org/x/image/font/opentype; text measurement is shaped with
// go-text/typesetting so kerning and ligatures are accounted for.
//
// Name, Face and Measure may be called from multiple goroutines. The faces
// returned by Face are shared and are not themselves safe for concurrent
// use; a face evicted from the per-size cache is closed, so hold one only
// for the duration of a draw. Use NewFace for a face owned by the caller.
type Font struct {
	name   string
	sfnt   *opentype.Font
	shaped *gtfont.Font
	faces  *cache.Cache[float64, font.Face]

	shaperMu sync.Mutex
	shaper   shaping.HarfbuzzShaper
}

// ParseFont parses font data. The slice is not retained.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("resource: parse font: %w", err)
	}
	gt, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("resource: parse font for shaping: %w", err)
	}

	f := &Font{
		sfnt:   sf,
		shaped: gt.Font,
		faces: cache.New[float64, font.Face](maxFaces, func(_ float64, face font.Face) {
			_ = face.Close()
		}),
	}
	if name, err := sf.Name(nil, sfnt.NameIDFamily); err == nil {
		f.name = name
	}
	return f, nil
}

// LoadFont reads and parses a font file. It has the Loader signature.
func LoadFont(path string) (*Font, error) {
	// #nosec G304 -- font path is provided by the application
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("resource: read font: %w", err)
	}
	return ParseFont(data)
}

// GoRegular returns the Go Regular font bundled with golang.org/x/image.
func GoRegular() (*Font, error) {
	return ParseFont(goregular.TTF)
}

// Name returns the font family name, or "" if the font has none.
func (f *Font) Name() string {
	return f.name
}

// Face returns a face rendering at size points (72 DPI, so 1pt = 1px).
// Faces are cached per size; callers must not Close them.
func (f *Font) Face(size float64) (font.Face, error) {
	return f.faces.GetOrCreate(size, func() (font.Face, error) {
		return f.NewFace(size)
	})
}

// NewFace returns an uncached face at size points. The caller owns it and
// must Close it when done.
func (f *Font) NewFace(size float64) (font.Face, error) {
	face, err := opentype.NewFace(f.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("resource: create face: %w", err)
	}
	return face, nil
}

// Measure returns the shaped horizontal advance of text at size, in pixels.
func (f *Font) Measure(text string, size float64) float64 {
	if text == "" {
		return 0
	}
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(f.shaped),
		Size:      fixed.Int26_6(size * 64),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	}

	f.shaperMu.Lock()
	out := f.shaper.Shape(input)
	f.shaperMu.Unlock()

	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	return float64(adv) / 64
}

// Close releases the cached faces.
func (f *Font) Close() error {
	f.faces.Clear()
	return nil
}

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
