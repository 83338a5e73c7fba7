// Command arcdemo renders a few arc vertex buffers to PNG without a window.
//
// It draws a gradient background, a grid of rotated tiles, a particle
// burst and a row of textured quads cut from a generated atlas, then
// writes the frame and the atlas itself.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/arc"
	"github.com/gogpu/arc/atlas"
	"github.com/gogpu/arc/internal/particles"
	"github.com/gogpu/arc/random"
	"github.com/gogpu/arc/render"
	"github.com/gogpu/arc/resource"
)

func main() {
	var (
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		output   = flag.String("output", "demo.png", "output file")
		atlasOut = flag.String("atlas", "atlas.png", "atlas output file (empty to skip)")
		seed     = flag.Uint64("seed", 0, "random seed (0 picks one from the OS)")
		frames   = flag.Int("frames", 30, "particle simulation steps at 60 Hz")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	arc.SetLogger(logger)

	if err := run(*width, *height, *output, *atlasOut, *seed, *frames); err != nil {
		logger.Error("arcdemo failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(width, height int, output, atlasOut string, seed uint64, frames int) error {
	rng := random.New()
	if seed != 0 {
		rng = random.NewSeeded(seed)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	r := render.NewRasterizer()

	r.DrawQuads(img, background(width, height))
	r.DrawQuads(img, tiles(float32(width)))
	r.DrawQuads(img, burst(rng, arc.V(float32(width)*0.3, float32(height)*0.65), frames))

	a, err := buildAtlas(rng)
	if err != nil {
		return err
	}
	r.DrawTextured(img, labels(a, float32(width)*0.55, float32(height)*0.6), a.Image())

	if err := savePNG(output, img); err != nil {
		return err
	}
	slog.Info("frame written", slog.String("path", output), slog.Int("width", width), slog.Int("height", height))

	if atlasOut != "" {
		if err := a.SavePNG(atlasOut); err != nil {
			return err
		}
		slog.Info("atlas written", slog.String("path", atlasOut))
	}
	return nil
}

// background is a vertical gradient of horizontal bands.
func background(w, h int) []arc.Vertex {
	const bands = 32
	top, bottom := arc.RGB(26, 51, 102), arc.RGB(128, 128, 153)
	v := make([]arc.Vertex, bands*arc.QuadVertices)
	bh := float32(h) / bands
	for i := 0; i < bands; i++ {
		arc.MakeRect(v, i, arc.R(0, float32(i)*bh, float32(w), bh+1))
		arc.SetQuadColor(v, i, arc.CosineLerpColor(top, bottom, float32(i)/(bands-1)))
	}
	return v
}

// tiles is a 6x3 grid whose quads are rotated and tinted by position.
func tiles(width float32) []arc.Vertex {
	g := arc.GridSpec{
		Cols:     6,
		Rows:     3,
		CellSize: arc.V(48, 48),
		Position: arc.V(width/2-(6*48+5*16)/2, 40),
		Padding:  arc.V(16, 16),
	}
	v := make([]arc.Vertex, g.Cols*g.Rows*arc.QuadVertices)
	n := arc.MakeGrid(v, 0, g)
	for i := 0; i < n; i++ {
		t := float32(i) / float32(n-1)
		arc.RotateQuad(v, i, 90*t)
		arc.SetQuadColor(v, i, arc.CubicBezierColor(arc.Red, arc.RGB(255, 200, 0), arc.Green, arc.Blue, t))
	}
	// Shear the last row to show the non-rigid transforms.
	for i := n - g.Cols; i < n; i++ {
		arc.ShearQuad(v, i, arc.V(0.3, 0))
	}
	return v
}

// burst simulates two particle bursts for frames steps.
func burst(rng *random.Generator, at arc.Vec2, frames int) []arc.Vertex {
	sys := particles.New(400)
	info := particles.Info{
		Position: at,
		Size:     arc.V(14, 4),
		Color:    arc.RGB(255, 230, 60),
		Lifespan: 3 * time.Second,
	}
	sys.Burst(info, 60, rng.Float32(0, 360), 120, 60)

	info.Size = arc.V(4, 16)
	info.Color = arc.RGB(0, 255, 255)
	for i := 0; i < 80; i++ {
		p := rng.PointInCircle(0, 40, 0, 360)
		info.Position = at.Add(p)
		info.Velocity = arc.UnitVector(rng.Float32(0, 360)).Mul(rng.Float32(20, 90))
		info.Acceleration = arc.V(0, 30)
		info.RotationSpeed = rng.Float32(-180, 180)
		sys.Emit(info)
	}

	for i := 0; i < frames; i++ {
		sys.Update(time.Second / 60)
	}
	slog.Debug("particles simulated", slog.Int("alive", sys.Alive()), slog.Int("frames", frames))
	return sys.Vertices()
}

// buildAtlas fills a 4x2 atlas with labelled random colour swatches.
func buildAtlas(rng *random.Generator) (*atlas.Atlas, error) {
	a, err := atlas.New(image.Pt(4, 2), image.Pt(64, 64))
	if err != nil {
		return nil, err
	}
	font, err := resource.GoRegular()
	if err != nil {
		return nil, err
	}
	defer font.Close()
	face, err := font.Face(28)
	if err != nil {
		return nil, err
	}

	for i := 0; i < a.Len(); i++ {
		swatch := image.NewUniform(rng.Color().NRGBA())
		if err := a.EditCell(i, swatch, image.Rect(0, 0, 1, 1)); err != nil {
			return nil, err
		}
		if err := a.DrawLabel(i, face, fmt.Sprint(i), color.White); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// labels lays out one textured quad per atlas cell, each slightly rotated.
func labels(a *atlas.Atlas, x, y float32) []arc.Vertex {
	v := make([]arc.Vertex, a.Len()*arc.QuadVertices)
	for i := 0; i < a.Len(); i++ {
		arc.MakeQuadWith(v, i, arc.QuadSpec{
			Center:  arc.V(x+float32(i%4)*72, y+float32(i/4)*72),
			Size:    arc.V(64, 64),
			Angle:   arc.Lerp[float32](-15, 15, float32(i)/float32(a.Len()-1)),
			Color:   arc.White,
			TexRect: a.TexRect(i),
		})
	}
	return v
}

func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
