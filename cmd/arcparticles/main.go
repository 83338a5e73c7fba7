// Command arcparticles is an interactive particle demo.
//
// Hold Z, X or C to emit different bursts at the mouse cursor. All
// particles share one vertex buffer and are drawn with a single batch.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gogpu/arc"
	"github.com/gogpu/arc/integration/ebitenarc"
	"github.com/gogpu/arc/internal/particles"
	"github.com/gogpu/arc/random"
)

const tps = 60

// emitter fires a burst while its key is held, at most once per cooldown.
type emitter struct {
	key      ebiten.Key
	cooldown time.Duration
	timer    time.Duration
	fire     func(g *game, at arc.Vec2)
}

type game struct {
	width, height int
	sys           *particles.System
	rng           *random.Generator
	batch         ebitenarc.Batch
	emitters      []*emitter
	spiral        float32
}

func newGame(width, height, capacity int) *game {
	g := &game{
		width:  width,
		height: height,
		sys:    particles.New(capacity),
		rng:    random.New(),
	}
	g.emitters = []*emitter{
		{key: ebiten.KeyZ, cooldown: 50 * time.Millisecond, fire: (*game).spiralBurst},
		{key: ebiten.KeyX, cooldown: 500 * time.Millisecond, fire: (*game).ringBurst},
		{key: ebiten.KeyC, cooldown: 300 * time.Millisecond, fire: (*game).starBurst},
	}
	return g
}

// spiralBurst emits ten green slivers, turning the start angle each time.
func (g *game) spiralBurst(at arc.Vec2) {
	g.sys.Burst(particles.Info{
		Position: at,
		Size:     arc.V(30, 10),
		Color:    arc.Green,
		Lifespan: 3 * time.Second,
	}, 10, g.spiral, 200, 800)
	g.spiral += arc.Degrees(0.2)
}

// ringBurst emits a dense yellow ring at a random angle.
func (g *game) ringBurst(at arc.Vec2) {
	g.sys.Burst(particles.Info{
		Position: at,
		Size:     arc.V(30, 30),
		Color:    arc.RGB(255, 255, 0),
		Lifespan: 3 * time.Second,
	}, 60, g.rng.Float32(0, 360), 300, 400)
}

// starBurst emits twenty cyan spokes of five particles at rising speeds.
func (g *game) starBurst(at arc.Vec2) {
	start := g.rng.Float32(0, 360)
	info := particles.Info{
		Position: at,
		Size:     arc.V(10, 50),
		Color:    arc.RGB(0, 255, 255),
		Lifespan: 3 * time.Second,
	}
	for speed := float32(100); speed <= 500; speed += 100 {
		g.sys.Burst(info, 20, start, speed, 400)
	}
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	dt := time.Second / tps
	mx, my := ebiten.CursorPosition()
	at := arc.V(float32(mx), float32(my))

	for _, e := range g.emitters {
		e.timer += dt
		if ebiten.IsKeyPressed(e.key) && e.timer > e.cooldown {
			e.fire(g, at)
			e.timer = 0
		}
	}
	g.sys.Update(dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.batch.Draw(screen, nil, g.sys.Vertices())
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Z, X, C: emit   alive: %d/%d   FPS: %.0f",
		g.sys.Alive(), g.sys.Len(), ebiten.ActualFPS()))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	var (
		width    = flag.Int("width", 1024, "window width")
		height   = flag.Int("height", 720, "window height")
		capacity = flag.Int("particles", 3000, "particle capacity")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	arc.SetLogger(logger)

	ebiten.SetWindowTitle("arc particles")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(newGame(*width, *height, *capacity)); err != nil {
		logger.Error("arcparticles failed", slog.Any("err", err))
		os.Exit(1)
	}
}
