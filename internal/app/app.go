//go:build ebiten

package app

import (
	"image/color"
	"time"

	"forest-ca/internal/core"
	"forest-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Paletted is implemented by sims that supply their own color table.
type Paletted interface {
	Palette() []color.RGBA
}

// Game adapts a scheduled simulation to the ebiten.Game interface. The
// viewer only reads the sim's display buffer and issues scheduler commands;
// it never touches simulation state directly.
type Game struct {
	sim     core.Sim
	sched   *core.Scheduler
	painter *render.GridPainter
	palette []color.RGBA

	scale int
	seed  int64
	last  time.Time
}

// New constructs a Game for the provided simulation and scheduler.
func New(sim core.Sim, sched *core.Scheduler, scale int, seed int64) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		sched:   sched,
		painter: render.NewGridPainter(size.W, size.H),
		scale:   scale,
		seed:    seed,
	}
	if p, ok := sim.(Paletted); ok {
		g.palette = p.Palette()
	}
	return g
}

// Update handles input and feeds elapsed wall-clock time to the scheduler.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.sched.Mode() == core.ModeRunning {
			g.sched.Pause()
		} else {
			g.sched.Unpause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sched.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sched.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.sched.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.sched.SetInterval(g.sched.Interval() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		if d := g.sched.Interval() / 2; d > 0 {
			g.sched.SetInterval(d)
		}
	}

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	g.sched.Update(now.Sub(g.last))
	g.last = now
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
