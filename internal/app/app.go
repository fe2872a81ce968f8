//go:build ebiten

package app

import (
	"image/color"
	"time"

	"eca/internal/core"
	"eca/internal/elementary"
	"eca/internal/render"
	"eca/internal/ui"
	"eca/pkg/rng"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts the automaton engine to the ebiten.Game interface. Rows of the
// finished grid are revealed progressively at the configured rate.
type Game struct {
	engine  *elementary.Engine
	cfg     elementary.Config
	seed    int64
	grid    core.Grid
	lastErr error

	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	step    *core.FixedStep
	opts    render.Options

	canvas   int
	reveal   int
	paused   bool
	tickOnce bool
	dirty    bool
}

// New constructs a Game and computes its first grid.
func New(engine *elementary.Engine, viewer *Config) (*Game, error) {
	cfg, err := viewer.EngineConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(engine.Limits()); err != nil {
		return nil, err
	}
	canvas := viewer.Canvas
	if canvas <= 0 {
		canvas = 720
	}
	opts := render.DefaultOptions(canvas)
	opts.Background = color.RGBA{R: 32, G: 32, B: 36, A: 255}
	g := &Game{
		engine:  engine,
		cfg:     cfg,
		seed:    viewer.RandomSeed,
		painter: render.NewGridPainter(canvas, canvas),
		hud:     ui.NewHUD(hudWidth),
		overlay: ui.NewOverlay(),
		step:    core.NewFixedStep(viewer.TPS),
		opts:    opts,
		canvas:  canvas,
	}
	g.rebuild()
	return g, nil
}

// rebuild recomputes the grid for the current configuration. A failed run
// keeps the previous grid and surfaces the error on the HUD.
func (g *Game) rebuild() {
	grid, err := g.engine.Run(g.cfg, rng.New(g.seed))
	g.lastErr = err
	if err == nil {
		g.grid = grid
	}
	g.restart()
}

func (g *Game) restart() {
	g.reveal = 1
	g.tickOnce = false
	g.step.Reset()
	g.dirty = true
}

// Update handles per-frame logic and reveals rows.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.cfg.Rule = (g.cfg.Rule + 1) % 256
		g.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.cfg.Rule = (g.cfg.Rule + 255) % 256
		g.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		if g.cfg.Boundary == core.Toric {
			g.cfg.Boundary = core.Mirror
		} else {
			g.cfg.Boundary = core.Toric
		}
		g.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if g.cfg.Seed == core.Random {
			g.cfg.Seed = core.SingleSeed
		} else {
			g.cfg.Seed = core.Random
		}
		g.rebuild()
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	rows := g.grid.Rows()
	advance := 0
	if !g.paused {
		advance = g.step.Steps(rows)
	}
	if g.tickOnce {
		advance++
		g.tickOnce = false
	}
	if advance > 0 && g.reveal < rows {
		g.reveal = min(rows, g.reveal+advance)
		g.dirty = true
	}
	return nil
}

// Draw renders the revealed rows, the HUD and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		opts := g.opts
		opts.Reveal = g.reveal
		g.painter.Paint(g.grid, opts)
		g.dirty = false
	}
	g.painter.Blit(screen, 0, 0)

	g.hud.Draw(screen, g.status(), g.canvas, g.canvas)

	if g.overlay != nil {
		size := g.grid.Size()
		layout := render.NewLayout(g.canvas, g.canvas, size.H, size.W)
		cursor := -1
		if g.reveal < size.H {
			cursor = layout.CellRect(g.reveal, 0).Min.Y
		}
		b := layout.Bounds()
		g.overlay.Draw(screen, b.Min.X, b.Max.X, cursor)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas + g.hud.Width(), g.canvas
}

// WindowSize returns the preferred window dimensions.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}

func (g *Game) status() ui.Status {
	s := ui.Status{
		Rule:       g.cfg.Rule,
		Boundary:   g.cfg.Boundary.String(),
		SeedMode:   g.cfg.Seed.String(),
		RandomSeed: g.seed,
		Revealed:   g.reveal,
		Rows:       g.grid.Rows(),
		Width:      g.grid.Width(),
		Paused:     g.paused,
	}
	if g.lastErr != nil {
		s.Err = g.lastErr.Error()
	}
	return s
}
