package crawler

import (
	"context"
	"fmt"

	"github.com/vovakirdan/tui-crawler/internal/config"
	"github.com/vovakirdan/tui-crawler/internal/core"
	"github.com/vovakirdan/tui-crawler/internal/registry"
)

// GameID is the registry identifier of the crawler.
const GameID = "crawler"

// Package-level session settings picked up by games the registry creates.
var (
	sessionConfig  = config.DefaultCrawlerConfig()
	sessionOptions []Option
)

// SetSessionConfig sets the configuration and options used by every Game
// created afterwards. cfg must already be validated.
func SetSessionConfig(cfg config.CrawlerConfig, opts ...Option) {
	sessionConfig = cfg
	sessionOptions = opts
}

// Game adapts a Session to the registry.Game interface.
type Game struct {
	cfg     config.CrawlerConfig
	opts    []Option
	session *Session
	paused  bool
	last    Outcome

	// viewDirty covers changes outside the session cells, like pausing.
	viewDirty bool
}

// New creates a crawler game with the given configuration.
func New(cfg config.CrawlerConfig, opts ...Option) *Game {
	return &Game{cfg: cfg, opts: opts}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New(sessionConfig, sessionOptions...)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Dungeon Crawler" }

// Reset starts a new session from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.session = NewSession(g.cfg, cfg.Seed, g.opts...)
	g.paused = false
	g.last = Outcome{}
	g.viewDirty = true
}

// Session exposes the running session.
func (g *Game) Session() *Session { return g.session }

// Last returns the outcome of the most recent move.
func (g *Game) Last() Outcome { return g.last }

// Step applies one input frame. A frame carries at most one move; Pause
// toggles input freezing and Restart begins a new session seeded from the
// live PRNG state, so every restart deals a fresh dungeon.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.viewDirty = true
		return core.StepResult{State: g.State(), Changed: true}
	}

	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{Seed: g.session.Seed()})
		return core.StepResult{State: g.State(), Changed: true}
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.last = g.session.Move(context.Background(), FromAction(in.Move()))
	return core.StepResult{State: g.State(), Changed: g.last.Moved}
}

// State returns the current game state. The crawler never ends.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  int(g.session.Score()),
		Paused: g.paused,
	}
}

// Status describes the last move when it is worth announcing.
func (g *Game) Status() string {
	if g.last.Respawned {
		return fmt.Sprintf("Batch cleared! Generation %d", g.last.Generation)
	}
	return ""
}

// Dirty reports whether the next Render would differ from the last one.
func (g *Game) Dirty() bool {
	return g.session == nil || g.viewDirty || g.session.Dirty()
}

// ClearDirty marks the current state as rendered.
func (g *Game) ClearDirty() {
	g.viewDirty = false
	if g.session != nil {
		g.session.ClearDirty()
	}
}

// Render draws the HUD on the first row and the dungeon below it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	l := g.session.Layout()
	hud := fmt.Sprintf("Score: %d  Gen: %d  Walls: %d  Seed: %d",
		g.session.Score(), g.session.Generation(), len(g.session.Walls()), g.session.InitialSeed())
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)

	view, ok := fitView(l.Dungeon, dst.Width(), dst.Height()-1)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}
	view.y++ // below the HUD

	dst.DrawBox(view.x, view.y, view.w+2, view.h+2, core.ColorBorder)

	for _, w := range g.session.Walls() {
		view.fill(dst, core.RectAt(w.Pos, l.Wall), '#', core.ColorWall)
	}
	view.fill(dst, core.RectAt(g.session.Player(), l.Player), '@', core.ColorPlayer)

	if g.paused {
		dst.DrawTextCentered(view.y+view.h/2+1, "PAUSED")
	}
}

// viewport maps dungeon cells onto a screen area. When the screen is
// smaller than the dungeon, each screen cell covers scaleX by scaleY
// dungeon cells.
type viewport struct {
	x, y           int // top-left of the border box
	w, h           int // inner size in screen cells
	scaleX, scaleY uint32
}

// fitView centers a bordered dungeon in a width by height area.
func fitView(d core.Size, width, height int) (viewport, bool) {
	innerW, innerH := width-2, height-2
	if innerW < 1 || innerH < 1 || d.W == 0 || d.H == 0 {
		return viewport{}, false
	}

	sx := ceilDiv(d.W, uint32(innerW))
	sy := ceilDiv(d.H, uint32(innerH))
	w := int(ceilDiv(d.W, sx))
	h := int(ceilDiv(d.H, sy))

	return viewport{
		x:      (width - (w + 2)) / 2,
		y:      (height - (h + 2)) / 2,
		w:      w,
		h:      h,
		scaleX: sx,
		scaleY: sy,
	}, true
}

// fill paints every screen cell covered by r.
func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	if r.W == 0 || r.H == 0 {
		return
	}
	x0, y0 := int(r.X/v.scaleX), int(r.Y/v.scaleY)
	x1, y1 := int((r.X+r.W-1)/v.scaleX), int((r.Y+r.H-1)/v.scaleY)
	for y := y0; y <= y1 && y < v.h; y++ {
		for x := x0; x <= x1 && x < v.w; x++ {
			dst.SetColored(v.x+1+x, v.y+1+y, ch, c)
		}
	}
}

func ceilDiv(a, b uint32) uint32 {
	if b == 0 {
		return 0
	}
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
