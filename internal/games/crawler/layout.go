// Package crawler implements a turn-based dungeon crawler micro-game.
// The player moves one step per key press and clears wall obstacles by
// touching them; a cleared batch of walls is replaced by the next generation
// drawn from a deterministic PRNG.
package crawler

import (
	"github.com/vovakirdan/tui-crawler/internal/config"
	"github.com/vovakirdan/tui-crawler/internal/core"
)

// Position is the top-left corner of an entity on the dungeon grid.
type Position = core.Point

// Layout holds the session constants in the form the simulation uses.
type Layout struct {
	Dungeon   core.Size
	Player    core.Size
	Wall      core.Size
	Speed     uint32
	BatchSize uint64
}

// LayoutFrom converts a validated configuration into a Layout.
func LayoutFrom(cfg config.CrawlerConfig) Layout {
	return Layout{
		Dungeon:   core.Size{W: cfg.Dungeon.Width, H: cfg.Dungeon.Height},
		Player:    core.Size{W: cfg.Player.Width, H: cfg.Player.Height},
		Wall:      core.Size{W: cfg.Walls.Width, H: cfg.Walls.Height},
		Speed:     cfg.Player.Speed,
		BatchSize: uint64(cfg.Walls.BatchSize),
	}
}

// DefaultLayout returns the layout of the built-in configuration.
func DefaultLayout() Layout {
	return LayoutFrom(config.DefaultCrawlerConfig())
}

// PlayerMax is the largest valid player position.
func (l Layout) PlayerMax() Position {
	return Position{
		X: core.SatSub(l.Dungeon.W, l.Player.W),
		Y: core.SatSub(l.Dungeon.H, l.Player.H),
	}
}

// Start is the centered player position a session begins at.
func (l Layout) Start() Position {
	limit := l.PlayerMax()
	return Position{X: limit.X / 2, Y: limit.Y / 2}
}

// wallRange is the modulus wall coordinates are drawn with.
func (l Layout) wallRange() core.Size {
	return core.Size{
		W: l.Dungeon.W - l.Wall.W,
		H: l.Dungeon.H - l.Wall.H,
	}
}
