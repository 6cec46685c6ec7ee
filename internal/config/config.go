// Package config provides YAML-based session configuration loading for the
// crawler.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// CrawlerConfig contains the session constants of the dungeon crawler.
// A session reads it once at start and never changes it afterwards.
type CrawlerConfig struct {
	Dungeon DungeonConfig `yaml:"dungeon"`
	Player  PlayerConfig  `yaml:"player"`
	Walls   WallConfig    `yaml:"walls"`
}

// DungeonConfig defines the playfield bounds.
type DungeonConfig struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
}

// PlayerConfig defines the player footprint and step length.
type PlayerConfig struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
	Speed  uint32 `yaml:"speed"` // Cells per key press, at least 1
}

// WallConfig defines the obstacle footprint and how many spawn per batch.
type WallConfig struct {
	Width     uint32 `yaml:"width"`
	Height    uint32 `yaml:"height"`
	BatchSize uint32 `yaml:"batch_size"`
}

// Validate checks that the constants describe a playable session.
func (c CrawlerConfig) Validate() error {
	positive := []struct {
		name  string
		value uint32
	}{
		{"dungeon.width", c.Dungeon.Width},
		{"dungeon.height", c.Dungeon.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"walls.width", c.Walls.Width},
		{"walls.height", c.Walls.Height},
		{"walls.batch_size", c.Walls.BatchSize},
	}
	for _, f := range positive {
		if f.value == 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalid, f.name)
		}
	}

	// Wall positions are drawn modulo (dungeon - wall), which must not be zero.
	if c.Walls.Width >= c.Dungeon.Width {
		return fmt.Errorf("%w: walls.width %d must be smaller than dungeon.width %d",
			ErrInvalid, c.Walls.Width, c.Dungeon.Width)
	}
	if c.Walls.Height >= c.Dungeon.Height {
		return fmt.Errorf("%w: walls.height %d must be smaller than dungeon.height %d",
			ErrInvalid, c.Walls.Height, c.Dungeon.Height)
	}
	if c.Player.Width > c.Dungeon.Width || c.Player.Height > c.Dungeon.Height {
		return fmt.Errorf("%w: player %dx%d does not fit dungeon %dx%d",
			ErrInvalid, c.Player.Width, c.Player.Height, c.Dungeon.Width, c.Dungeon.Height)
	}
	return nil
}
