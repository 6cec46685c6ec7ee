package config

import (
	_ "embed"
)

//go:embed defaults/crawler.yaml
var defaultCrawlerYAML []byte

// DefaultCrawlerConfig returns the built-in session constants.
func DefaultCrawlerConfig() CrawlerConfig {
	return CrawlerConfig{
		Dungeon: DungeonConfig{
			Width:  60,
			Height: 40,
		},
		Player: PlayerConfig{
			Width:  2,
			Height: 2,
			Speed:  1,
		},
		Walls: WallConfig{
			Width:     2,
			Height:    2,
			BatchSize: 20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCrawlerYAML
}
