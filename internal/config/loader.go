package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "crawler.yaml"

// SourceEmbedded is the source reported when no config file was found.
const SourceEmbedded = "embedded"

// userHomeDir is swapped out in tests.
var userHomeDir = os.UserHomeDir

// LoadCrawler loads the crawler session configuration and reports where it
// came from. Files are overlaid on the built-in defaults, so a file may set
// only the fields it cares about.
// Search order: customPath -> ~/.crawler/configs/crawler.yaml -> ./configs/crawler.yaml -> embedded default
func LoadCrawler(customPath string) (CrawlerConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CrawlerConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CrawlerConfig{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Discovered files are best-effort: unreadable or invalid ones are skipped.
	for _, path := range []string{userConfigPath(), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultCrawlerYAML)
	if err != nil {
		return DefaultCrawlerConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (CrawlerConfig, error) {
	cfg := DefaultCrawlerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CrawlerConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return CrawlerConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg CrawlerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := userHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crawler", "configs", fileName)
}
