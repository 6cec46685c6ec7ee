// crawler is a turn-based dungeon crawler for the terminal.
//
// Usage:
//
//	crawler play                 - Play interactively
//	crawler sim --keys hjkl      - Replay keys headlessly and print the result
//	crawler list                 - List available games
//	crawler config               - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - PRNG seed (play picks one from the clock if unset)
//	--config <path>      - Custom session config YAML
//	--log-level <level>  - debug, info, warn or error (env CRAWLER_LOG_LEVEL)
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crawler/internal/config"
	"github.com/vovakirdan/tui-crawler/internal/telemetry"

	// Import games to register them
	_ "github.com/vovakirdan/tui-crawler/internal/games/crawler"
)

const logLevelEnv = "CRAWLER_LOG_LEVEL"

var (
	// Global flags
	flagSeed     uint32
	flagConfig   string
	flagLogLevel string

	// Set up by the root command before any subcommand runs.
	logger    = log.NewWithOptions(os.Stderr, log.Options{Prefix: "crawler"})
	cfg       config.CrawlerConfig
	cfgSource string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crawler",
	Short: "Dungeon Crawler - clear walls one step at a time",
	Long: `Dungeon Crawler is a deterministic, turn-based grid game. Move the
player with the roguelike keys and clear every wall of a batch to spawn the
next generation.

Available commands:
  play     - Play in the terminal
  sim      - Replay a key sequence without a terminal
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  crawler play
  crawler play --seed 42
  crawler sim --keys yyyyhhhh --seed 0
  crawler config --config ./my-crawler.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Uint32Var(&flagSeed, "seed", 0, "PRNG seed")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom session config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default info)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads .env, configures the logger and loads the session config.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not load .env", "err", err)
	}

	level, err := resolveLogLevel(cmd)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	logger.SetReportTimestamp(true)

	cfg, cfgSource, err = config.LoadCrawler(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", cfgSource)
	return nil
}

// resolveLogLevel prefers the flag over the environment.
func resolveLogLevel(cmd *cobra.Command) (log.Level, error) {
	name := flagLogLevel
	if !cmd.Flags().Changed("log-level") {
		name = os.Getenv(logLevelEnv)
	}
	if name == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(name)
}

// startTelemetry installs the OTLP exporter when one is configured. A
// failure is not fatal: the game runs untraced.
func startTelemetry(ctx context.Context) (stop func()) {
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, running without traces", "err", err)
		return func() {}
	}
	return func() {
		if err := shutdown(ctx); err != nil {
			logger.Warn("telemetry shutdown failed", "err", err)
		}
	}
}
