package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crawler/internal/core"
	"github.com/vovakirdan/tui-crawler/internal/games/crawler"
	"github.com/vovakirdan/tui-crawler/internal/platform/tui"
	"github.com/vovakirdan/tui-crawler/internal/registry"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing in the terminal. The game defaults to "crawler".

Controls:
  h j k l    - West, south, north, east
  y u b n    - North-west, north-east, south-west, south-east
  P          - Pause
  R          - New dungeon
  ?          - Help
  Q/Ctrl+C   - Quit

Logs are written only with --log-file, since the game owns the terminal.

Examples:
  crawler play
  crawler play --seed 7
  crawler play --log-file crawler.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := crawler.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'crawler list' to see available games", gameID)
	}

	playLogger, closeLog, err := fileLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	stop := startTelemetry(cmd.Context())
	defer stop()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if !cmd.Flags().Changed("seed") {
		seed = uint32(time.Now().UnixNano())
	}

	crawler.SetSessionConfig(cfg,
		crawler.WithLogger(playLogger),
		crawler.WithTracer(tracer()),
	)
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	rc := core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: seed}
	return tui.Run(game, rc, tui.WithLogger(playLogger))
}

// fileLogger opens path for logging, or discards logs when path is empty.
func fileLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "crawler",
		Level:           logger.GetLevel(),
	})
	return l, func() { _ = f.Close() }, nil
}
