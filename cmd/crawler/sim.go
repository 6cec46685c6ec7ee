package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-crawler/internal/games/crawler"
	"github.com/vovakirdan/tui-crawler/internal/telemetry"
)

var (
	flagKeys  string
	flagTrace bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Replay a key sequence headlessly",
	Long: `Runs a session without a terminal, pressing each character of --keys
in order, then prints the final snapshot as YAML. Characters outside the
movement keys are counted as presses but change nothing.

With --trace every move is exported as a span to the OTLP endpoint in
OTEL_EXPORTER_OTLP_ENDPOINT.

Examples:
  crawler sim --keys hhhh
  crawler sim --keys yubnyubn --seed 42
  crawler sim --keys "$(cat moves.txt)" --trace`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagKeys, "keys", "", "Key presses to replay")
	simCmd.Flags().BoolVar(&flagTrace, "trace", false, "Export a span per move")
}

// simReport is the YAML document sim prints.
type simReport struct {
	Session  string           `yaml:"session"`
	Seed     uint32           `yaml:"initial_seed"`
	Snapshot crawler.Snapshot `yaml:"snapshot"`
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagKeys == "" {
		return errors.New("sim: --keys is required")
	}

	ctx := cmd.Context()
	opts := []crawler.Option{crawler.WithLogger(logger)}
	if flagTrace {
		if !telemetry.Enabled() {
			logger.Warn("tracing requested without an endpoint", "env", telemetry.EndpointEnv)
		}
		stop := startTelemetry(ctx)
		defer stop()
		opts = append(opts, crawler.WithTracer(tracer()))
	}

	s := crawler.NewSession(cfg, flagSeed, opts...)
	for _, k := range flagKeys {
		out := s.Press(ctx, k)
		if out.Respawned {
			logger.Info("batch cleared", "generation", out.Generation, "score", s.Score())
		}
	}

	data, err := yaml.Marshal(simReport{
		Session:  s.ID().String(),
		Seed:     s.InitialSeed(),
		Snapshot: s.Snapshot(),
	})
	if err != nil {
		return fmt.Errorf("sim: encode snapshot: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func tracer() trace.Tracer {
	return telemetry.Tracer("crawler")
}
