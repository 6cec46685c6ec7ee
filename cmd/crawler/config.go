package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crawler/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the session configuration as YAML, prefixed with the file it
was loaded from. Search order:
  --config path
  ~/.crawler/configs/crawler.yaml
  ./configs/crawler.yaml
  built-in defaults

The output is a complete config file and can be saved as a starting point.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", cfgSource)
	_, err = out.Write(data)
	return err
}
