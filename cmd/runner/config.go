package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it and pass it back with --config, or place it at
~/.runner/runner.yaml to change the defaults:

  runner config > ~/.runner/runner.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), string(config.DefaultYAML()))
	},
}
