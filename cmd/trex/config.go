package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/topsy-trex/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in default configuration as YAML.

Save it to ~/.trex/configs/trex.yaml or ./configs/trex.yaml and edit it to
change the defaults; fields you remove keep their built-in values.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
