// trex is a terminal Dino runner where the T-Rex can jump over obstacles or
// dive under the ground line to dodge them.
//
// Usage:
//
//	trex play               - Play in this terminal
//	trex serve              - Start SSH server for remote play
//	trex config             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a YAML or TOML config file
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/topsy-trex/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trex",
	Short: "Topsy Turvey T-Rex - a runner that goes both ways",
	Long: `Topsy Turvey T-Rex is a terminal Dino runner. Obstacles slide in
from the right; jump above the ground line or dive below it to dodge them.
Survive as long as you can and beat your best time.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  trex play
  trex play --difficulty hard
  trex serve --ssh :2222
  trex config > ~/.trex/configs/trex.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the runner config from --config and --difficulty.
func loadGameConfig() (config.TrexConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TrexConfig{}, err
	}

	cfg, err := config.LoadTrex(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	config.ApplyTrexPreset(&cfg, preset)
	return cfg, nil
}

// newLogger builds a logger that writes to --log-file, or to fallback when
// no file is given. The returned close func must be called on exit.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
