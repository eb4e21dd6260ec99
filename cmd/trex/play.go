package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/topsy-trex/internal/core"
	"github.com/vovakirdan/topsy-trex/internal/games/trex"
	"github.com/vovakirdan/topsy-trex/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal. The game starts paused.

Controls:
  Space/Up/W   - Jump above the ground line
  Down/S       - Dive below the ground line
  R/Enter      - Start a run (while paused)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower obstacles, longer gaps
  normal - Configured values
  hard   - Faster obstacles, shorter gaps

Examples:
  trex play
  trex play --difficulty easy
  trex play --config ./my-trex.toml
  trex play --seed 42 --log-file trex.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs are dropped unless --log-file is set
	logger, closeLog, err := newLogger("trex", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := trex.New(gameCfg, logger)
	logger.Info("starting game", "difficulty", flagDifficulty, "fps", flagFPS, "seed", flagSeed)

	if err := tui.Run(game, cfg, gameCfg.Clock.MaxDelta); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
