package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to "blocks".

Controls:
  Left/H, Right/L  - Move
  Down/J           - Soft drop
  Up/X, Z          - Rotate clockwise, counter-clockwise
  Space            - Hard drop
  C                - Hold
  P/Esc            - Pause
  R                - Restart (after game over)
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower gravity at every level
  normal - Gravity table as configured
  hard   - Faster gravity at every level
  fixed  - No progression, level 1 speed for the whole game

Examples:
  blocks play
  blocks play --difficulty easy
  blocks play --config ./my-blocks.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "blocks"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'blocks list' to see available games", gameID)
	}

	// Fail before taking over the terminal
	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	cfg, source, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := openGameLogger()
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close

	logger.Debug("config loaded", "source", source, "difficulty", flagDifficulty,
		"field", fmt.Sprintf("%dx%d", cfg.Field.Width, cfg.Field.Height))

	blocks.SetConfigPath(flagConfig)
	blocks.SetDifficultyPreset(flagDifficulty)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	session, err := tui.Run(game, rc, logger)
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	newLogger(os.Stderr).Info("session ended",
		"score", session.Final.Score,
		"level", session.Final.Level,
		"best", session.Best,
		"games", session.Games,
		"duration", session.Duration.Round(time.Second),
	)
	return nil
}
