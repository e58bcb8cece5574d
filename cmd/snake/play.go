package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-snake/internal/audio"
	"github.com/vovakirdan/fruit-snake/internal/games/snake"
	"github.com/vovakirdan/fruit-snake/internal/platform/tui"
	"github.com/vovakirdan/fruit-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start playing right away.

Controls:
  Arrows/WASD/hjkl - Steer
  Mouse drag       - Swipe to steer
  P/Space          - Pause
  R                - Restart
  Esc/Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow start, speeds up every level
  normal - Speed from the config file
  hard   - Fast start, speeds up every level
  fixed  - No speedup; levels still count

Examples:
  snake play
  snake play --difficulty easy
  snake play --seed 42 --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	// Session scoreboard; the game still works without it
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open scoreboard", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := audio.New(cfg.Audio, logger)
	defer player.Close()

	rc := runtimeConfig()
	game := snake.New(cfg, rc.Seed)

	_, err = tui.Run(game, rc, tui.Options{
		Store:      store,
		Player:     player,
		Logger:     logger,
		Difficulty: presetName(preset),
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
