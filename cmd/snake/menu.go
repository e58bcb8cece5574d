package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-snake/internal/audio"
	"github.com/vovakirdan/fruit-snake/internal/config"
	"github.com/vovakirdan/fruit-snake/internal/games/snake"
	"github.com/vovakirdan/fruit-snake/internal/platform/tui"
	"github.com/vovakirdan/fruit-snake/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play.
After a round you return to the menu; Tab shows the scores of this session.
Scores are kept in memory only and vanish when you quit.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Session scores
  Q            - Quit

Examples:
  snake menu
  snake menu --mute`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	base, preset, err := loadGameConfig()
	if err != nil {
		return err
	}
	if preset == "" {
		preset = config.DifficultyNormal
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open scoreboard", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := audio.New(base.Audio, logger)
	defer player.Close()

	rc := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, rc, preset)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		// Update config with any size changes
		rc = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		preset = menuResult.Preset
		cfg := base
		config.ApplySnakePreset(&cfg, preset)

		logger.Info("starting round", "difficulty", preset)
		game := snake.New(cfg, rc.Seed)
		quit, err := tui.Run(game, rc, tui.Options{
			Store:      store,
			Player:     player,
			Logger:     logger,
			Difficulty: presetName(preset),
		})
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if quit {
			return nil
		}
	}
}
