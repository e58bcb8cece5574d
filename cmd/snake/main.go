// snake is a fruit-eating snake game for the terminal.
//
// Usage:
//
//	snake play      - Play a round right away
//	snake menu      - Start menu with difficulty picker and session scores
//	snake sim       - Run the game headless with an autopilot
//	snake fruits    - List fruits and their points
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible food placement
//	--config <path>       - Use a custom snake.yaml
//	--difficulty <preset> - easy, normal, hard, fixed
//	--mute                - Disable sound effects
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file while the game owns the terminal
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-snake/internal/config"
	"github.com/vovakirdan/fruit-snake/internal/core"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Fruit Snake - eat fruit, grow, don't leave the board",
	Long: `Fruit Snake is a terminal snake game. Steer with the arrow keys,
WASD, hjkl or by dragging the mouse. Every fruit is worth points; every
fifth fruit raises the level and speeds the snake up.

Available commands:
  play     - Play a round right away
  menu     - Difficulty picker and session scoreboard
  sim      - Headless run with an autopilot
  fruits   - Show fruits and their points

Examples:
  snake play
  snake play --difficulty hard
  snake menu --mute
  snake sim --ticks 500 --speed 10
  snake play --config ./my-snake.yaml --log-file /tmp/snake.log`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(fruitsCmd)
}

// newLogger builds the program logger. Interactive commands own the
// terminal, so without --log-file their logs are discarded.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.SnakeConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}

	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return config.SnakeConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	config.ApplySnakePreset(&cfg, preset)

	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, preset, nil
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// presetName returns the preset as recorded on the scoreboard.
func presetName(p config.DifficultyPreset) string {
	if p == "" {
		return string(config.DifficultyNormal)
	}
	return string(p)
}
