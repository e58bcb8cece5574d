package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-snake/internal/audio"
	"github.com/vovakirdan/fruit-snake/internal/core"
	"github.com/vovakirdan/fruit-snake/internal/games/snake"
)

var (
	flagTicks int
	flagSpeed int
	flagSound bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless with an autopilot",
	Long: `Run a round without a terminal UI. An autopilot swipes toward the
fruit before every tick; events are written to the log.

The round ends at game over, after --ticks ticks, or on Ctrl+C.

Examples:
  snake sim
  snake sim --ticks 500 --speed 10 --log-level debug
  snake sim --seed 7 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Stop after this many ticks (0 = until game over)")
	simCmd.Flags().IntVar(&flagSpeed, "speed", 1, "Divide every tick interval by this factor")
	simCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects during the run")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}
	if flagSpeed < 1 {
		return fmt.Errorf("--speed must be at least 1, got %d", flagSpeed)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var player audio.Player = audio.Nop{}
	if flagSound {
		player = audio.New(cfg.Audio, logger)
	}
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	game := snake.New(cfg, seed)
	pilot := snake.Autopilot{}
	ticks := 0

	var runner *snake.Runner
	runner = snake.NewRunner(game,
		snake.WithAudio(player),
		snake.WithLogger(logger),
		snake.WithTimeScale(flagSpeed),
		snake.WithObserver(func(res core.StepResult) {
			if res.Has(core.EventMove) || res.Has(core.EventEat) {
				ticks++
			}
			if res.State.GameOver || (flagTicks > 0 && ticks >= flagTicks) {
				cancel()
				return
			}
			runner.Send(pilot.Next(game))
		}),
	)

	logger.Info("simulation started", "seed", seed, "difficulty", presetName(preset), "speed", flagSpeed)
	runner.Send(pilot.Next(game))
	started := time.Now()

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("simulation: %w", err)
	}

	// Run has returned, so the game is no longer shared.
	logger.Debug("final state", "state", game.DebugState())
	fmt.Printf("Ticks:   %d\n", ticks)
	fmt.Printf("Score:   %d\n", game.Score())
	fmt.Printf("Level:   %d\n", game.Level())
	fmt.Printf("Fruits:  %d\n", game.Eaten())
	fmt.Printf("Length:  %d\n", len(game.Snake()))
	fmt.Printf("Result:  %s\n", game.Phase())
	fmt.Printf("Elapsed: %s\n", time.Since(started).Round(time.Millisecond))
	return nil
}
