package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-snake/internal/config"
)

var fruitsCmd = &cobra.Command{
	Use:   "fruits",
	Short: "List fruits and their points",
	Long:  `Shows the fruit table from the active config: every fruit the snake can find and what it scores.`,
	Args:  cobra.NoArgs,
	RunE:  runFruits,
}

func runFruits(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}

	if len(cfg.Fruits) == 0 {
		fmt.Println("No fruits configured.")
		return nil
	}

	fmt.Println("Fruits:")
	fmt.Println()

	// Emoji are double width, so pad by display width
	maxKindLen := lipgloss.Width("Fruit")
	for _, f := range cfg.Fruits {
		if w := lipgloss.Width(f.Kind); w > maxKindLen {
			maxKindLen = w
		}
	}

	pad := func(s string) string {
		return s + fmt.Sprintf("%*s", maxKindLen-lipgloss.Width(s), "")
	}

	// Print header
	fmt.Printf("  %s  %s\n", pad("Fruit"), "Points")
	fmt.Printf("  %s  %s\n", pad("-----"), "------")

	for _, f := range cfg.Fruits {
		fmt.Printf("  %s  %6d\n", pad(f.Kind), f.Points)
	}

	progress := config.NewProgression(cfg.Speed)
	fmt.Println()
	fmt.Printf("Every %d fruits the level goes up and the snake speeds up by %dms (from %v down to %v).\n",
		cfg.Speed.EatsPerLevel, cfg.Speed.StepMS, progress.Initial(), progress.Floor())
	fmt.Println("Run 'snake play' to start.")
	return nil
}
