package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It matches defaults/snake.yaml and is the fallback if the embed fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			XMin: 0,
			XMax: 30,
			YMin: 0,
			YMax: 63,
		},
		Start: StartConfig{
			Snake:     []Cell{{X: 5, Y: 5}},
			Food:      Cell{X: 5, Y: 20},
			Fruit:     "🍎",
			Direction: "right",
		},
		Eating: EatingConfig{
			Tolerance: 2,
		},
		Speed: SpeedConfig{
			InitialIntervalMS: 200,
			StepMS:            20,
			MinIntervalMS:     80,
			EatsPerLevel:      5,
		},
		Fruits: FruitTable{
			{Kind: "🍎", Points: 10},
			{Kind: "🍊", Points: 15},
			{Kind: "🍋", Points: 20},
			{Kind: "🍇", Points: 25},
			{Kind: "🍉", Points: 30},
			{Kind: "🍓", Points: 35},
			{Kind: "🍑", Points: 40},
			{Kind: "🍍", Points: 45},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
