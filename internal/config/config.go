// Package config provides YAML-based game configuration loading,
// difficulty presets and the level progression policy.
package config

// SnakeConfig contains all tunable parameters of the snake game.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Start  StartConfig  `yaml:"start"`
	Eating EatingConfig `yaml:"eating"`
	Speed  SpeedConfig  `yaml:"speed"`
	Fruits FruitTable   `yaml:"fruits"`
	Audio  AudioConfig  `yaml:"audio"`
}

// BoardConfig defines the inclusive rectangle of legal head positions.
type BoardConfig struct {
	XMin int `yaml:"x_min"`
	XMax int `yaml:"x_max"`
	YMin int `yaml:"y_min"`
	YMax int `yaml:"y_max"`
}

// Cell is a grid coordinate as written in YAML.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// StartConfig defines the state a round starts (and restarts) from.
type StartConfig struct {
	Snake     []Cell `yaml:"snake"` // Head first
	Food      Cell   `yaml:"food"`
	Fruit     string `yaml:"fruit"`     // Kind of the initial food
	Direction string `yaml:"direction"` // up, down, left, right
}

// EatingConfig defines how close the head must get to the food.
type EatingConfig struct {
	Tolerance int `yaml:"tolerance"` // Per-axis distance in grid cells
}

// SpeedConfig defines the tick interval and its level progression.
type SpeedConfig struct {
	InitialIntervalMS int `yaml:"initial_interval_ms"`
	StepMS            int `yaml:"step_ms"`         // Interval reduction per level
	MinIntervalMS     int `yaml:"min_interval_ms"` // Floor for the interval
	EatsPerLevel      int `yaml:"eats_per_level"`
}

// AudioConfig controls sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// Fruit binds a fruit kind to its point value.
type Fruit struct {
	Kind   string `yaml:"kind"`
	Points int    `yaml:"points"`
}

// FruitTable is the ordered set of fruits food can be drawn from.
type FruitTable []Fruit

// Points returns the value of a fruit kind, or 0 for kinds not in the table.
func (t FruitTable) Points(kind string) int {
	for _, f := range t {
		if f.Kind == kind {
			return f.Points
		}
	}
	return 0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown and empty strings yield "" which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}
