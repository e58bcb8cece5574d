package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.fruit-snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSnake(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSnake(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := parseSnake(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseSnake(DefaultYAML())
	if err != nil {
		return DefaultSnakeConfig(), nil
	}
	return cfg, nil
}

// parseSnake decodes YAML on top of the defaults, so partial files only
// override what they mention. Lists in the file replace the default lists.
func parseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can produce a playable game.
func (c SnakeConfig) Validate() error {
	b := c.Board
	if b.XMax < b.XMin || b.YMax < b.YMin {
		return fmt.Errorf("%w: board x[%d,%d] y[%d,%d] is empty", ErrInvalid, b.XMin, b.XMax, b.YMin, b.YMax)
	}
	if len(c.Start.Snake) == 0 {
		return fmt.Errorf("%w: start.snake needs at least one cell", ErrInvalid)
	}
	if _, ok := directionNames[strings.ToLower(c.Start.Direction)]; !ok {
		return fmt.Errorf("%w: unknown start.direction %q", ErrInvalid, c.Start.Direction)
	}
	if c.Eating.Tolerance < 0 {
		return fmt.Errorf("%w: eating.tolerance must not be negative", ErrInvalid)
	}
	s := c.Speed
	if s.InitialIntervalMS <= 0 || s.MinIntervalMS <= 0 {
		return fmt.Errorf("%w: tick intervals must be positive", ErrInvalid)
	}
	if s.MinIntervalMS > s.InitialIntervalMS {
		return fmt.Errorf("%w: min_interval_ms %d exceeds initial_interval_ms %d", ErrInvalid, s.MinIntervalMS, s.InitialIntervalMS)
	}
	if s.StepMS < 0 {
		return fmt.Errorf("%w: speed.step_ms must not be negative", ErrInvalid)
	}
	if s.EatsPerLevel < 1 {
		return fmt.Errorf("%w: speed.eats_per_level must be at least 1", ErrInvalid)
	}
	if len(c.Fruits) == 0 {
		return fmt.Errorf("%w: fruit table is empty", ErrInvalid)
	}
	for i, f := range c.Fruits {
		if f.Kind == "" {
			return fmt.Errorf("%w: fruits[%d] has no kind", ErrInvalid, i)
		}
		if f.Points < 0 {
			return fmt.Errorf("%w: fruit %s has negative points", ErrInvalid, f.Kind)
		}
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be within [0, 1]", ErrInvalid)
	}
	return nil
}

var directionNames = map[string]struct{}{
	"up": {}, "down": {}, "left": {}, "right": {},
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fruit-snake", "configs", filename)
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Speed.StepMS = 0
		return
	}
	if ms, ok := InitialIntervalForPreset(preset); ok {
		cfg.Speed.InitialIntervalMS = ms
		if cfg.Speed.MinIntervalMS > ms {
			cfg.Speed.MinIntervalMS = ms
		}
	}
}
