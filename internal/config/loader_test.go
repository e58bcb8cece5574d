package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseSnake(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("embedded YAML and DefaultSnakeConfig differ:\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte(`
board:
  x_max: 20
speed:
  initial_interval_ms: 150
fruits:
  - { kind: "🍒", points: 7 }
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	if cfg.Board.XMax != 20 {
		t.Errorf("XMax = %d, expected 20", cfg.Board.XMax)
	}
	if cfg.Board.YMax != 63 {
		t.Errorf("YMax should keep its default, got %d", cfg.Board.YMax)
	}
	if cfg.Speed.InitialIntervalMS != 150 || cfg.Speed.StepMS != 20 {
		t.Errorf("unexpected speed config %+v", cfg.Speed)
	}
	if len(cfg.Fruits) != 1 || cfg.Fruits.Points("🍒") != 7 {
		t.Errorf("fruit list should be replaced, got %+v", cfg.Fruits)
	}
}

func TestLoadSnakeMissingFile(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadSnakeInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("speed:\n  eats_per_level: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadSnake(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
	}{
		{"empty board", func(c *SnakeConfig) { c.Board.XMax = -1 }},
		{"no snake", func(c *SnakeConfig) { c.Start.Snake = nil }},
		{"bad direction", func(c *SnakeConfig) { c.Start.Direction = "sideways" }},
		{"negative tolerance", func(c *SnakeConfig) { c.Eating.Tolerance = -1 }},
		{"zero interval", func(c *SnakeConfig) { c.Speed.InitialIntervalMS = 0 }},
		{"floor above start", func(c *SnakeConfig) { c.Speed.MinIntervalMS = 500 }},
		{"negative step", func(c *SnakeConfig) { c.Speed.StepMS = -5 }},
		{"no fruit", func(c *SnakeConfig) { c.Fruits = nil }},
		{"unnamed fruit", func(c *SnakeConfig) { c.Fruits[0].Kind = "" }},
		{"negative points", func(c *SnakeConfig) { c.Fruits[1].Points = -10 }},
		{"loud", func(c *SnakeConfig) { c.Audio.Volume = 2 }},
	}

	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestFruitTablePoints(t *testing.T) {
	table := DefaultSnakeConfig().Fruits

	expected := map[string]int{
		"🍎": 10, "🍊": 15, "🍋": 20, "🍇": 25,
		"🍉": 30, "🍓": 35, "🍑": 40, "🍍": 45,
	}
	for kind, points := range expected {
		if got := table.Points(kind); got != points {
			t.Errorf("Points(%s) = %d, expected %d", kind, got, points)
		}
	}

	if got := table.Points(""); got != 0 {
		t.Errorf("unknown fruit should be worth 0, got %d", got)
	}
	if got := table.Points("🥦"); got != 0 {
		t.Errorf("unknown fruit should be worth 0, got %d", got)
	}
	if len(table) != 8 || table[0].Kind != "🍎" || table[7].Kind != "🍍" {
		t.Errorf("unexpected fruit order %v", table)
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantInitial int
		wantStep    int
	}{
		{DifficultyEasy, 250, 20},
		{DifficultyNormal, 200, 20},
		{DifficultyHard, 140, 20},
		{DifficultyFixed, 200, 0},
		{"", 200, 20},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, tc.preset)
			if cfg.Speed.InitialIntervalMS != tc.wantInitial {
				t.Errorf("initial = %d, expected %d", cfg.Speed.InitialIntervalMS, tc.wantInitial)
			}
			if cfg.Speed.StepMS != tc.wantStep {
				t.Errorf("step = %d, expected %d", cfg.Speed.StepMS, tc.wantStep)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("expected hard preset")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should map to empty")
	}
	if len(Presets()) != 4 {
		t.Errorf("expected 4 presets, got %d", len(Presets()))
	}
}
