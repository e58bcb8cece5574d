package config

import "time"

// Progression turns the number of fruits eaten into a level and a tick
// interval. Every EatsPerLevel eats raise the level by one and shorten the
// interval by one step until the floor is reached.
type Progression struct {
	cfg SpeedConfig
}

// NewProgression creates a progression policy from the speed settings.
func NewProgression(cfg SpeedConfig) *Progression {
	if cfg.EatsPerLevel < 1 {
		cfg.EatsPerLevel = 1
	}
	return &Progression{cfg: cfg}
}

// LevelFor returns the level reached after eating the given number of fruits.
// Levels start at 1.
func (p *Progression) LevelFor(eaten int) int {
	if eaten < 0 {
		eaten = 0
	}
	return 1 + eaten/p.cfg.EatsPerLevel
}

// LevelsUp reports whether the eat that brought the count to eaten is a
// level-up milestone.
func (p *Progression) LevelsUp(eaten int) bool {
	return eaten > 0 && eaten%p.cfg.EatsPerLevel == 0
}

// IntervalFor returns the tick interval for a level, never below the floor.
func (p *Progression) IntervalFor(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	ms := p.cfg.InitialIntervalMS - (level-1)*p.cfg.StepMS
	if ms < p.cfg.MinIntervalMS {
		ms = p.cfg.MinIntervalMS
	}
	return time.Duration(ms) * time.Millisecond
}

// Initial returns the interval at level 1.
func (p *Progression) Initial() time.Duration {
	return p.IntervalFor(1)
}

// Floor returns the minimum interval.
func (p *Progression) Floor() time.Duration {
	return time.Duration(p.cfg.MinIntervalMS) * time.Millisecond
}

// InitialIntervalForPreset returns the starting interval for a preset.
// ok is false when the preset keeps the configured value.
func InitialIntervalForPreset(preset DifficultyPreset) (ms int, ok bool) {
	switch preset {
	case DifficultyEasy:
		return 250, true
	case DifficultyHard:
		return 140, true
	default:
		return 0, false
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
