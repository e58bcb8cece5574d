package core

// RuntimeConfig contains configuration passed to the game at (re)start.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for food placement; 0 means time-based in the platform layer
}

// DefaultConfig returns a RuntimeConfig sized for a classic 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState is the summary the platform polls after every step.
type GameState struct {
	Score    int
	Level    int
	GameOver bool
	Paused   bool
}

// StepResult is returned after each tick or input.
// Events lists what happened, in order, so collaborators such as audio
// can react without inspecting the game.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the result contains an event of the given kind.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
