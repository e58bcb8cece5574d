package snake

import "time"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Score    int
	Level    int
	Eaten    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	NextDir  Direction
	FoodX    int
	FoodY    int
	Fruit    FruitKind
	Interval time.Duration
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	head := g.snake[0]
	return Snapshot{
		Tick:     g.tick,
		Phase:    g.phase,
		Score:    g.score,
		Level:    g.level,
		Eaten:    g.eaten,
		SnakeLen: len(g.snake),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      g.direction,
		NextDir:  g.nextDir,
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
		Fruit:    g.food.Kind,
		Interval: g.interval,
	}
}
