package snake

import "github.com/vovakirdan/fruit-snake/internal/core"

// Autopilot steers toward the fruit by swiping from the head to it.
// The swipe goes through MapGestureToDirection like a player's would.
type Autopilot struct{}

// Next returns the input for the coming tick.
func (Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	if g.IsGameOver() || g.IsPaused() {
		return in
	}
	head := g.Head()
	food := g.Food()
	in.Swipe(food.X-head.X, food.Y-head.Y)
	return in
}
