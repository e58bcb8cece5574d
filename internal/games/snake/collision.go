package snake

import "github.com/vovakirdan/fruit-snake/internal/core"

// CheckEatsFood reports whether head is close enough to food to eat it.
// Distance is measured per axis: both |dx| and |dy| must be within
// tolerance. The slack compensates for a fruit glyph being wider than one
// grid step.
func CheckEatsFood(head, food Point, tolerance int) bool {
	if tolerance < 0 {
		return false
	}
	return core.Abs(head.X-food.X) <= tolerance && core.Abs(head.Y-food.Y) <= tolerance
}
