package snake

import (
	"strings"

	"github.com/vovakirdan/fruit-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Offset returns the one-cell step for the direction. Y grows downwards.
func (d Direction) Offset() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a config name into a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	default:
		return DirRight, false
	}
}

// MapGestureToDirection turns a swipe into a cardinal direction using the
// dominant axis. Ties go to the vertical axis.
func MapGestureToDirection(dx, dy int) Direction {
	if core.Abs(dx) > core.Abs(dy) {
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	}
	if dy > 0 {
		return DirDown
	}
	return DirUp
}
