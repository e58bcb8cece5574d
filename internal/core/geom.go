// Package core provides the framework-free primitives shared by the snake
// game and the platform layer. It must not import Bubble Tea or any other
// UI package so that game logic stays pure and testable.
package core

// Rect represents an axis-aligned rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Scale maps v from the range [0, from] onto [0, to].
// A zero-width source range always maps to 0.
func Scale(v, from, to int) int {
	if from <= 0 {
		return 0
	}
	return v * to / from
}
