package snake

import "github.com/vovakirdan/fruit-snake/internal/config"

// Point is a cell on the logical grid.
type Point struct {
	X, Y int
}

// Add returns p moved by the offset o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Bounds is the inclusive rectangle of legal head positions.
type Bounds struct {
	XMin, XMax int
	YMin, YMax int
}

// BoundsFrom converts board settings into Bounds.
func BoundsFrom(b config.BoardConfig) Bounds {
	return Bounds{XMin: b.XMin, XMax: b.XMax, YMin: b.YMin, YMax: b.YMax}
}

// Width returns the number of columns inside the bounds.
func (b Bounds) Width() int {
	return b.XMax - b.XMin + 1
}

// Height returns the number of rows inside the bounds.
func (b Bounds) Height() int {
	return b.YMax - b.YMin + 1
}

// IsOutOfBounds reports whether p lies outside b.
func IsOutOfBounds(p Point, b Bounds) bool {
	return p.X < b.XMin || p.X > b.XMax || p.Y < b.YMin || p.Y > b.YMax
}
