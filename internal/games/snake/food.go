package snake

import (
	"math/rand"
	"unicode/utf8"

	"github.com/vovakirdan/fruit-snake/internal/config"
	"github.com/vovakirdan/fruit-snake/internal/core"
)

// FruitKind names a fruit by its emoji.
type FruitKind string

// Food is the single active fruit on the board.
type Food struct {
	Point
	Kind FruitKind
}

// PlaceFood picks a cell with x in [0, xMax] and y in [0, yMax].
// The snake body is not consulted, so food can land on it.
func PlaceFood(rng *rand.Rand, xMax, yMax int) Point {
	return Point{
		X: rng.Intn(max(xMax, 0) + 1),
		Y: rng.Intn(max(yMax, 0) + 1),
	}
}

// RandomFruit picks a kind uniformly from the table.
// An empty table yields the empty kind, which is worth nothing.
func RandomFruit(rng *rand.Rand, table config.FruitTable) FruitKind {
	if len(table) == 0 {
		return ""
	}
	return FruitKind(table[rng.Intn(len(table))].Kind)
}

// Glyph returns the rune drawn for the fruit.
func (k FruitKind) Glyph() rune {
	r, _ := utf8.DecodeRuneInString(string(k))
	if r == utf8.RuneError {
		return '*'
	}
	return r
}

var fruitColors = map[FruitKind]core.Color{
	"🍎": core.ColorRed,
	"🍊": core.ColorOrange,
	"🍋": core.ColorBrightYellow,
	"🍇": core.ColorMagenta,
	"🍉": core.ColorGreen,
	"🍓": core.ColorRed,
	"🍑": core.ColorPink,
	"🍍": core.ColorYellow,
}

// Color returns the HUD and board colour for the fruit.
func (k FruitKind) Color() core.Color {
	if c, ok := fruitColors[k]; ok {
		return c
	}
	return core.ColorWhite
}
