package snake

import (
	"fmt"

	"github.com/vovakirdan/fruit-snake/internal/core"
)

const hudHeight = 2

// board is the terminal area the logical grid is drawn into.
type board struct {
	frame core.Rect // Border, including the frame itself
	cols  int       // Inner columns used by grid cells
	rows  int       // Inner rows used by grid cells
}

// layout fits the logical grid below the HUD. Large grids are scaled down,
// small ones are drawn one cell per character. One spare column keeps a
// wide fruit glyph at the right edge inside the frame.
func (g *Game) layout(w, h int) (board, bool) {
	cols := min(g.bounds.Width(), w-3)
	rows := min(g.bounds.Height(), h-hudHeight-2)
	if cols < 2 || rows < 2 {
		return board{}, false
	}
	frameW := cols + 3
	return board{
		frame: core.NewRect((w-frameW)/2, hudHeight, frameW, rows+2),
		cols:  cols,
		rows:  rows,
	}, true
}

// project maps a grid point to a screen cell.
// The head may sit one cell past a wall for a tick; it is drawn on the edge.
func (b board) project(p Point, bounds Bounds) (int, int) {
	p.X = core.Clamp(p.X, bounds.XMin, bounds.XMax)
	p.Y = core.Clamp(p.Y, bounds.YMin, bounds.YMax)
	x := b.frame.X + 1 + core.Scale(p.X-bounds.XMin, bounds.Width()-1, b.cols-1)
	y := b.frame.Y + 1 + core.Scale(p.Y-bounds.YMin, bounds.Height()-1, b.rows-1)
	return x, y
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	b, ok := g.layout(dst.Width(), dst.Height())
	if !ok {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(b.frame, core.ColorGray)
	g.renderFood(dst, b)
	g.renderSnake(dst, b)

	switch g.phase {
	case PhaseGameOver:
		g.renderOverlay(dst, "Game Over!!!", fmt.Sprintf("Score: %d  R to restart", g.score))
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar and the separator below it.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Fruit Snake  Score: %d  Level: %d  Speed: %dms  Fruit: ",
		g.score, g.level, g.interval.Milliseconds())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightGreen)

	x := len([]rune(hud))
	dst.SetWide(x, 0, g.food.Kind.Glyph(), g.food.Kind.Color())
	dst.DrawText(x+3, 0, fmt.Sprintf("+%d", g.cfg.Fruits.Points(string(g.food.Kind))))

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderSnake draws the body first so the head stays visible when scaled
// segments share a cell.
func (g *Game) renderSnake(dst *core.Screen, b board) {
	for i := len(g.snake) - 1; i >= 0; i-- {
		x, y := b.project(g.snake[i], g.bounds)
		if i == 0 {
			dst.SetColored(x, y, '@', core.ColorBrightYellow)
		} else {
			dst.SetColored(x, y, 'o', core.ColorGreen)
		}
	}
}

func (g *Game) renderFood(dst *core.Screen, b board) {
	if IsOutOfBounds(g.food.Point, g.bounds) {
		return
	}
	x, y := b.project(g.food.Point, g.bounds)
	dst.SetWide(x, y, g.food.Kind.Glyph(), g.food.Kind.Color())
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
