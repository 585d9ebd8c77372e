package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const hudHeight = 2 // Status line plus separator

// Glyphs used on the board.
const (
	glyphHead = '@'
	glyphBody = 'o'
	glyphFood = '*'
	glyphGrid = '·'
)

// MinSize returns the smallest screen that fits the HUD and the boxed board.
func (g *Game) MinSize() (w, h int) {
	return g.grid.Width*g.opts.CellWidth + 2, hudHeight + g.grid.Height + 2
}

// Render draws the game to the screen.
// Order: clear, HUD, border, grid dots, food, snake, overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := g.MinSize()
	if dst.Width() < minW || dst.Height() < minH {
		g.renderTooSmall(dst, minW, minH)
		return
	}

	g.renderHUD(dst)

	board := core.NewRect((dst.Width()-minW)/2, hudHeight, minW, g.grid.Height+2)
	dst.DrawBox(board, core.ColorGray)

	if g.opts.GridLines {
		for y := 0; y < g.grid.Height; y++ {
			for x := 0; x < g.grid.Width; x++ {
				g.drawCell(dst, board, Cell{X: x, Y: y}, glyphGrid, core.ColorDarkGray)
			}
		}
	}

	if pos, ok := g.food.Position(); ok {
		g.drawCell(dst, board, pos, glyphFood, core.ColorBrightRed)
	}

	// Body first so the head stays visible if anything overlaps it.
	for i := len(g.snake.segments) - 1; i >= 0; i-- {
		if i == 0 {
			g.drawCell(dst, board, g.snake.segments[i], glyphHead, core.ColorBrightGreen)
		} else {
			g.drawCell(dst, board, g.snake.segments[i], glyphBody, core.ColorGreen)
		}
	}

	switch g.phase {
	case PhasePaused:
		g.renderOverlay(dst, core.ColorBrightWhite,
			"PAUSED",
			"Press SPACE to continue")
	case PhaseGameOver:
		g.renderOverlay(dst, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Final Score: %d", g.snake.score),
			"Press SPACE or ENTER to restart")
	}
}

// drawCell draws one grid cell inside the board border.
func (g *Game) drawCell(dst *core.Screen, board core.Rect, c Cell, r rune, color core.Color) {
	dst.SetColored(board.X+1+c.X*g.opts.CellWidth, board.Y+1+c.Y, r, color)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d  Best: %d", g.snake.score, len(g.snake.segments), g.best)
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

func (g *Game) renderTooSmall(dst *core.Screen, minW, minH int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, dst.Width(), dst.Height()), core.ColorDefault)
}

// renderOverlay draws a boxed message in the middle of the screen.
// The first line is the title and uses the given color.
func (g *Game) renderOverlay(dst *core.Screen, titleColor core.Color, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}

	box := core.NewRect(0, 0, maxLen+6, len(lines)*2+1)
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	for i, l := range lines {
		color := core.ColorGray
		if i == 0 {
			color = titleColor
		}
		dst.DrawTextCentered(box.Y+1+i*2, l, color)
	}
}
