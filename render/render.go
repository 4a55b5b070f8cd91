// Package render turns the game state into text frames. It has no side
// effects, drawing the frame is left to a Screen.
package render

import (
	"fmt"
	"strings"

	"github.com/battlesnakeio/termsnake/rules"
)

// Glyphs used for each kind of cell.
const (
	GlyphCorner    = '+'
	GlyphWallH     = '-'
	GlyphWallV     = '|'
	GlyphFood      = '%'
	GlyphSnakeHead = '#'
	GlyphSnakeBody = '+'
	GlyphEmpty     = ' '
)

// GameOverBanner is printed below the board once the snake dies.
const GameOverBanner = "GAME OVER!"

// HUD is the text overlay printed under the board.
type HUD struct {
	Score     int
	ShowScore bool
	GameOver  bool
}

// Screen draws frames onto an output device.
type Screen interface {
	Clear() error
	Draw(lines []string) error
}

// Frame projects the grid and HUD into lines of text, one per grid row. The
// HUD banner and score sit on the two rows after the bottom wall, starting at
// the middle column.
func Frame(g *rules.Grid, head rules.Position, hud HUD) []string {
	var (
		rows      = g.Height() + 5
		cols      = g.Width() + 5
		bannerRow = g.Height() + 2
		scoreRow  = g.Height() + 3
		hudCol    = g.Width() / 2
	)

	lines := make([]string, 0, rows)
	for y := 0; y < rows; y++ {
		var b strings.Builder
		for x := 0; x < cols; x++ {
			switch {
			case y == bannerRow && x == hudCol && hud.GameOver:
				b.WriteString(GameOverBanner)
			case y == scoreRow && x == hudCol && hud.ShowScore:
				fmt.Fprintf(&b, "Score: %d", hud.Score)
			default:
				b.WriteRune(glyph(g, head, x, y))
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), string(GlyphEmpty)))
	}
	return lines
}

func glyph(g *rules.Grid, head rules.Position, x, y int) rune {
	c, err := g.Get(x, y)
	if err != nil {
		return GlyphEmpty
	}

	switch c {
	case rules.Wall:
		if g.IsCorner(x, y) {
			return GlyphCorner
		}
		if x == 0 || x == g.Width()+1 {
			return GlyphWallV
		}
		return GlyphWallH
	case rules.SnakeBody:
		if head.X == x && head.Y == y {
			return GlyphSnakeHead
		}
		return GlyphSnakeBody
	case rules.Food:
		return GlyphFood
	}
	return GlyphEmpty
}

// Draw clears the screen and writes the frame in full, so nothing from a
// previous, wider frame is left behind.
func Draw(s Screen, lines []string) error {
	if err := s.Clear(); err != nil {
		return err
	}
	return s.Draw(lines)
}
