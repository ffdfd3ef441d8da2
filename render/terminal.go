// Package render draws session snapshots to a tcell screen
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
)

// Glyphs
const (
	GlyphHead     = '█'
	GlyphBody     = '▓'
	GlyphFood     = '●'
	GlyphEmpty    = ' '
	GlyphCorner   = '+'
	GlyphHorizBar = '-'
	GlyphVertBar  = '|'
)

// CellWidth is the number of terminal columns per grid cell, keeping cells roughly square
const CellWidth = 2

// Terminal renders snapshots onto a tcell screen
// The board is drawn at the top-left with a one-cell border, the status line below it
type Terminal struct {
	screen tcell.Screen
	grid   core.Grid
	styles Styles
}

// NewTerminal creates a renderer for grid on screen
func NewTerminal(screen tcell.Screen, grid core.Grid) *Terminal {
	return &Terminal{
		screen: screen,
		grid:   grid,
		styles: DefaultStyles(),
	}
}

// BoardSize returns the terminal columns and rows the board occupies, border included
func (t *Terminal) BoardSize() (int, int) {
	return t.grid.Width*CellWidth + 2, t.grid.Height + 2
}

// CellOrigin returns the screen position of the left column of grid cell p
func CellOrigin(p core.Point) (int, int) {
	return 1 + p.X*CellWidth, 1 + p.Y
}

// Draw renders s and shows the frame
func (t *Terminal) Draw(s engine.Snapshot) {
	t.screen.Clear()

	w, h := t.screen.Size()
	bw, bh := t.BoardSize()
	if w < bw || h < bh+1 {
		t.drawText(0, 0, fmt.Sprintf("terminal too small: need %dx%d", bw, bh+1), t.styles.GameOver)
		t.screen.Show()
		return
	}

	t.drawBorder(bw, bh)
	t.drawBoard()

	if t.grid.Contains(s.Food) {
		t.drawCell(s.Food, GlyphFood, GlyphEmpty, t.styles.Food)
	}

	bodyStyle, headStyle := t.styles.Body, t.styles.Head
	if s.GameOver {
		bodyStyle, headStyle = t.styles.Dead, t.styles.Dead
	}
	// Tail first so the head wins on overlap
	for i := len(s.Body) - 1; i >= 1; i-- {
		t.drawCell(s.Body[i], GlyphBody, GlyphBody, bodyStyle)
	}
	if len(s.Body) > 0 {
		t.drawCell(s.Body[0], GlyphHead, GlyphHead, headStyle)
	}

	t.drawStatus(bh, s)
	t.screen.Show()
}

func (t *Terminal) drawBorder(bw, bh int) {
	st := t.styles.Border
	for x := 1; x < bw-1; x++ {
		t.screen.SetContent(x, 0, GlyphHorizBar, nil, st)
		t.screen.SetContent(x, bh-1, GlyphHorizBar, nil, st)
	}
	for y := 1; y < bh-1; y++ {
		t.screen.SetContent(0, y, GlyphVertBar, nil, st)
		t.screen.SetContent(bw-1, y, GlyphVertBar, nil, st)
	}
	t.screen.SetContent(0, 0, GlyphCorner, nil, st)
	t.screen.SetContent(bw-1, 0, GlyphCorner, nil, st)
	t.screen.SetContent(0, bh-1, GlyphCorner, nil, st)
	t.screen.SetContent(bw-1, bh-1, GlyphCorner, nil, st)
}

func (t *Terminal) drawBoard() {
	for y := 0; y < t.grid.Height; y++ {
		for x := 0; x < t.grid.Width; x++ {
			t.drawCell(core.Point{X: x, Y: y}, GlyphEmpty, GlyphEmpty, t.styles.Empty)
		}
	}
}

func (t *Terminal) drawCell(p core.Point, left, right rune, st tcell.Style) {
	x, y := CellOrigin(p)
	t.screen.SetContent(x, y, left, nil, st)
	t.screen.SetContent(x+1, y, right, nil, st)
}

func (t *Terminal) drawStatus(row int, s engine.Snapshot) {
	x := t.drawText(0, row, StatusLine(s), t.styles.Status)
	x = t.drawText(x+1, row, " "+s.Label+" ", t.styles.Label)
	if s.GameOver {
		t.drawText(x+1, row, "GAME OVER", t.styles.GameOver)
	}
}

// drawText writes str at (x, y) and returns the column after it
func (t *Terminal) drawText(x, y int, str string, st tcell.Style) int {
	for _, r := range str {
		t.screen.SetContent(x, y, r, nil, st)
		x++
	}
	return x
}

// StatusLine formats the score summary shown under the board
func StatusLine(s engine.Snapshot) string {
	return fmt.Sprintf("Score %d  Best %d", s.Score, s.BestScore)
}
