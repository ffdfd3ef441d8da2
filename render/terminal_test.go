package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func rowText(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		b.WriteRune(runeAt(screen, x, y))
	}
	return b.String()
}

func snapshot() engine.Snapshot {
	return engine.Snapshot{
		State:     engine.StateStarted,
		Label:     engine.StateStarted.Label(),
		Direction: core.DirUp,
		Body:      []core.Point{{X: 6, Y: 5}, {X: 6, Y: 6}, {X: 6, Y: 7}},
		Food:      core.Point{X: 10, Y: 10},
		Score:     2,
		BestScore: 9,
	}
}

func TestDrawBoard(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	term := NewTerminal(screen, core.NewSquareGrid(20))

	term.Draw(snapshot())

	bw, bh := term.BoardSize()
	assert.Equal(t, 42, bw)
	assert.Equal(t, 22, bh)

	assert.Equal(t, GlyphCorner, runeAt(screen, 0, 0))
	assert.Equal(t, GlyphCorner, runeAt(screen, bw-1, bh-1))
	assert.Equal(t, GlyphHorizBar, runeAt(screen, 5, 0))
	assert.Equal(t, GlyphVertBar, runeAt(screen, 0, 5))

	hx, hy := CellOrigin(core.Point{X: 6, Y: 5})
	assert.Equal(t, GlyphHead, runeAt(screen, hx, hy))
	assert.Equal(t, GlyphHead, runeAt(screen, hx+1, hy))

	bx, by := CellOrigin(core.Point{X: 6, Y: 7})
	assert.Equal(t, GlyphBody, runeAt(screen, bx, by))

	fx, fy := CellOrigin(core.Point{X: 10, Y: 10})
	assert.Equal(t, GlyphFood, runeAt(screen, fx, fy))

	ex, ey := CellOrigin(core.Point{X: 0, Y: 0})
	assert.Equal(t, GlyphEmpty, runeAt(screen, ex, ey))
}

func TestDrawStatusLine(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	term := NewTerminal(screen, core.NewSquareGrid(20))

	s := snapshot()
	term.Draw(s)
	_, bh := term.BoardSize()
	status := rowText(screen, bh, 80)
	assert.Contains(t, status, "Score 2  Best 9")
	assert.Contains(t, status, "Pause")
	assert.NotContains(t, status, "GAME OVER")

	s.State = engine.StateGameOver
	s.Label = s.State.Label()
	s.GameOver = true
	term.Draw(s)
	status = rowText(screen, bh, 80)
	assert.Contains(t, status, "Restart")
	assert.Contains(t, status, "GAME OVER")
}

func TestDrawGameOverStyle(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	term := NewTerminal(screen, core.NewSquareGrid(20))

	s := snapshot()
	s.GameOver = true
	term.Draw(s)

	hx, hy := CellOrigin(s.Body[0])
	_, _, style, _ := screen.GetContent(hx, hy)
	assert.Equal(t, DefaultStyles().Dead, style)
}

func TestDrawTooSmall(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	term := NewTerminal(screen, core.NewSquareGrid(20))

	term.Draw(snapshot())
	assert.True(t, strings.HasPrefix(rowText(screen, 0, 20), "terminal too small"))
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "Score 0  Best 0", StatusLine(engine.Snapshot{}))
	assert.Equal(t, "Score 4  Best 12", StatusLine(engine.Snapshot{Score: 4, BestScore: 12}))
}
