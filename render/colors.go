package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions - dark/normal/bright levels
var (
	RgbSnakeHead = tcell.NewRGBColor(50, 255, 50) // Bright Green
	RgbSnakeBody = tcell.NewRGBColor(0, 200, 0)   // Normal Green
	RgbSnakeDead = tcell.NewRGBColor(180, 50, 50) // Dark Red

	RgbFood = tcell.NewRGBColor(255, 80, 80) // Normal Red

	RgbBorder     = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbGameOver   = tcell.NewRGBColor(255, 120, 120) // Bright Red
	RgbLabel      = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
)

// Styles groups the styles the terminal surface draws with
type Styles struct {
	Head     tcell.Style
	Body     tcell.Style
	Dead     tcell.Style
	Food     tcell.Style
	Border   tcell.Style
	Status   tcell.Style
	Label    tcell.Style
	GameOver tcell.Style
	Empty    tcell.Style
}

// DefaultStyles returns the default palette
func DefaultStyles() Styles {
	base := tcell.StyleDefault.Background(RgbBackground)
	return Styles{
		Head:     base.Foreground(RgbSnakeHead).Bold(true),
		Body:     base.Foreground(RgbSnakeBody),
		Dead:     base.Foreground(RgbSnakeDead),
		Food:     base.Foreground(RgbFood).Bold(true),
		Border:   base.Foreground(RgbBorder),
		Status:   base.Foreground(RgbStatusBar),
		Label:    base.Foreground(RgbLabel).Reverse(true),
		GameOver: base.Foreground(RgbGameOver).Bold(true),
		Empty:    base,
	}
}
