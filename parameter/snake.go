package parameter

import "time"

// Playfield
const (
	// GridSize is the side of the square grid, legal cells are [0, GridSize-1]
	GridSize = 20
)

// Initial session
const (
	SnakeStartX = 6
	SnakeStartY = 5
)

// Tick cadence by snake length
const (
	TickDelaySlow   = 700 * time.Millisecond // length <= TickSlowMaxLength
	TickDelayMedium = 500 * time.Millisecond // length <= TickMediumMaxLength
	TickDelayFast   = 300 * time.Millisecond

	TickSlowMaxLength   = 5
	TickMediumMaxLength = 10
)

// Food placement
const (
	// FoodSampleAttempts bounds rejection sampling before falling back to a free-cell scan
	FoodSampleAttempts = 64
)
