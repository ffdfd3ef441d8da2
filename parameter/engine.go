package parameter

import "time"

// Input plumbing
const (
	// IntentQueueSize is the fixed capacity of the terminal intent ring buffer
	IntentQueueSize = 256

	// IntentBufferMask is the bitmask for fast modulo operations (256 - 1)
	IntentBufferMask = 255
)

// Frame loop
const (
	// FrameUpdateInterval is the terminal redraw / input drain interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Score persistence
const (
	// BestScoreKey is the single key every store backend persists the best score under
	BestScoreKey = "user_score_key"

	// BestScoreChannel is the redis pub/sub channel announcing best score writes
	BestScoreChannel = "user_score_key:changed"

	// ScoreWriteTimeout bounds one fire-and-forget best score write
	ScoreWriteTimeout = 5 * time.Second
)
