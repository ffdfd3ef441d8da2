package events

import "github.com/lixenwraith/snake/core"

// TickPayload tags a clock-originated tick with the arming generation
// Ticks whose generation is no longer current are dropped
type TickPayload struct {
	Generation uint64
}

// Start returns an EventStart event
func Start() GameEvent { return New(EventStart, nil) }

// Pause returns an EventPause event
func Pause() GameEvent { return New(EventPause, nil) }

// Restart returns an EventRestart event
func Restart() GameEvent { return New(EventRestart, nil) }

// Tick returns a manual EventTick without generation
func Tick() GameEvent { return New(EventTick, nil) }

// DirectionChanged returns an EventDirectionChanged event for d
func DirectionChanged(d core.Direction) GameEvent {
	return New(EventDirectionChanged, d)
}

// BestScoreChanged returns an EventBestScoreChanged event for score
func BestScoreChanged(score int) GameEvent {
	return New(EventBestScoreChanged, score)
}
