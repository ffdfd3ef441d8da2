package audio

import "github.com/lixenwraith/snake/engine"

// Cue is an audible reaction to a session change
type Cue uint8

const (
	CueNone Cue = iota
	CueEat
	CueGameOver
	CueStart
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueGameOver:
		return "game_over"
	case CueStart:
		return "start"
	default:
		return "none"
	}
}

// Detect derives the cue for the transition prev → next
// Snapshots of different sessions never cue
func Detect(prev, next engine.Snapshot) Cue {
	if prev.SessionID != next.SessionID {
		return CueNone
	}
	switch {
	case next.GameOver && !prev.GameOver:
		return CueGameOver
	case next.Score > prev.Score:
		return CueEat
	case next.State == engine.StateStarted && prev.State == engine.StateIdle:
		return CueStart
	}
	return CueNone
}
