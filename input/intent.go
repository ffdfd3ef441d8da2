package input

import (
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/events"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Steering
	IntentUp    // k, w, Up arrow
	IntentDown  // j, s, Down arrow
	IntentLeft  // h, a, Left arrow
	IntentRight // l, d, Right arrow

	// Lifecycle
	IntentToggle  // Space, p
	IntentRestart // r

	// System-level, never reaches the controller
	IntentQuit // q, Esc, Ctrl+C
)

func (t IntentType) String() string {
	switch t {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentToggle:
		return "toggle"
	case IntentRestart:
		return "restart"
	case IntentQuit:
		return "quit"
	default:
		return "none"
	}
}

// Direction returns the steering direction of a steering intent
func (t IntentType) Direction() (core.Direction, bool) {
	switch t {
	case IntentUp:
		return core.DirUp, true
	case IntentDown:
		return core.DirDown, true
	case IntentLeft:
		return core.DirLeft, true
	case IntentRight:
		return core.DirRight, true
	}
	return 0, false
}

// Controller is the part of engine.Controller an input surface drives
type Controller interface {
	Dispatch(ev events.GameEvent)
	Toggle()
}

// Apply forwards the intent to ctrl, reports false for intents the controller never sees
// Toggle is resolved by the controller against its state at processing time
func (t IntentType) Apply(ctrl Controller) bool {
	if dir, ok := t.Direction(); ok {
		ctrl.Dispatch(events.DirectionChanged(dir))
		return true
	}

	switch t {
	case IntentToggle:
		ctrl.Toggle()
		return true
	case IntentRestart:
		ctrl.Dispatch(events.Restart())
		return true
	}
	return false
}
