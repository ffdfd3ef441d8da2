package events

import (
	"time"
)

// EventType discriminates controller events
// The set is closed, the controller handles every member in one switch
type EventType int

const (
	// EventStart begins or resumes play
	// Trigger: toggle intent, POST /v1/events | Payload: nil
	EventStart EventType = iota

	// EventPause suspends play
	// Trigger: toggle intent | Payload: nil
	EventPause

	// EventRestart discards the session and creates a fresh IDLE one
	// Trigger: restart intent | Payload: nil
	EventRestart

	// EventDirectionChanged requests a new heading
	// Trigger: directional intent | Payload: core.Direction
	EventDirectionChanged

	// EventTick advances the simulation one cell
	// Trigger: GameClock cycle | Payload: TickPayload (nil for manual ticks)
	EventTick

	// EventBestScoreChanged carries the score store's change notification
	// Trigger: Controller.Run watcher | Payload: int
	EventBestScoreChanged
)

var eventTypeNames = map[EventType]string{
	EventStart:            "Start",
	EventPause:            "Pause",
	EventRestart:          "Restart",
	EventDirectionChanged: "DirectionChanged",
	EventTick:             "Tick",
	EventBestScoreChanged: "BestScoreChanged",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent represents a single controller event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}

// New stamps an event of type t with payload
func New(t EventType, payload any) GameEvent {
	return GameEvent{Type: t, Payload: payload, Timestamp: time.Now()}
}
