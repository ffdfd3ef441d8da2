package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/parameter"
)

// LifecycleState is the session phase
type LifecycleState uint8

const (
	StateIdle LifecycleState = iota
	StateStarted
	StatePaused
	StateGameOver
)

func (s LifecycleState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateStarted:
		return "STARTED"
	case StatePaused:
		return "PAUSED"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Label is the toggle caption a render surface shows for the state
func (s LifecycleState) Label() string {
	switch s {
	case StateStarted:
		return "Pause"
	case StatePaused:
		return "Resume"
	case StateGameOver:
		return "Restart"
	default:
		return "Start"
	}
}

// MarshalText encodes the state name
func (s LifecycleState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Session is the mutable aggregate owned by the Controller
// Body is treated as immutable once committed; Advance always builds a new slice
type Session struct {
	ID        string
	State     LifecycleState
	Direction core.Direction // pending heading, applied on the next tick
	Heading   core.Direction // heading of the last applied move, reversals are judged against it
	Body      []core.Point   // head at index 0
	Food      core.Point
	BestScore int
	Ticks     uint64
}

// NewSession returns a fresh IDLE session carrying best
func NewSession(grid core.Grid, food FoodSpawner, best int) Session {
	start := core.Point{X: parameter.SnakeStartX, Y: parameter.SnakeStartY}
	if !grid.Contains(start) {
		start = core.Point{X: grid.Width / 2, Y: grid.Height / 2}
	}

	s := Session{
		ID:        uuid.NewString(),
		State:     StateIdle,
		Direction: core.DirUp,
		Heading:   core.DirUp,
		Body:      []core.Point{start},
		BestScore: best,
	}
	if f, ok := food.Spawn(grid, s.Body); ok {
		s.Food = f
	}
	return s
}

// Head returns the first body cell
func (s Session) Head() core.Point {
	return s.Body[0]
}

// Score is the number of food items eaten
func (s Session) Score() int {
	return len(s.Body) - 1
}

// Snapshot is an immutable read-only view of a Session for render surfaces
type Snapshot struct {
	SessionID string         `json:"session_id"`
	State     LifecycleState `json:"state"`
	Label     string         `json:"label"`
	Direction core.Direction `json:"direction"`
	Heading   core.Direction `json:"heading"`
	Body      []core.Point   `json:"body"`
	Food      core.Point     `json:"food"`
	Score     int            `json:"score"`
	BestScore int            `json:"best_score"`
	GameOver  bool           `json:"game_over"`
	Ticks     uint64         `json:"ticks"`
}

// Snapshot copies the session into a Snapshot
func (s Session) Snapshot() Snapshot {
	body := make([]core.Point, len(s.Body))
	copy(body, s.Body)

	return Snapshot{
		SessionID: s.ID,
		State:     s.State,
		Label:     s.State.Label(),
		Direction: s.Direction,
		Heading:   s.Heading,
		Body:      body,
		Food:      s.Food,
		Score:     s.Score(),
		BestScore: s.BestScore,
		GameOver:  s.State == StateGameOver,
		Ticks:     s.Ticks,
	}
}
