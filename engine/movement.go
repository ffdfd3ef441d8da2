package engine

import "github.com/lixenwraith/snake/core"

// Outcome describes what one Advance did
type Outcome uint8

const (
	OutcomeMoved   Outcome = iota // shifted, length unchanged
	OutcomeGrew                   // ate food, length +1, food relocated
	OutcomeHitWall                // head left the grid, body unchanged
	OutcomeHitSelf                // head entered the body, body unchanged
	OutcomeFilled                 // grew onto the last free cell, nowhere left for food
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeGrew:
		return "grew"
	case OutcomeHitWall:
		return "wall"
	case OutcomeHitSelf:
		return "self"
	case OutcomeFilled:
		return "filled"
	default:
		return "unknown"
	}
}

// GameOver reports whether the outcome ends the session
func (o Outcome) GameOver() bool {
	return o == OutcomeHitWall || o == OutcomeHitSelf || o == OutcomeFilled
}

// Advance moves the snake one cell in its current direction
// The input session is never modified
func Advance(s Session, grid core.Grid, food FoodSpawner) (Session, Outcome) {
	next := s
	newHead := s.Head().Step(s.Direction)

	switch CheckCollision(newHead, s.Body, grid) {
	case CollisionWall:
		next.State = StateGameOver
		return next, OutcomeHitWall
	case CollisionSelf:
		next.State = StateGameOver
		return next, OutcomeHitSelf
	}

	next.Heading = s.Direction

	body := make([]core.Point, 0, len(s.Body)+1)
	body = append(body, newHead)
	body = append(body, s.Body...)

	if newHead == s.Food {
		next.Body = body
		f, ok := food.Spawn(grid, body)
		if !ok {
			next.State = StateGameOver
			return next, OutcomeFilled
		}
		next.Food = f
		return next, OutcomeGrew
	}

	next.Body = body[:len(body)-1]
	return next, OutcomeMoved
}
