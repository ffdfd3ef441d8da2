package engine

import "github.com/lixenwraith/snake/core"

// Collision classifies what a prospective head position hits
type Collision uint8

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "none"
	}
}

// CheckCollision tests head against the grid bounds and the pre-move body
// The tail cell still counts: moving into the cell the tail is vacating collides
func CheckCollision(head core.Point, body []core.Point, grid core.Grid) Collision {
	if !grid.Contains(head) {
		return CollisionWall
	}
	if core.ContainsPoint(body, head) {
		return CollisionSelf
	}
	return CollisionNone
}

// IsCollision is the boolean form of CheckCollision
func IsCollision(head core.Point, body []core.Point, grid core.Grid) bool {
	return CheckCollision(head, body, grid) != CollisionNone
}
