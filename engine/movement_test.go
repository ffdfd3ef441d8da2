package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/snake/core"
)

var grid20 = core.NewSquareGrid(20)

// fixedFood always proposes p, failing the test if p overlaps the body
func fixedFood(t *testing.T, p core.Point) FoodSpawner {
	t.Helper()
	return FoodFunc(func(_ core.Grid, body []core.Point) (core.Point, bool) {
		if core.ContainsPoint(body, p) {
			t.Errorf("fixed food %v overlaps body %v", p, body)
		}
		return p, true
	})
}

func pts(coords ...int) []core.Point {
	out := make([]core.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, core.Point{X: coords[i], Y: coords[i+1]})
	}
	return out
}

func startedSession(body []core.Point, dir core.Direction, food core.Point) Session {
	return Session{ID: "test", State: StateStarted, Direction: dir, Heading: dir, Body: body, Food: food}
}

// ============================================================================
// Movement scenarios
// ============================================================================

func TestAdvanceShiftWithoutFood(t *testing.T) {
	food := core.Point{X: 10, Y: 10}
	s := startedSession(pts(6, 5), core.DirUp, food)

	next, outcome := Advance(s, grid20, fixedFood(t, core.Point{}))

	if outcome != OutcomeMoved {
		t.Errorf("outcome = %v, want moved", outcome)
	}
	if diff := cmp.Diff(pts(6, 4), next.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
	if next.Food != food {
		t.Errorf("food = %v, want unchanged %v", next.Food, food)
	}
	if next.State != StateStarted {
		t.Errorf("state = %v, want STARTED", next.State)
	}
}

func TestAdvanceGrowsOnFood(t *testing.T) {
	s := startedSession(pts(6, 5, 6, 6), core.DirUp, core.Point{X: 6, Y: 4})

	next, outcome := Advance(s, grid20, NewRandomFood(7))

	if outcome != OutcomeGrew {
		t.Fatalf("outcome = %v, want grew", outcome)
	}
	want := pts(6, 4, 6, 5, 6, 6)
	if diff := cmp.Diff(want, next.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
	if core.ContainsPoint(want, next.Food) {
		t.Errorf("new food %v lies on the body", next.Food)
	}
	if !grid20.Contains(next.Food) {
		t.Errorf("new food %v outside grid", next.Food)
	}
}

func TestAdvanceWallCollision(t *testing.T) {
	body := pts(0, 5, 1, 5)
	s := startedSession(body, core.DirLeft, core.Point{X: 10, Y: 10})

	next, outcome := Advance(s, grid20, fixedFood(t, core.Point{}))

	if outcome != OutcomeHitWall {
		t.Errorf("outcome = %v, want wall", outcome)
	}
	if next.State != StateGameOver {
		t.Errorf("state = %v, want GAME_OVER", next.State)
	}
	if diff := cmp.Diff(body, next.Body); diff != "" {
		t.Errorf("body changed on collision (-want +got):\n%s", diff)
	}
}

func TestAdvanceCommitsHeading(t *testing.T) {
	s := startedSession(pts(6, 5, 6, 6), core.DirUp, core.Point{X: 10, Y: 10})
	s.Direction = core.DirLeft

	next, outcome := Advance(s, grid20, fixedFood(t, core.Point{}))
	if outcome != OutcomeMoved {
		t.Fatalf("outcome = %v, want moved", outcome)
	}
	if next.Heading != core.DirLeft {
		t.Errorf("heading after move = %v, want left", next.Heading)
	}

	wall := startedSession(pts(0, 5, 1, 5), core.DirUp, core.Point{X: 10, Y: 10})
	wall.Direction = core.DirLeft
	crashed, outcome := Advance(wall, grid20, fixedFood(t, core.Point{}))
	if outcome != OutcomeHitWall {
		t.Fatalf("outcome = %v, want wall", outcome)
	}
	if crashed.Heading != core.DirUp {
		t.Errorf("heading after crash = %v, want unchanged up", crashed.Heading)
	}
}

func TestAdvanceBoundaryEdges(t *testing.T) {
	tests := []struct {
		name string
		head core.Point
		dir  core.Direction
		want Outcome
	}{
		{"top edge up", core.Point{X: 3, Y: 0}, core.DirUp, OutcomeHitWall},
		{"bottom edge down", core.Point{X: 3, Y: 19}, core.DirDown, OutcomeHitWall},
		{"right edge right", core.Point{X: 19, Y: 3}, core.DirRight, OutcomeHitWall},
		{"left edge left", core.Point{X: 0, Y: 3}, core.DirLeft, OutcomeHitWall},
		{"onto row zero", core.Point{X: 3, Y: 1}, core.DirUp, OutcomeMoved},
		{"onto column zero", core.Point{X: 1, Y: 3}, core.DirLeft, OutcomeMoved},
		{"onto last column", core.Point{X: 18, Y: 3}, core.DirRight, OutcomeMoved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := startedSession([]core.Point{tt.head}, tt.dir, core.Point{X: 10, Y: 10})
			if _, got := Advance(s, grid20, fixedFood(t, core.Point{})); got != tt.want {
				t.Errorf("outcome = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdvanceSelfCollision(t *testing.T) {
	// Head at (5,5) turning down into (5,6) which is body
	body := pts(5, 5, 6, 5, 6, 6, 5, 6, 4, 6)
	s := startedSession(body, core.DirDown, core.Point{X: 10, Y: 10})

	next, outcome := Advance(s, grid20, fixedFood(t, core.Point{}))
	if outcome != OutcomeHitSelf {
		t.Errorf("outcome = %v, want self", outcome)
	}
	if diff := cmp.Diff(body, next.Body); diff != "" {
		t.Errorf("body changed on collision (-want +got):\n%s", diff)
	}
}

// TestAdvanceVacatingTailCollides checks against the pre-move body
func TestAdvanceVacatingTailCollides(t *testing.T) {
	// 2x2 loop: head (5,5), tail (6,5); moving right enters the tail cell
	body := pts(5, 5, 5, 6, 6, 6, 6, 5)
	s := startedSession(body, core.DirRight, core.Point{X: 10, Y: 10})

	_, outcome := Advance(s, grid20, fixedFood(t, core.Point{}))
	if outcome != OutcomeHitSelf {
		t.Errorf("outcome = %v, want self", outcome)
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	body := pts(6, 5, 6, 6, 6, 7)
	orig := append([]core.Point(nil), body...)
	s := startedSession(body, core.DirUp, core.Point{X: 6, Y: 4})

	Advance(s, grid20, fixedFood(t, core.Point{X: 0, Y: 0}))

	if diff := cmp.Diff(orig, body); diff != "" {
		t.Errorf("input body mutated (-want +got):\n%s", diff)
	}
}

func TestAdvanceFilledBoardEnds(t *testing.T) {
	g := core.Grid{Width: 2, Height: 1}
	s := startedSession(pts(0, 0), core.DirRight, core.Point{X: 1, Y: 0})

	next, outcome := Advance(s, g, NewRandomFood(1))
	if outcome != OutcomeFilled {
		t.Fatalf("outcome = %v, want filled", outcome)
	}
	if next.State != StateGameOver || len(next.Body) != 2 {
		t.Errorf("state=%v len=%d, want GAME_OVER len 2", next.State, len(next.Body))
	}
}

// ============================================================================
// Collision, guard, food
// ============================================================================

func TestCheckCollision(t *testing.T) {
	body := pts(4, 4, 4, 5)
	tests := []struct {
		head core.Point
		want Collision
	}{
		{core.Point{X: -1, Y: 5}, CollisionWall},
		{core.Point{X: 20, Y: 5}, CollisionWall},
		{core.Point{X: 4, Y: 5}, CollisionSelf},
		{core.Point{X: 4, Y: 3}, CollisionNone},
	}

	for _, tt := range tests {
		if got := CheckCollision(tt.head, body, grid20); got != tt.want {
			t.Errorf("CheckCollision(%v) = %v, want %v", tt.head, got, tt.want)
		}
		if got := IsCollision(tt.head, body, grid20); got != (tt.want != CollisionNone) {
			t.Errorf("IsCollision(%v) = %v", tt.head, got)
		}
	}
}

func TestAcceptDirection(t *testing.T) {
	all := []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

	for _, cur := range all {
		for _, req := range all {
			want := req != cur.Opposite()
			if got := AcceptDirection(cur, req); got != want {
				t.Errorf("AcceptDirection(%v, %v) = %v, want %v", cur, req, got, want)
			}
		}
	}
	if AcceptDirection(core.DirUp, core.Direction(9)) {
		t.Error("invalid direction accepted")
	}
}

func TestRandomFoodAvoidsBody(t *testing.T) {
	g := core.Grid{Width: 3, Height: 3}
	body := pts(0, 0, 1, 0, 2, 0, 0, 1, 2, 1, 0, 2, 1, 2, 2, 2)
	food := NewRandomFood(42)

	for i := 0; i < 50; i++ {
		p, ok := food.Spawn(g, body)
		if !ok {
			t.Fatal("Spawn reported no free cell")
		}
		if p != (core.Point{X: 1, Y: 1}) {
			t.Fatalf("Spawn = %v, want the only free cell (1,1)", p)
		}
	}

	full := append(body, core.Point{X: 1, Y: 1})
	if _, ok := food.Spawn(g, full); ok {
		t.Error("Spawn on a full grid reported ok")
	}
}

func TestRandomFoodDeterministic(t *testing.T) {
	a, b := NewRandomFood(99), NewRandomFood(99)
	body := pts(6, 5)

	for i := 0; i < 20; i++ {
		pa, _ := a.Spawn(grid20, body)
		pb, _ := b.Spawn(grid20, body)
		if pa != pb {
			t.Fatalf("draw %d differs: %v vs %v", i, pa, pb)
		}
	}
}
