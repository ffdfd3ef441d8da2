package core

import (
	"testing"
	"time"
)

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Opposite(); got != tt.want {
				t.Errorf("%v.Opposite() = %v, want %v", tt.dir, got, tt.want)
			}
			if got := tt.dir.Opposite().Opposite(); got != tt.dir {
				t.Errorf("double Opposite() = %v, want %v", got, tt.dir)
			}
		})
	}
}

func TestPointStep(t *testing.T) {
	origin := Point{X: 6, Y: 5}
	tests := []struct {
		dir  Direction
		want Point
	}{
		{DirUp, Point{6, 4}},
		{DirDown, Point{6, 6}},
		{DirLeft, Point{5, 5}},
		{DirRight, Point{7, 5}},
		{Direction(42), Point{6, 5}},
	}

	for _, tt := range tests {
		if got := origin.Step(tt.dir); got != tt.want {
			t.Errorf("Step(%v) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, in := range []string{"up", "UP", " Left ", "right", "Down"} {
		if _, err := ParseDirection(in); err != nil {
			t.Errorf("ParseDirection(%q) error: %v", in, err)
		}
	}
	if d, _ := ParseDirection("left"); d != DirLeft {
		t.Errorf("ParseDirection(left) = %v", d)
	}
	if _, err := ParseDirection("diagonal"); err == nil {
		t.Error("expected error for diagonal")
	}
}

func TestGridContains(t *testing.T) {
	g := NewSquareGrid(20)
	inside := []Point{{0, 0}, {19, 19}, {0, 19}, {10, 3}}
	outside := []Point{{-1, 5}, {20, 0}, {5, -1}, {5, 20}}

	for _, p := range inside {
		if !g.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	for _, p := range outside {
		if g.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
	if g.Cells() != 400 {
		t.Errorf("Cells() = %d, want 400", g.Cells())
	}
}

func TestGoRoutesPanicToHandler(t *testing.T) {
	got := make(chan any, 1)
	SetCrashHandler(func(r any) { got <- r })
	defer SetCrashHandler(nil)

	Go(func() { panic("boom") })

	select {
	case r := <-got:
		if r != "boom" {
			t.Errorf("handler got %v, want boom", r)
		}
	case <-time.After(time.Second):
		t.Fatal("crash handler not invoked")
	}
}
