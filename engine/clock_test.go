package engine

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTickDelay(t *testing.T) {
	tests := []struct {
		length int
		want   time.Duration
	}{
		{1, 700 * time.Millisecond},
		{3, 700 * time.Millisecond},
		{5, 700 * time.Millisecond},
		{6, 500 * time.Millisecond},
		{7, 500 * time.Millisecond},
		{10, 500 * time.Millisecond},
		{11, 300 * time.Millisecond},
		{12, 300 * time.Millisecond},
		{400, 300 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := TickDelay(tt.length); got != tt.want {
			t.Errorf("TickDelay(%d) = %v, want %v", tt.length, got, tt.want)
		}
	}
}

func TestGameClockFiresAfterDelay(t *testing.T) {
	tp := NewMockTimeProvider(epoch)
	var fired []uint64
	clock := NewGameClock(tp, func(gen uint64) { fired = append(fired, gen) })

	gen := clock.Arm(700 * time.Millisecond)

	tp.Advance(699 * time.Millisecond)
	if len(fired) != 0 {
		t.Fatalf("fired early: %v", fired)
	}

	tp.Advance(time.Millisecond)
	if len(fired) != 1 || fired[0] != gen {
		t.Fatalf("fired = %v, want [%d]", fired, gen)
	}
	if !clock.Current(gen) {
		t.Error("generation should stay current until re-armed or disarmed")
	}
}

func TestGameClockDisarm(t *testing.T) {
	tp := NewMockTimeProvider(epoch)
	fired := 0
	clock := NewGameClock(tp, func(uint64) { fired++ })

	gen := clock.Arm(300 * time.Millisecond)
	clock.Disarm()

	tp.Advance(time.Second)
	if fired != 0 {
		t.Errorf("fired %d times after disarm", fired)
	}
	if clock.Armed() || clock.Current(gen) {
		t.Error("clock still armed after Disarm")
	}
	if tp.Pending() != 0 {
		t.Errorf("pending timers = %d, want 0", tp.Pending())
	}
}

// TestGameClockSingleFlight verifies re-arming replaces the pending cycle
func TestGameClockSingleFlight(t *testing.T) {
	tp := NewMockTimeProvider(epoch)
	var fired []uint64
	clock := NewGameClock(tp, func(gen uint64) { fired = append(fired, gen) })

	first := clock.Arm(500 * time.Millisecond)
	second := clock.Arm(500 * time.Millisecond)

	if tp.Pending() != 1 {
		t.Fatalf("pending timers = %d, want 1", tp.Pending())
	}
	if clock.Current(first) {
		t.Error("first generation still current")
	}

	tp.Advance(2 * time.Second)
	if len(fired) != 1 || fired[0] != second {
		t.Errorf("fired = %v, want [%d]", fired, second)
	}
}

// TestGameClockStaleCallbackIgnored simulates a cycle already fired when disarmed
func TestGameClockStaleCallbackIgnored(t *testing.T) {
	tp := NewMockTimeProvider(epoch)
	fired := 0
	clock := NewGameClock(tp, func(uint64) { fired++ })

	gen := clock.Arm(100 * time.Millisecond)
	clock.Disarm()
	clock.fire(gen)

	if fired != 0 {
		t.Errorf("stale cycle delivered %d ticks", fired)
	}
}

func TestMockTimeProviderOrdering(t *testing.T) {
	tp := NewMockTimeProvider(epoch)
	var order []string

	tp.AfterFunc(300*time.Millisecond, func() { order = append(order, "c") })
	tp.AfterFunc(100*time.Millisecond, func() {
		order = append(order, "a")
		tp.AfterFunc(100*time.Millisecond, func() { order = append(order, "b") })
	})

	tp.Advance(time.Second)

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if got := tp.Now().Sub(epoch); got != time.Second {
		t.Errorf("Now advanced %v, want 1s", got)
	}
}
