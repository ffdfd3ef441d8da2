package events

import (
	"testing"

	"github.com/lixenwraith/snake/core"
)

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		t    EventType
		want string
	}{
		{EventStart, "Start"},
		{EventPause, "Pause"},
		{EventRestart, "Restart"},
		{EventDirectionChanged, "DirectionChanged"},
		{EventTick, "Tick"},
		{EventBestScoreChanged, "BestScoreChanged"},
		{EventType(999), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestConstructorsPayloads(t *testing.T) {
	if ev := Tick(); ev.Type != EventTick || ev.Payload != nil {
		t.Errorf("Tick() = %v %v, want manual tick without payload", ev.Type, ev.Payload)
	}
	if ev := DirectionChanged(core.DirLeft); ev.Type != EventDirectionChanged || ev.Payload != core.DirLeft {
		t.Errorf("DirectionChanged(left) = %v %v", ev.Type, ev.Payload)
	}
	if ev := BestScoreChanged(12); ev.Type != EventBestScoreChanged || ev.Payload != 12 {
		t.Errorf("BestScoreChanged(12) = %v %v", ev.Type, ev.Payload)
	}
	if ev := Start(); ev.Timestamp.IsZero() {
		t.Error("event not timestamped")
	}
}
