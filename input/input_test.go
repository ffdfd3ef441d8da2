package input

import (
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/events"
	"github.com/lixenwraith/snake/parameter"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestDefaultKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"arrow up", specialKey(tcell.KeyUp), IntentUp},
		{"arrow down", specialKey(tcell.KeyDown), IntentDown},
		{"arrow left", specialKey(tcell.KeyLeft), IntentLeft},
		{"arrow right", specialKey(tcell.KeyRight), IntentRight},
		{"vi k", runeKey('k'), IntentUp},
		{"vi j", runeKey('j'), IntentDown},
		{"vi h", runeKey('h'), IntentLeft},
		{"vi l", runeKey('l'), IntentRight},
		{"wasd w", runeKey('w'), IntentUp},
		{"wasd upper W", runeKey('W'), IntentUp},
		{"wasd d", runeKey('d'), IntentRight},
		{"space", runeKey(' '), IntentToggle},
		{"p", runeKey('p'), IntentToggle},
		{"r", runeKey('r'), IntentRestart},
		{"q", runeKey('q'), IntentQuit},
		{"esc", specialKey(tcell.KeyEscape), IntentQuit},
		{"ctrl-c", specialKey(tcell.KeyCtrlC), IntentQuit},
		{"unbound rune", runeKey('z'), IntentNone},
		{"unbound key", specialKey(tcell.KeyF5), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kt.Lookup(tt.ev))
		})
	}
}

// recorder captures what an input surface forwards
type recorder struct {
	events  []events.GameEvent
	toggles int
}

func (r *recorder) Dispatch(ev events.GameEvent) { r.events = append(r.events, ev) }
func (r *recorder) Toggle()                      { r.toggles++ }

func TestIntentApply(t *testing.T) {
	r := &recorder{}

	assert.True(t, IntentLeft.Apply(r))
	assert.True(t, IntentRestart.Apply(r))
	assert.True(t, IntentToggle.Apply(r))
	assert.False(t, IntentQuit.Apply(r))
	assert.False(t, IntentNone.Apply(r))

	require.Len(t, r.events, 2)
	assert.Equal(t, events.EventDirectionChanged, r.events[0].Type)
	assert.Equal(t, core.DirLeft, r.events[0].Payload)
	assert.Equal(t, events.EventRestart, r.events[1].Type)
	assert.Equal(t, 1, r.toggles)
}

func TestIntentQueueOrderAndFilter(t *testing.T) {
	q := NewIntentQueue()

	q.Push(IntentLeft)
	q.Push(IntentNone)
	q.Push(IntentToggle)
	q.Push(IntentQuit)
	q.Push(IntentRestart)

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []IntentType{IntentLeft, IntentToggle, IntentRestart}, q.Pending())
	assert.Nil(t, q.Pending())
	assert.Equal(t, 0, q.Len())
}

func TestIntentQueueConcurrentPush(t *testing.T) {
	q := NewIntentQueue()
	producers, perProducer := 8, 16

	var wg sync.WaitGroup
	wg.Add(producers)
	for i := 0; i < producers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				q.Push(IntentUp)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, q.Pending(), producers*perProducer)
}

func TestIntentQueueOverflowDropsOldest(t *testing.T) {
	q := NewIntentQueue()
	q.Push(IntentRestart)
	for i := 0; i < parameter.IntentQueueSize; i++ {
		q.Push(IntentDown)
	}

	assert.Equal(t, parameter.IntentQueueSize, q.Len())
	got := q.Pending()
	require.Len(t, got, parameter.IntentQueueSize)
	assert.NotContains(t, got, IntentRestart)
}

func TestIntentQueueDrainForwards(t *testing.T) {
	q := NewIntentQueue()
	r := &recorder{}

	q.Push(IntentRight)
	q.Push(IntentToggle)
	q.Push(IntentToggle)

	assert.Equal(t, 3, q.Drain(r))
	require.Len(t, r.events, 1)
	assert.Equal(t, core.DirRight, r.events[0].Payload)
	assert.Equal(t, 2, r.toggles)
	assert.Equal(t, 0, q.Drain(r))
}

// Two toggle presses inside one frame must start then pause
func TestIntentQueueDoubleToggleInOneFrame(t *testing.T) {
	ctrl := engine.NewController(engine.ControllerConfig{
		Grid:   core.NewSquareGrid(20),
		Logger: zerolog.Nop(),
	})
	defer ctrl.Close()

	q := NewIntentQueue()
	q.Push(IntentToggle)
	q.Push(IntentToggle)
	q.Drain(ctrl)

	assert.Equal(t, engine.StatePaused, ctrl.Snapshot().State)

	q.Push(IntentToggle)
	q.Drain(ctrl)
	assert.Equal(t, engine.StateStarted, ctrl.Snapshot().State)
}

func TestLoadKeyBindingsAndMerge(t *testing.T) {
	override, err := LoadKeyBindings(map[string]string{
		"i":     "up",
		"Space": "restart",
		"Tab":   "toggle",
		"q":     "none",
		"K":     "Down",
	})
	require.NoError(t, err)

	kt := MergeKeyTable(DefaultKeyTable(), override)

	assert.Equal(t, IntentUp, kt.Lookup(runeKey('i')))
	assert.Equal(t, IntentRestart, kt.Lookup(runeKey(' ')))
	assert.Equal(t, IntentToggle, kt.Lookup(specialKey(tcell.KeyTab)))
	assert.Equal(t, IntentNone, kt.Lookup(runeKey('q')))
	assert.Equal(t, IntentDown, kt.Lookup(runeKey('k')))

	// Defaults untouched
	assert.Equal(t, IntentQuit, DefaultKeyTable().Lookup(runeKey('q')))
}

func TestLoadKeyBindingsErrors(t *testing.T) {
	_, err := LoadKeyBindings(map[string]string{"x": "jump"})
	assert.ErrorContains(t, err, "unknown action")

	_, err = LoadKeyBindings(map[string]string{"Hyper-Z": "up"})
	assert.ErrorContains(t, err, "unknown key name")
}
