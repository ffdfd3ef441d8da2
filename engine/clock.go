package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/parameter"
)

// TickDelay returns the cycle delay for a snake of the given length
func TickDelay(length int) time.Duration {
	switch {
	case length <= parameter.TickSlowMaxLength:
		return parameter.TickDelaySlow
	case length <= parameter.TickMediumMaxLength:
		return parameter.TickDelayMedium
	default:
		return parameter.TickDelayFast
	}
}

// GameClock is a cancellable single-flight tick scheduler
// At most one cycle is pending; each arming gets a new generation and the
// receiver drops ticks whose generation is no longer current
type GameClock struct {
	timers TimerProvider
	onTick func(generation uint64)

	mu         sync.Mutex
	generation uint64
	armed      bool
	pending    Timer
}

// NewGameClock creates a disarmed clock that reports cycles to onTick
func NewGameClock(timers TimerProvider, onTick func(generation uint64)) *GameClock {
	return &GameClock{
		timers: timers,
		onTick: onTick,
	}
}

// Arm cancels any pending cycle and schedules one after delay
func (c *GameClock) Arm(delay time.Duration) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.generation++
	c.armed = true
	gen := c.generation
	c.pending = c.timers.AfterFunc(delay, func() { c.fire(gen) })
	return gen
}

// Disarm cancels the pending cycle and invalidates any cycle already in flight
func (c *GameClock) Disarm() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.generation++
	c.armed = false
}

// Armed reports whether a cycle is scheduled
func (c *GameClock) Armed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.armed
}

// Current reports whether generation belongs to the live arming
func (c *GameClock) Current(generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.armed && c.generation == generation
}

func (c *GameClock) stopLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

// fire runs on the timer goroutine; panics go to the crash handler like core.Go
func (c *GameClock) fire(generation uint64) {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if !c.Current(generation) {
		return
	}
	c.onTick(generation)
}
