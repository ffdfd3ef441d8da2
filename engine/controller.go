package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/events"
	"github.com/lixenwraith/snake/parameter"
	"github.com/lixenwraith/snake/status"
)

// ScoreStore is the persistence collaborator owning the best score
type ScoreStore interface {
	BestScoreWriter
	// ReadBestScore emits the current best (0 if never written), then every write
	ReadBestScore(ctx context.Context) (<-chan int, error)
}

// ControllerConfig wires a Controller's collaborators; zero fields get defaults
type ControllerConfig struct {
	Grid    core.Grid     // default GridSize x GridSize
	Store   ScoreStore    // nil disables persistence
	Timers  TimerProvider // default real timers
	Food    FoodSpawner   // default RandomFood seeded from the clock
	Logger  zerolog.Logger
	Metrics *status.Registry // default private registry
}

// Controller owns one session and is its single writer
// Every producer (clock, input, HTTP, store watcher) enters through Dispatch
type Controller struct {
	grid    core.Grid
	store   ScoreStore
	food    FoodSpawner
	logger  zerolog.Logger
	metrics *status.Registry

	clock  *GameClock
	scores *ScoreTracker
	feed   *Broadcaster[Snapshot]

	mu      sync.Mutex
	session Session
	closed  bool
}

// NewController creates a controller holding a fresh IDLE session
func NewController(cfg ControllerConfig) *Controller {
	if cfg.Grid.Cells() == 0 {
		cfg.Grid = core.NewSquareGrid(parameter.GridSize)
	}
	if cfg.Timers == nil {
		cfg.Timers = NewTimeProvider()
	}
	if cfg.Food == nil {
		cfg.Food = NewRandomFood(uint64(time.Now().UnixNano()))
	}
	if cfg.Metrics == nil {
		cfg.Metrics = status.NewRegistry(nil)
	}

	c := &Controller{
		grid:    cfg.Grid,
		store:   cfg.Store,
		food:    cfg.Food,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
	c.scores = NewScoreTracker(cfg.Store, cfg.Logger, cfg.Metrics)
	c.clock = NewGameClock(cfg.Timers, c.clockTick)
	c.session = c.newSession(0)
	c.feed = NewBroadcaster(c.session.Snapshot())
	return c
}

// Dispatch applies one event; events are processed strictly one at a time
func (c *Controller) Dispatch(ev events.GameEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if c.apply(ev) {
		c.publishLocked()
	}
}

// Toggle starts an IDLE or PAUSED session and pauses a STARTED one
func (c *Controller) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	var ev events.GameEvent
	switch c.session.State {
	case StateIdle, StatePaused:
		ev = events.Start()
	case StateStarted:
		ev = events.Pause()
	default:
		return
	}
	if c.apply(ev) {
		c.publishLocked()
	}
}

// Snapshot returns the latest published snapshot
func (c *Controller) Snapshot() Snapshot {
	return c.feed.Latest()
}

// Subscribe returns a replay-latest snapshot stream and its cancel func
func (c *Controller) Subscribe() (<-chan Snapshot, func()) {
	return c.feed.Subscribe()
}

// Grid returns the playfield
func (c *Controller) Grid() core.Grid {
	return c.grid
}

// Run feeds the store's best score stream into the session until ctx ends
func (c *Controller) Run(ctx context.Context) error {
	if c.store == nil {
		<-ctx.Done()
		return nil
	}

	scores, err := c.store.ReadBestScore(ctx)
	if err != nil {
		return fmt.Errorf("read best score: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case score, ok := <-scores:
			if !ok {
				return nil
			}
			c.Dispatch(events.BestScoreChanged(score))
		}
	}
}

// Close disposes the session: the clock is disarmed, subscribers are closed,
// and in-flight best score writes are awaited
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.clock.Disarm()
	c.mu.Unlock()

	c.feed.Close()
	c.scores.Wait()
}

// clockTick is the GameClock callback, it enters through the serialized path
func (c *Controller) clockTick(generation uint64) {
	c.Dispatch(events.New(events.EventTick, events.TickPayload{Generation: generation}))
}

// apply runs the transition table, reports whether the session changed
// Caller holds c.mu
func (c *Controller) apply(ev events.GameEvent) bool {
	switch ev.Type {
	case events.EventStart:
		return c.handleStart()
	case events.EventPause:
		return c.handlePause()
	case events.EventRestart:
		return c.handleRestart()
	case events.EventDirectionChanged:
		return c.handleDirection(ev)
	case events.EventTick:
		return c.handleTick(ev)
	case events.EventBestScoreChanged:
		return c.handleBestScore(ev)
	}

	c.logger.Debug().
		Str("session", c.session.ID).
		Int("event", int(ev.Type)).
		Msg("unknown event ignored")
	return false
}

func (c *Controller) handleStart() bool {
	switch c.session.State {
	case StateIdle, StatePaused:
	default:
		return false
	}

	c.transition(StateStarted, events.EventStart)
	c.clock.Arm(TickDelay(len(c.session.Body)))
	return true
}

func (c *Controller) handlePause() bool {
	if c.session.State != StateStarted {
		return false
	}

	c.clock.Disarm()
	c.transition(StatePaused, events.EventPause)
	return true
}

func (c *Controller) handleRestart() bool {
	c.clock.Disarm()

	prev := c.session
	c.session = c.newSession(prev.BestScore)
	c.logger.Debug().
		Str("session", c.session.ID).
		Str("previous", prev.ID).
		Str("from", prev.State.String()).
		Msg("session restarted")
	return true
}

func (c *Controller) handleDirection(ev events.GameEvent) bool {
	dir, ok := ev.Payload.(core.Direction)
	if !ok {
		return false
	}
	if !AcceptDirection(c.session.Heading, dir) {
		c.metrics.DirectionRejected.Inc()
		return false
	}
	if dir == c.session.Direction {
		return false
	}

	c.session.Direction = dir
	return true
}

func (c *Controller) handleTick(ev events.GameEvent) bool {
	if p, ok := ev.Payload.(events.TickPayload); ok && !c.clock.Current(p.Generation) {
		return false
	}
	if c.session.State != StateStarted {
		return false
	}

	next, outcome := Advance(c.session, c.grid, c.food)
	next.Ticks++
	c.session = next

	c.metrics.Ticks.Inc()
	c.metrics.SnakeLength.Set(float64(len(next.Body)))
	if outcome == OutcomeGrew || outcome == OutcomeFilled {
		c.metrics.FoodEaten.Inc()
	}

	if !outcome.GameOver() {
		c.clock.Arm(TickDelay(len(next.Body)))
		return true
	}

	c.clock.Disarm()
	c.metrics.GameOvers.WithLabelValues(outcome.String()).Inc()
	persisted := c.scores.OnGameOver(next.Score(), next.BestScore)
	c.logger.Info().
		Str("session", next.ID).
		Str("cause", outcome.String()).
		Int("score", next.Score()).
		Int("best", next.BestScore).
		Bool("new_best", persisted).
		Uint64("ticks", next.Ticks).
		Msg("game over")
	return true
}

func (c *Controller) handleBestScore(ev events.GameEvent) bool {
	score, ok := ev.Payload.(int)
	if !ok || score == c.session.BestScore {
		return false
	}

	c.session.BestScore = score
	c.metrics.BestScore.Set(float64(score))
	return true
}

func (c *Controller) transition(to LifecycleState, cause events.EventType) {
	from := c.session.State
	c.session.State = to
	c.logger.Debug().
		Str("session", c.session.ID).
		Str("event", cause.String()).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("transition")
}

func (c *Controller) newSession(best int) Session {
	c.metrics.Sessions.Inc()
	c.metrics.SnakeLength.Set(1)
	return NewSession(c.grid, c.food, best)
}

func (c *Controller) publishLocked() {
	c.feed.Publish(c.session.Snapshot())
}
