package engine

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/parameter"
	"github.com/lixenwraith/snake/status"
)

// BestScoreWriter is the write half of the score store
type BestScoreWriter interface {
	WriteBestScore(ctx context.Context, score int) error
}

// ScoreTracker issues fire-and-forget best score writes at game over
// It never updates the in-memory BestScore; only the store's change stream does
type ScoreTracker struct {
	store   BestScoreWriter
	logger  zerolog.Logger
	metrics *status.Registry
	timeout time.Duration

	wg sync.WaitGroup
}

// NewScoreTracker creates a tracker; a nil store disables persistence
func NewScoreTracker(store BestScoreWriter, logger zerolog.Logger, metrics *status.Registry) *ScoreTracker {
	return &ScoreTracker{
		store:   store,
		logger:  logger,
		metrics: metrics,
		timeout: parameter.ScoreWriteTimeout,
	}
}

// OnGameOver requests a write when score strictly beats best, reports whether it did
func (t *ScoreTracker) OnGameOver(score, best int) bool {
	if t.store == nil || score <= best {
		return false
	}

	t.wg.Add(1)
	core.Go(func() {
		defer t.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()

		if err := t.store.WriteBestScore(ctx, score); err != nil {
			t.metrics.ScoreWrites.WithLabelValues("failure").Inc()
			t.logger.Warn().
				Err(err).
				Int("score", score).
				Msg("best score write failed")
			return
		}
		t.metrics.ScoreWrites.WithLabelValues("success").Inc()
		t.logger.Info().
			Int("score", score).
			Int("previous", best).
			Msg("new best score persisted")
	})
	return true
}

// Wait blocks until in-flight writes finish
func (t *ScoreTracker) Wait() {
	t.wg.Wait()
}
