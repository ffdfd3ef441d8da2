// Package store persists the single best score value and streams its changes
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/config"
)

// ScoreStore persists the best score and exposes it as a change stream
type ScoreStore interface {
	// ReadBestScore emits the current value (0 if never written), then every change
	// The channel closes when ctx ends or the store closes
	ReadBestScore(ctx context.Context) (<-chan int, error)

	// WriteBestScore overwrites the stored value
	WriteBestScore(ctx context.Context, score int) error

	Close() error
}

var (
	// ErrUnknownBackend is returned by Open for an unsupported backend name
	ErrUnknownBackend = errors.New("unknown store backend")

	// ErrClosed is returned by operations on a closed store
	ErrClosed = errors.New("store closed")

	// ErrInvalidScore is returned when writing a negative score
	ErrInvalidScore = errors.New("invalid score")
)

// Open constructs the backend named by cfg.Backend
func Open(cfg config.StoreConfig, logger zerolog.Logger) (ScoreStore, error) {
	logger = logger.With().Str("backend", cfg.Backend).Logger()

	switch cfg.Backend {
	case config.BackendMemory, "":
		return NewMemory(0), nil
	case config.BackendFile:
		return OpenFile(cfg.Path, logger)
	case config.BackendSQLite:
		return OpenSQLite(cfg.Path, logger)
	case config.BackendBadger:
		return OpenBadger(cfg.Path, logger)
	case config.BackendRedis:
		return OpenRedis(cfg.Redis, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

func validateScore(score int) error {
	if score < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidScore, score)
	}
	return nil
}

func parseScore(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse stored score %q: %w", raw, err)
	}
	return v, nil
}
