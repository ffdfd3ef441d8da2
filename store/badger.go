package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/parameter"
)

// Badger persists the best score in an embedded badger key-value store
type Badger struct {
	db     *badger.DB
	n      *notifier
	logger zerolog.Logger
}

// OpenBadger opens the database directory at path; an empty path runs in memory
func OpenBadger(path string, logger zerolog.Logger) (*Badger, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: open: %w", err)
	}

	b := &Badger{db: db, logger: logger}
	current, err := b.load()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	b.n = newNotifier(current)

	logger.Info().Str("path", path).Int("best", current).Msg("score store opened")
	return b, nil
}

func (b *Badger) load() (int, error) {
	var v int
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(parameter.BestScoreKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			parsed, err := parseScore(string(val))
			v = parsed
			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("badger: read best score: %w", err)
	}
	return v, nil
}

func (b *Badger) ReadBestScore(ctx context.Context) (<-chan int, error) {
	return b.n.subscribe(ctx)
}

func (b *Badger) WriteBestScore(ctx context.Context, score int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateScore(score); err != nil {
		return err
	}
	if _, err := b.n.value(); err != nil {
		return err
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(parameter.BestScoreKey), []byte(strconv.Itoa(score)))
	})
	if err != nil {
		return fmt.Errorf("badger: write best score: %w", err)
	}
	return b.n.publish(score)
}

func (b *Badger) Close() error {
	b.n.close()
	return b.db.Close()
}
