package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/lixenwraith/snake/parameter"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS preferences (
	key   TEXT PRIMARY KEY,
	value INTEGER NOT NULL
)`

// SQLite persists the best score in a single-row preferences table
type SQLite struct {
	db     *sql.DB
	n      *notifier
	logger zerolog.Logger
}

// OpenSQLite opens (creating if needed) the database at path in WAL mode
func OpenSQLite(path string, logger zerolog.Logger) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("sqlite: path is required")
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=synchronous(NORMAL)",
		path, parameter.SQLiteBusyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open failed: %w", err)
	}
	// One writer; the table holds a single row
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), parameter.SQLiteBusyTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping failed: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: migrate: %w", err)
	}

	s := &SQLite{db: db, logger: logger}
	current, err := s.load(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	s.n = newNotifier(current)

	logger.Info().Str("path", path).Int("best", current).Msg("score store opened")
	return s, nil
}

func (s *SQLite) load(ctx context.Context) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE key = ?`, parameter.BestScoreKey).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("sqlite: read best score: %w", err)
	}
	return v, nil
}

func (s *SQLite) ReadBestScore(ctx context.Context) (<-chan int, error) {
	return s.n.subscribe(ctx)
}

func (s *SQLite) WriteBestScore(ctx context.Context, score int) error {
	if err := validateScore(score); err != nil {
		return err
	}
	if _, err := s.n.value(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		parameter.BestScoreKey, score)
	if err != nil {
		return fmt.Errorf("sqlite: write best score: %w", err)
	}
	return s.n.publish(score)
}

func (s *SQLite) Close() error {
	s.n.close()
	return s.db.Close()
}
