package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/parameter"
)

// scoreDocument is the on-disk YAML shape of the file backend
type scoreDocument struct {
	BestScore int `yaml:"best_score"`
}

// File persists the best score in a YAML file replaced atomically on write
// The containing directory is watched, so edits by other processes are observed
type File struct {
	path    string
	n       *notifier
	watcher *fsnotify.Watcher
	logger  zerolog.Logger
	done    chan struct{}
}

// OpenFile opens the score file at path, creating its directory if needed
func OpenFile(path string, logger zerolog.Logger) (*File, error) {
	if path == "" {
		return nil, errors.New("file store: path is required")
	}
	path = filepath.Clean(path)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("file store: create directory: %w", err)
	}

	current, err := readScoreFile(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("file store: create watcher: %w", err)
	}
	// Atomic replace swaps the inode, so watch the directory rather than the file
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("file store: watch directory: %w", err)
	}

	f := &File{
		path:    path,
		n:       newNotifier(current),
		watcher: watcher,
		logger:  logger,
		done:    make(chan struct{}),
	}
	core.Go(f.watch)

	logger.Info().Str("path", path).Int("best", current).Msg("score store opened")
	return f, nil
}

func readScoreFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("file store: read: %w", err)
	}

	var doc scoreDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("file store: parse %s: %w", path, err)
	}
	if err := validateScore(doc.BestScore); err != nil {
		return 0, err
	}
	return doc.BestScore, nil
}

func (f *File) watch() {
	defer close(f.done)

	for {
		select {
		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != f.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			v, err := readScoreFile(f.path)
			if err != nil {
				f.logger.Debug().Err(err).Str("op", event.Op.String()).Msg("score file unreadable, keeping previous value")
				continue
			}
			if err := f.n.publish(v); err != nil {
				return
			}
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			f.logger.Warn().Err(err).Msg("score file watcher error")
		}
	}
}

func (f *File) ReadBestScore(ctx context.Context) (<-chan int, error) {
	return f.n.subscribe(ctx)
}

func (f *File) WriteBestScore(ctx context.Context, score int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateScore(score); err != nil {
		return err
	}
	if _, err := f.n.value(); err != nil {
		return err
	}

	data, err := yaml.Marshal(scoreDocument{BestScore: score})
	if err != nil {
		return fmt.Errorf("file store: encode: %w", err)
	}

	pending, err := renameio.NewPendingFile(f.path, renameio.WithPermissions(parameter.ScoreFileMode))
	if err != nil {
		return fmt.Errorf("file store: create pending file: %w", err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			f.logger.Debug().Err(err).Msg("cleanup pending score file")
		}
	}()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("file store: write: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("file store: replace: %w", err)
	}
	return f.n.publish(score)
}

func (f *File) Close() error {
	f.n.close()
	err := f.watcher.Close()
	<-f.done
	return err
}
