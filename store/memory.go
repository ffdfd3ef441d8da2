package store

import "context"

// Memory keeps the best score in process; it is lost on exit
type Memory struct {
	n *notifier
}

// NewMemory creates a memory store holding initial
func NewMemory(initial int) *Memory {
	return &Memory{n: newNotifier(initial)}
}

func (m *Memory) ReadBestScore(ctx context.Context) (<-chan int, error) {
	return m.n.subscribe(ctx)
}

func (m *Memory) WriteBestScore(ctx context.Context, score int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateScore(score); err != nil {
		return err
	}
	return m.n.publish(score)
}

func (m *Memory) Close() error {
	m.n.close()
	return nil
}
