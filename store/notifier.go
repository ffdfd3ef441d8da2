package store

import (
	"context"
	"sync"
)

// notifier fans the latest value out to subscribers
// Each subscriber channel holds at most one value; a slow reader only sees the newest
type notifier struct {
	mu      sync.Mutex
	current int
	subs    map[chan int]struct{}
	closed  bool
}

func newNotifier(initial int) *notifier {
	return &notifier{
		current: initial,
		subs:    make(map[chan int]struct{}),
	}
}

func (n *notifier) value() (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return 0, ErrClosed
	}
	return n.current, nil
}

// subscribe returns a channel primed with the current value, closed when ctx ends
func (n *notifier) subscribe(ctx context.Context) (<-chan int, error) {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil, ErrClosed
	}
	ch := make(chan int, 1)
	ch <- n.current
	n.subs[ch] = struct{}{}
	n.mu.Unlock()

	context.AfterFunc(ctx, func() { n.unsubscribe(ch) })
	return ch, nil
}

func (n *notifier) unsubscribe(ch chan int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.subs[ch]; ok {
		delete(n.subs, ch)
		close(ch)
	}
}

// publish records v and delivers it when it differs from the current value
func (n *notifier) publish(v int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return ErrClosed
	}
	if v == n.current {
		return nil
	}
	n.current = v
	for ch := range n.subs {
		offer(ch, v)
	}
	return nil
}

func (n *notifier) close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true
	for ch := range n.subs {
		delete(n.subs, ch)
		close(ch)
	}
}

// offer replaces any unread value in ch with v
func offer(ch chan int, v int) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}
