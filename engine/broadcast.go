package engine

import "sync"

// Broadcaster publishes the latest value to any number of subscribers
// New subscribers receive the latest value first; slow readers only ever see
// the newest pending value, publication never blocks
type Broadcaster[T any] struct {
	mu     sync.Mutex
	latest T
	subs   map[uint64]chan T
	nextID uint64
	closed bool
}

// NewBroadcaster creates a broadcaster holding initial as the latest value
func NewBroadcaster[T any](initial T) *Broadcaster[T] {
	return &Broadcaster[T]{
		latest: initial,
		subs:   make(map[uint64]chan T),
	}
}

// Publish replaces the latest value and offers it to every subscriber
func (b *Broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.latest = v
	for _, ch := range b.subs {
		offer(ch, v)
	}
}

// Latest returns the most recently published value
func (b *Broadcaster[T]) Latest() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.latest
}

// Subscribe returns a channel primed with the latest value and a cancel func
// The channel is closed by cancel or by Close
func (b *Broadcaster[T]) Subscribe() (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan T, 1)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	ch <- b.latest

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Subscribers returns the number of live subscriptions
func (b *Broadcaster[T]) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close closes every subscriber channel; later publishes are dropped
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

// offer replaces any unread value in a capacity-1 channel with v
// Callers hold the broadcaster lock, so there is a single sender per channel
func offer[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}
