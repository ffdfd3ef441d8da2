package input

import (
	"sync/atomic"

	"github.com/lixenwraith/snake/parameter"
)

// IntentQueue buffers key intents between the terminal poller and the frame loop
// Intents stay unresolved until Drain, so a toggle sees the controller state
// left by every intent queued before it
//
// Thread-Safety:
//   - Push: lock-free CAS, any number of pollers
//   - Drain/Pending: single consumer (frame loop)
//
// Overflow: oldest intents are overwritten
type IntentQueue struct {
	slots     [parameter.IntentQueueSize]IntentType
	published [parameter.IntentQueueSize]atomic.Bool // slot fully written
	head      atomic.Uint64                          // next read
	tail      atomic.Uint64                          // next write
}

func NewIntentQueue() *IntentQueue {
	return &IntentQueue{}
}

// Push queues an intent, IntentNone and IntentQuit never reach the controller and are dropped
func (q *IntentQueue) Push(intent IntentType) {
	if intent == IntentNone || intent == IntentQuit {
		return
	}

	for {
		tail := q.tail.Load()
		next := tail + 1
		if !q.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & parameter.IntentBufferMask
		q.slots[idx] = intent
		q.published[idx].Store(true) // after the slot write

		if head := q.head.Load(); next-head > parameter.IntentQueueSize {
			q.head.CompareAndSwap(head, next-parameter.IntentQueueSize)
		}
		return
	}
}

// Pending returns the queued intents in FIFO order and advances the read index
func (q *IntentQueue) Pending() []IntentType {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail == head {
			return nil
		}

		available := tail - head
		if available > parameter.IntentQueueSize {
			available = parameter.IntentQueueSize
			head = tail - parameter.IntentQueueSize
		}

		out := make([]IntentType, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (head + i) & parameter.IntentBufferMask
			if !q.published[idx].Load() {
				break // writer mid-flight, pick it up next frame
			}
			out = append(out, q.slots[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Drain applies every queued intent to ctrl in order, returns how many were applied
func (q *IntentQueue) Drain(ctrl Controller) int {
	applied := 0
	for _, intent := range q.Pending() {
		if intent.Apply(ctrl) {
			applied++
		}
	}
	return applied
}

// Len returns the approximate number of queued intents
func (q *IntentQueue) Len() int {
	n := q.tail.Load() - q.head.Load()
	if n > parameter.IntentQueueSize {
		n = parameter.IntentQueueSize
	}
	return int(n)
}
