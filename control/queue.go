package control

import (
	"runtime"
	"sync/atomic"
)

const queueSlots = 32

// Queue is a fixed-slot multi-producer, single-consumer intent queue.
// It never allocates. Producers may run on input goroutines; the frame
// driver is the only consumer.
type Queue struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	ready [queueSlots]atomic.Bool
	slots [queueSlots]Intent
}

// TryPush enqueues in, returning false if the queue is full or a concurrent
// producer won the slot.
func (q *Queue) TryPush(in Intent) bool {
	head := q.head.Load()
	tail := q.tail.Load()
	if head-tail >= queueSlots {
		return false
	}
	if !q.head.CompareAndSwap(head, head+1) {
		return false
	}
	i := head % queueSlots
	q.slots[i] = in
	q.ready[i].Store(true)
	return true
}

// Push enqueues in, yielding until there is room.
func (q *Queue) Push(in Intent) {
	for !q.TryPush(in) {
		runtime.Gosched()
	}
}

// TryPop dequeues one intent, returning false if none is ready.
func (q *Queue) TryPop() (Intent, bool) {
	tail := q.tail.Load()
	if tail == q.head.Load() {
		return None, false
	}
	i := tail % queueSlots
	if !q.ready[i].Load() {
		// Slot reserved but not yet written.
		return None, false
	}
	in := q.slots[i]
	q.ready[i].Store(false)
	q.tail.Store(tail + 1)
	return in, true
}

// Drain pops every ready intent into fn in FIFO order and returns the count.
func (q *Queue) Drain(fn func(Intent)) int {
	n := 0
	for {
		in, ok := q.TryPop()
		if !ok {
			return n
		}
		fn(in)
		n++
	}
}

// Len reports the number of reserved slots.
func (q *Queue) Len() int {
	return int(q.head.Load() - q.tail.Load())
}
