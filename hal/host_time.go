//go:build !tinygo

package hal

import "time"

const hostTickPeriod = time.Millisecond

// hostTime turns wall-clock progress into millisecond ticks. It is advanced
// by the runner once per host update, so tick delivery is bursty.
type hostTime struct {
	ch    chan uint64
	seq   uint64
	clock func() time.Time

	last time.Time
	frac time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), clock: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step publishes the whole ticks elapsed since the previous call. The first
// call has no reference point and publishes prime ticks instead.
func (t *hostTime) step(prime uint64) {
	now := t.clock()
	if t.last.IsZero() {
		t.last = now
		t.emit(prime)
		return
	}
	t.frac += now.Sub(t.last)
	t.last = now
	n := t.frac / hostTickPeriod
	t.frac -= n * hostTickPeriod
	t.emit(uint64(n))
}

// emit advances the sequence by n. A full channel drops values, but the next
// delivered value still carries the current sequence.
func (t *hostTime) emit(n uint64) {
	for ; n > 0; n-- {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
