//go:build !tinygo

package hal

import "time"

// hostTime converts wall-clock time into millisecond ticks. step is called
// once per frame by the window or headless runner.
type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

func (t *hostTime) step() {
	const tickDur = time.Millisecond

	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.emit(1)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	n := uint64(t.acc / tickDur)
	if n == 0 {
		return
	}
	t.acc %= tickDur
	t.emit(n)
}

func (t *hostTime) emit(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
