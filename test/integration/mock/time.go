package mock

import (
	"sync"
	"time"
)

// Time is a running clock shifted by a settable offset, so scenarios can move
// the ledger to another day while durations still pass normally.
type Time struct {
	mu     sync.Mutex
	offset time.Duration
}

// NewTime returns a clock reading wall time.
func NewTime() *Time {
	return &Time{}
}

// SetCurrentTime shifts the clock so that Now reads at from this moment on.
func (t *Time) SetCurrentTime(at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.offset = time.Until(at)
}

// Reset returns the clock to wall time.
func (t *Time) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.offset = 0
}

// Now implements adapter.Clock.
func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return time.Now().Add(t.offset)
}
