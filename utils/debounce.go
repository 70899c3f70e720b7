package utils

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into a single trailing call:
// each Trigger restarts the delay and only the last scheduled function
// runs once the burst goes quiet. Stop cancels any pending call and is
// meant to be tied to shutdown so no timer outlives its owner.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
