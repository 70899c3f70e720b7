package utils

import "sync/atomic"

// Epoch is a monotonically increasing request generation counter. A
// refresh captures the generation when it is dispatched and checks it
// before committing its result, so a slow response that was overtaken by
// a newer dispatch is dropped instead of clobbering fresher state.
type Epoch struct {
	n atomic.Uint64
}

// Next advances the generation and returns the new value. Call it when
// dispatching work whose result may arrive late.
func (e *Epoch) Next() uint64 {
	return e.n.Add(1)
}

// Current returns the latest generation.
func (e *Epoch) Current() uint64 {
	return e.n.Load()
}

// IsCurrent reports whether results captured at generation g may still
// be committed.
func (e *Epoch) IsCurrent(g uint64) bool {
	return e.n.Load() == g
}
