package utils

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalescesBurst(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
		time.Sleep(2 * time.Millisecond)
	}
	time.Sleep(60 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected 1 trailing call, got %d", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20 * time.Millisecond)
	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	time.Sleep(50 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Fatalf("expected no calls after Stop, got %d", got)
	}
}

func TestDebouncerFiresAgainAfterQuiet(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(10 * time.Millisecond)
	defer d.Stop()

	d.Trigger(func() { calls.Add(1) })
	time.Sleep(40 * time.Millisecond)
	d.Trigger(func() { calls.Add(1) })
	time.Sleep(40 * time.Millisecond)

	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 calls across separate bursts, got %d", got)
	}
}
