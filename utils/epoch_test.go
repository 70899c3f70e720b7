package utils

import "testing"

func TestEpochStaleGenerationRejected(t *testing.T) {
	var e Epoch
	g1 := e.Next()
	if !e.IsCurrent(g1) {
		t.Fatal("fresh generation must be current")
	}
	g2 := e.Next()
	if e.IsCurrent(g1) {
		t.Fatal("overtaken generation must not be current")
	}
	if !e.IsCurrent(g2) {
		t.Fatal("latest generation must be current")
	}
}

func TestEpochMonotonic(t *testing.T) {
	var e Epoch
	prev := e.Next()
	for i := 0; i < 100; i++ {
		next := e.Next()
		if next <= prev {
			t.Fatalf("epoch not monotonic: %d then %d", prev, next)
		}
		prev = next
	}
	if e.Current() != prev {
		t.Fatalf("Current()=%d, want %d", e.Current(), prev)
	}
}
