package schedule

import (
	"reflect"
	"testing"
	"time"
)

func TestBuildIndexKeysByLocalDay(t *testing.T) {
	entries := []Entry{
		{TechnicianID: 42, WorkDate: date(2024, time.June, 3), SlotID: 1, IsAvailable: true},
		{TechnicianID: 42, WorkDate: date(2024, time.June, 4), SlotID: 2},
	}
	idx := BuildIndex(entries, FirstWins)
	if len(idx) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(idx))
	}
	e, ok := idx.Lookup(date(2024, time.June, 3), 1)
	if !ok || !e.IsAvailable {
		t.Fatalf("lookup failed: %+v ok=%v", e, ok)
	}
	if _, ok := idx["2024-06-04#2"]; !ok {
		t.Fatalf("expected composite key 2024-06-04#2, keys: %v", idx)
	}
}

func TestBuildIndexIdempotent(t *testing.T) {
	entries := []Entry{
		{WorkDate: date(2024, time.June, 3), SlotID: 1, Notes: "a"},
		{WorkDate: date(2024, time.June, 3), SlotID: 2, Notes: "b"},
		{WorkDate: date(2024, time.June, 4), SlotID: 1, Notes: "c"},
	}
	a := BuildIndex(entries, FirstWins)
	b := BuildIndex(entries, FirstWins)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("index not deterministic:\n%v\n%v", a, b)
	}
}

func TestBuildIndexFirstWins(t *testing.T) {
	entries := []Entry{
		{WorkDate: date(2024, time.June, 3), SlotID: 1, Notes: "first"},
		{WorkDate: date(2024, time.June, 3), SlotID: 1, Notes: "second"},
	}
	idx := BuildIndex(entries, FirstWins)
	if len(idx) != 1 {
		t.Fatalf("duplicates must not double-count, got %d keys", len(idx))
	}
	if e, _ := idx.Lookup(date(2024, time.June, 3), 1); e.Notes != "first" {
		t.Fatalf("expected first occurrence kept, got %q", e.Notes)
	}
}

func TestBuildIndexLastWins(t *testing.T) {
	entries := []Entry{
		{WorkDate: date(2024, time.June, 3), SlotID: 1, Notes: "first"},
		{WorkDate: date(2024, time.June, 3), SlotID: 1, Notes: "second"},
	}
	idx := BuildIndex(entries, LastWins)
	if e, _ := idx.Lookup(date(2024, time.June, 3), 1); e.Notes != "second" {
		t.Fatalf("expected last occurrence kept, got %q", e.Notes)
	}
}

func TestBuildIndexEmptyInput(t *testing.T) {
	idx := BuildIndex(nil, FirstWins)
	if idx == nil || len(idx) != 0 {
		t.Fatalf("expected empty non-nil index, got %v", idx)
	}
}

func TestEntryLabelFallback(t *testing.T) {
	e := Entry{SlotID: 7}
	if got := e.Label(); got != "Slot #7" {
		t.Fatalf("expected fallback label, got %q", got)
	}
	e.SlotLabel = "08:00-09:00"
	if got := e.Label(); got != "08:00-09:00" {
		t.Fatalf("expected catalogue label, got %q", got)
	}
}
