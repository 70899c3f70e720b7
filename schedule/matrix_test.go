package schedule

import (
	"testing"
	"time"
)

func TestProjectBookedBeatsAvailable(t *testing.T) {
	entries := []Entry{
		{WorkDate: date(2024, time.June, 3), SlotID: 1, IsAvailable: true, HasBooking: true},
	}
	m := Project(date(2024, time.June, 3), date(2024, time.June, 3), GranularityDay,
		[]SlotRow{{SlotID: 1, Label: "08:00"}}, BuildIndex(entries, FirstWins))
	if got := m.Cells[0][0].State; got != CellBooked {
		t.Fatalf("expected booked, got %s", got)
	}
}

func TestProjectEmptyDayFiltering(t *testing.T) {
	// Only Monday and Wednesday have entries; the other 3 business days
	// must be dropped from the columns.
	entries := []Entry{
		{WorkDate: date(2024, time.June, 3), SlotID: 1, IsAvailable: true},
		{WorkDate: date(2024, time.June, 5), SlotID: 2, IsAvailable: true},
	}
	m := Project(date(2024, time.June, 3), date(2024, time.June, 7), GranularityWeek,
		[]SlotRow{{SlotID: 1}, {SlotID: 2}}, BuildIndex(entries, FirstWins))
	if len(m.Days) != 2 {
		t.Fatalf("expected 2 columns, got %d (%v)", len(m.Days), m.Days)
	}
	if m.Days[0] != "2024-06-03" || m.Days[1] != "2024-06-05" {
		t.Fatalf("unexpected columns: %v", m.Days)
	}
}

func TestProjectDayKeptForNonCatalogueSlot(t *testing.T) {
	// Tuesday's only entry is for slot 9, which the supplied catalogue
	// doesn't list; the day must still render as a column.
	entries := []Entry{
		{WorkDate: date(2024, time.June, 3), SlotID: 1, IsAvailable: true},
		{WorkDate: date(2024, time.June, 4), SlotID: 9, IsAvailable: true},
	}
	m := Project(date(2024, time.June, 3), date(2024, time.June, 7), GranularityWeek,
		[]SlotRow{{SlotID: 1}}, BuildIndex(entries, FirstWins))
	if len(m.Days) != 2 || m.Days[1] != "2024-06-04" {
		t.Fatalf("expected Tuesday kept, got %v", m.Days)
	}
	if got := m.Cells[0][1].State; got != CellUnavailable {
		t.Fatalf("slot 1 on Tuesday: expected unavailable, got %s", got)
	}
}

func TestProjectDayModeEmptyState(t *testing.T) {
	m := Project(date(2024, time.June, 3), date(2024, time.June, 3), GranularityDay,
		[]SlotRow{{SlotID: 1}}, BuildIndex(nil, FirstWins))
	if len(m.Days) != 0 {
		t.Fatalf("expected zero columns for an empty day, got %v", m.Days)
	}
}

func TestProjectSlotRowsSortedAndDeduped(t *testing.T) {
	slots := []SlotRow{{SlotID: 3}, {SlotID: 1}, {SlotID: 3}, {SlotID: 2}}
	entries := []Entry{{WorkDate: date(2024, time.June, 3), SlotID: 1, IsAvailable: true}}
	m := Project(date(2024, time.June, 3), date(2024, time.June, 3), GranularityDay,
		slots, BuildIndex(entries, FirstWins))
	if len(m.Slots) != 3 {
		t.Fatalf("expected 3 de-duplicated rows, got %d", len(m.Slots))
	}
	for i, want := range []uint{1, 2, 3} {
		if m.Slots[i].SlotID != want {
			t.Fatalf("rows not sorted ascending: %v", m.Slots)
		}
	}
}

func TestProjectSlotFallbackFromIndex(t *testing.T) {
	entries := []Entry{
		{WorkDate: date(2024, time.June, 3), SlotID: 5, IsAvailable: true},
		{WorkDate: date(2024, time.June, 3), SlotID: 2},
	}
	m := Project(date(2024, time.June, 3), date(2024, time.June, 3), GranularityDay,
		nil, BuildIndex(entries, FirstWins))
	if len(m.Slots) != 2 || m.Slots[0].SlotID != 2 || m.Slots[1].SlotID != 5 {
		t.Fatalf("expected rows derived from schedule data, got %v", m.Slots)
	}
	if m.Slots[1].Label != "Slot #5" {
		t.Fatalf("expected fallback label, got %q", m.Slots[1].Label)
	}
}

func TestProjectCellNotes(t *testing.T) {
	entries := []Entry{
		{WorkDate: date(2024, time.June, 3), SlotID: 1, IsAvailable: true, Notes: "battery bay"},
	}
	m := Project(date(2024, time.June, 3), date(2024, time.June, 3), GranularityDay,
		[]SlotRow{{SlotID: 1}}, BuildIndex(entries, FirstWins))
	if m.Cells[0][0].Notes != "battery bay" {
		t.Fatalf("expected notes carried through, got %+v", m.Cells[0][0])
	}
}

// Mirrors the console's day view: technician 42 with two catalogue slots
// and an availability entry only for the first.
func TestProjectDayViewScenario(t *testing.T) {
	slots := []SlotRow{{SlotID: 1, Label: "08:00"}, {SlotID: 2, Label: "09:00"}}
	entries := []Entry{
		{TechnicianID: 42, WorkDate: date(2024, time.June, 3), SlotID: 1, IsAvailable: true},
	}
	m := Project(date(2024, time.June, 3), date(2024, time.June, 3), GranularityDay,
		slots, BuildIndex(entries, FirstWins))
	if len(m.Days) != 1 || m.Days[0] != "2024-06-03" {
		t.Fatalf("unexpected columns: %v", m.Days)
	}
	if got := m.Cells[0][0].State; got != CellAvailable {
		t.Errorf("slot 1: expected available, got %s", got)
	}
	if got := m.Cells[1][0].State; got != CellUnavailable {
		t.Errorf("slot 2: expected unavailable, got %s", got)
	}
}
