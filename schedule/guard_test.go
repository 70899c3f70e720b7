package schedule

import (
	"testing"
	"time"
)

func TestGuardBlocksSingleDayCollision(t *testing.T) {
	entries := []Entry{
		{WorkDate: date(2024, time.June, 5), SlotID: 1, IsAvailable: true},
	}
	decision, dates := Check(ModeSingleDay, entries, date(2024, time.June, 5), date(2024, time.June, 5))
	if decision != Block {
		t.Fatalf("expected Block, got %v", decision)
	}
	if len(dates) != 1 || dates[0] != "05/06/2024" {
		t.Fatalf("expected the colliding date named, got %v", dates)
	}
}

func TestGuardConfirmsWeekCollision(t *testing.T) {
	entries := []Entry{
		{WorkDate: date(2024, time.June, 4), SlotID: 1},
	}
	decision, dates := Check(ModeWeekRange, entries, date(2024, time.June, 3), date(2024, time.June, 7))
	if decision != Confirm {
		t.Fatalf("expected Confirm, got %v", decision)
	}
	if len(dates) != 1 || dates[0] != "04/06/2024" {
		t.Fatalf("unexpected collision list: %v", dates)
	}
}

func TestGuardProceedsWithoutCollisions(t *testing.T) {
	entries := []Entry{
		{WorkDate: date(2024, time.May, 31), SlotID: 1},
		{WorkDate: date(2024, time.June, 10), SlotID: 1},
	}
	decision, dates := Check(ModeWeekRange, entries, date(2024, time.June, 3), date(2024, time.June, 7))
	if decision != Proceed || dates != nil {
		t.Fatalf("expected Proceed with no dates, got %v %v", decision, dates)
	}
}

func TestFindCollisionsDedupesAndSorts(t *testing.T) {
	entries := []Entry{
		{WorkDate: date(2024, time.June, 5), SlotID: 2},
		{WorkDate: date(2024, time.June, 3), SlotID: 1},
		{WorkDate: date(2024, time.June, 5), SlotID: 1},
	}
	dates := FindCollisions(entries, date(2024, time.June, 3), date(2024, time.June, 7))
	if len(dates) != 2 || dates[0] != "03/06/2024" || dates[1] != "05/06/2024" {
		t.Fatalf("unexpected collision list: %v", dates)
	}
}
