package schedule

import (
	"strings"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestSingleDayWeekendRejected(t *testing.T) {
	today := date(2024, time.June, 1)
	for _, wd := range []time.Time{
		date(2024, time.June, 8), // Saturday
		date(2024, time.June, 9), // Sunday
	} {
		req := DateRangeRequest{Mode: ModeSingleDay, WorkDate: wd}
		errs := req.Validate(today)
		if errs["workDate"] == "" {
			t.Errorf("expected workDate error for %s, got %v", wd.Weekday(), errs)
		}
	}
}

func TestSingleDayPastRejected(t *testing.T) {
	today := date(2024, time.June, 10)
	req := DateRangeRequest{Mode: ModeSingleDay, WorkDate: date(2024, time.June, 9)}
	errs := req.Validate(today)
	if !strings.Contains(errs["workDate"], "past") {
		t.Fatalf("expected past-date error, got %v", errs)
	}
}

func TestSingleDayPastWeekendReportsPast(t *testing.T) {
	today := date(2024, time.June, 10)
	req := DateRangeRequest{Mode: ModeSingleDay, WorkDate: date(2024, time.June, 8)} // past Saturday
	errs := req.Validate(today)
	if !strings.Contains(errs["workDate"], "past") {
		t.Fatalf("expected past-date error to win over weekend, got %v", errs)
	}
}

func TestSingleDayRequired(t *testing.T) {
	req := DateRangeRequest{Mode: ModeSingleDay}
	errs := req.Validate(date(2024, time.June, 10))
	if errs["workDate"] == "" {
		t.Fatalf("expected required error, got %v", errs)
	}
}

func TestSingleDayTodayAccepted(t *testing.T) {
	today := date(2024, time.June, 10) // a Monday
	req := DateRangeRequest{Mode: ModeSingleDay, WorkDate: today}
	if errs := req.Validate(today); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestWeekRangeValidMondayToFriday(t *testing.T) {
	req := DateRangeRequest{
		Mode:      ModeWeekRange,
		StartDate: date(2024, time.June, 3), // Monday
		EndDate:   date(2024, time.June, 7), // Friday
	}
	if errs := req.Validate(date(2024, time.June, 3)); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestWeekRangeSpanExactness(t *testing.T) {
	// Monday to next Friday: weekdays are right but the span is 12 days.
	req := DateRangeRequest{
		Mode:      ModeWeekRange,
		StartDate: date(2024, time.June, 3),
		EndDate:   date(2024, time.June, 14),
	}
	errs := req.Validate(date(2024, time.June, 3))
	if errs["endDate"] == "" {
		t.Fatalf("expected endDate error for a 12-day span, got %v", errs)
	}
}

func TestWeekRangeWrongWeekdays(t *testing.T) {
	req := DateRangeRequest{
		Mode:      ModeWeekRange,
		StartDate: date(2024, time.June, 4), // Tuesday
		EndDate:   date(2024, time.June, 8), // Saturday
	}
	errs := req.Validate(date(2024, time.June, 3))
	if errs["startDate"] == "" {
		t.Errorf("expected startDate Monday error, got %v", errs)
	}
	if errs["endDate"] == "" {
		t.Errorf("expected endDate Friday error, got %v", errs)
	}
}

func TestWeekRangeInvertedRange(t *testing.T) {
	req := DateRangeRequest{
		Mode:      ModeWeekRange,
		StartDate: date(2024, time.June, 7),
		EndDate:   date(2024, time.June, 3),
	}
	errs := req.Validate(date(2024, time.June, 3))
	if !strings.Contains(errs["endDate"], "before start") {
		t.Fatalf("expected ordering error on endDate, got %v", errs)
	}
}

func TestWeekRangeBothRequired(t *testing.T) {
	req := DateRangeRequest{Mode: ModeWeekRange}
	errs := req.Validate(date(2024, time.June, 3))
	if errs["startDate"] == "" || errs["endDate"] == "" {
		t.Fatalf("expected required errors on both fields, got %v", errs)
	}
}

func TestWeekRangePastStart(t *testing.T) {
	req := DateRangeRequest{
		Mode:      ModeWeekRange,
		StartDate: date(2024, time.June, 3),
		EndDate:   date(2024, time.June, 7),
	}
	errs := req.Validate(date(2024, time.June, 10))
	if !strings.Contains(errs["startDate"], "past") {
		t.Fatalf("expected past-start error, got %v", errs)
	}
}

func TestNotesTooLong(t *testing.T) {
	req := DateRangeRequest{
		Mode:     ModeSingleDay,
		WorkDate: date(2024, time.June, 10),
		Notes:    strings.Repeat("x", 256),
	}
	errs := req.Validate(date(2024, time.June, 10))
	if errs["notes"] == "" {
		t.Fatalf("expected notes length error, got %v", errs)
	}
}

func TestValidateNotesBoundary(t *testing.T) {
	if msg := ValidateNotes(strings.Repeat("x", 255)); msg != "" {
		t.Errorf("255 characters should pass, got %q", msg)
	}
	if msg := ValidateNotes(strings.Repeat("x", 256)); msg == "" {
		t.Error("256 characters should fail")
	}
}
