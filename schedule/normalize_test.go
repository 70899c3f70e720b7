package schedule

import (
	"testing"
	"time"
)

func TestDecodeSlotsBothCasings(t *testing.T) {
	payload := []byte(`[
		{"slotId": 1, "slotLabel": "08:00-09:00"},
		{"SlotId": 2, "SlotLabel": "09:00-10:00"}
	]`)
	slots, err := DecodeSlots(payload)
	if err != nil {
		t.Fatalf("DecodeSlots: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].SlotID != 1 || slots[0].Label != "08:00-09:00" {
		t.Fatalf("camelCase slot mis-decoded: %+v", slots[0])
	}
	if slots[1].SlotID != 2 || slots[1].Label != "09:00-10:00" {
		t.Fatalf("PascalCase slot mis-decoded: %+v", slots[1])
	}
}

func TestDecodeScheduleFlat(t *testing.T) {
	payload := []byte(`[
		{"technicianId": 42, "workDate": "2024-06-03", "slotId": 1, "isAvailable": true},
		{"TechnicianId": 42, "WorkDate": "2024-06-04", "SlotId": 2, "HasBooking": true}
	]`)
	entries, err := DecodeSchedule(payload)
	if err != nil {
		t.Fatalf("DecodeSchedule: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !entries[0].IsAvailable || entries[0].SlotID != 1 {
		t.Fatalf("flat camelCase entry mis-decoded: %+v", entries[0])
	}
	if !entries[1].HasBooking || DayKey(entries[1].WorkDate) != "2024-06-04" {
		t.Fatalf("flat PascalCase entry mis-decoded: %+v", entries[1])
	}
}

func TestDecodeScheduleNested(t *testing.T) {
	payload := []byte(`[
		{"workDate": "2024-06-03", "timeSlots": [
			{"slotId": 1, "isAvailable": true, "notes": "bay 2"},
			{"slotId": 2, "isAvailable": false}
		]},
		{"WorkDate": "2024-06-04", "TimeSlots": [
			{"SlotId": 1, "IsAvailable": true}
		]}
	]`)
	entries, err := DecodeSchedule(payload)
	if err != nil {
		t.Fatalf("DecodeSchedule: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 flattened entries, got %d", len(entries))
	}
	if DayKey(entries[0].WorkDate) != "2024-06-03" || entries[0].Notes != "bay 2" {
		t.Fatalf("nested day not applied: %+v", entries[0])
	}
	if DayKey(entries[2].WorkDate) != "2024-06-04" || !entries[2].IsAvailable {
		t.Fatalf("PascalCase nested day mis-decoded: %+v", entries[2])
	}
}

func TestDecodeScheduleMissingWorkDate(t *testing.T) {
	payload := []byte(`[{"slotId": 1, "isAvailable": true}]`)
	if _, err := DecodeSchedule(payload); err == nil {
		t.Fatal("expected error for flat record without workDate")
	}
}

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate("2024-06-03")
	if err != nil || DayKey(d) != "2024-06-03" {
		t.Fatalf("plain date: %v %v", d, err)
	}
	d, err = ParseISODate("2024-06-03T08:00:00Z")
	if err != nil {
		t.Fatalf("datetime: %v", err)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Fatalf("datetime not anchored to midnight: %v", d)
	}
	if _, err := ParseISODate("03/06/2024"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestDecodeScheduleIndexRoundTrip(t *testing.T) {
	payload := []byte(`[
		{"workDate": "2024-06-03", "timeSlots": [{"slotId": 1, "isAvailable": true, "hasBooking": true}]}
	]`)
	entries, err := DecodeSchedule(payload)
	if err != nil {
		t.Fatalf("DecodeSchedule: %v", err)
	}
	idx := BuildIndex(entries, FirstWins)
	e, ok := idx.Lookup(date(2024, time.June, 3), 1)
	if !ok || !e.HasBooking {
		t.Fatalf("decoded entry not indexable: %+v ok=%v", e, ok)
	}
}
