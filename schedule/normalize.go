package schedule

import (
	"encoding/json"
	"fmt"
	"time"
)

// The legacy booking service is inconsistent about field casing
// (slotLabel vs SlotLabel, timeSlots vs TimeSlots) and sometimes nests
// schedule entries per day instead of returning a flat list. Everything
// here converts those payloads into the canonical shapes exactly once, at
// the boundary, so no other package needs casing fallbacks.

// ParseISODate accepts either a plain ISO date or a full RFC 3339
// datetime and returns the value anchored to the local calendar day.
func ParseISODate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(dayKeyLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	}
	return Midnight(t.Local()), nil
}

type rawObject map[string]json.RawMessage

// pick returns the first present key, tolerating casing variants.
func (o rawObject) pick(keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		if v, ok := o[k]; ok {
			return v, true
		}
	}
	return nil, false
}

func (o rawObject) str(keys ...string) string {
	raw, ok := o.pick(keys...)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func (o rawObject) uintVal(keys ...string) uint {
	raw, ok := o.pick(keys...)
	if !ok {
		return 0
	}
	var n uint
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	return n
}

func (o rawObject) boolVal(keys ...string) bool {
	raw, ok := o.pick(keys...)
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false
	}
	return b
}

// DecodeSlots decodes a slot catalogue payload, tolerating both casings.
func DecodeSlots(data []byte) ([]SlotRow, error) {
	var raw []rawObject
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode slot catalogue: %w", err)
	}
	slots := make([]SlotRow, 0, len(raw))
	for _, o := range raw {
		slots = append(slots, SlotRow{
			SlotID: o.uintVal("slotId", "SlotId"),
			Label:  o.str("slotLabel", "SlotLabel"),
		})
	}
	return slots, nil
}

// DecodeSchedule decodes a technician schedule payload into flat entries.
// The payload is either already flat, or nested per day as
// [{workDate, timeSlots: [...]}]; nested days are flattened with the
// day's workDate applied to every inner slot record.
func DecodeSchedule(data []byte) ([]Entry, error) {
	var raw []rawObject
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}

	var entries []Entry
	for _, o := range raw {
		if nested, ok := o.pick("timeSlots", "TimeSlots"); ok {
			day, err := ParseISODate(o.str("workDate", "WorkDate"))
			if err != nil {
				return nil, err
			}
			var inner []rawObject
			if err := json.Unmarshal(nested, &inner); err != nil {
				return nil, fmt.Errorf("decode nested day: %w", err)
			}
			for _, slot := range inner {
				e, err := decodeEntry(slot)
				if err != nil {
					return nil, err
				}
				e.WorkDate = day
				entries = append(entries, e)
			}
			continue
		}
		e, err := decodeEntry(o)
		if err != nil {
			return nil, err
		}
		if e.WorkDate.IsZero() {
			return nil, fmt.Errorf("schedule record missing workDate")
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func decodeEntry(o rawObject) (Entry, error) {
	e := Entry{
		TechnicianID:     o.uintVal("technicianId", "TechnicianId"),
		SlotID:           o.uintVal("slotId", "SlotId"),
		SlotLabel:        o.str("slotLabel", "SlotLabel"),
		IsAvailable:      o.boolVal("isAvailable", "IsAvailable"),
		HasBooking:       o.boolVal("hasBooking", "HasBooking"),
		Notes:            o.str("notes", "Notes"),
		TechnicianSlotID: o.uintVal("technicianSlotId", "TechnicianSlotId"),
	}
	if s := o.str("workDate", "WorkDate"); s != "" {
		day, err := ParseISODate(s)
		if err != nil {
			return Entry{}, err
		}
		e.WorkDate = day
	}
	return e, nil
}
