package schedule

import (
	"fmt"
	"time"
)

// Entry is the canonical in-memory form of one technician's availability
// for one date+slot pair. Controllers map GORM rows and legacy payloads
// into this shape before any matrix or guard logic runs.
type Entry struct {
	TechnicianID     uint      `json:"technicianId"`
	WorkDate         time.Time `json:"workDate"`
	SlotID           uint      `json:"slotId"`
	SlotLabel        string    `json:"slotLabel,omitempty"`
	IsAvailable      bool      `json:"isAvailable"`
	HasBooking       bool      `json:"hasBooking"`
	Notes            string    `json:"notes,omitempty"`
	TechnicianSlotID uint      `json:"technicianSlotId,omitempty"`
}

// Label returns the display label for the entry's slot, falling back to
// "Slot #<id>" when the catalogue label is missing.
func (e Entry) Label() string {
	if e.SlotLabel != "" {
		return e.SlotLabel
	}
	return fmt.Sprintf("Slot #%d", e.SlotID)
}

// TieBreak decides which entry wins when two entries share a day+slot key.
type TieBreak int

const (
	// FirstWins keeps the first occurrence, matching the behavior staff
	// have observed in the console so far.
	FirstWins TieBreak = iota
	// LastWins lets more recently received data override.
	LastWins
)

// Index maps "<YYYY-MM-DD>#<slotId>" to the entry occupying that cell.
type Index map[string]Entry

// Key builds the composite lookup key for a day and slot.
func Key(dayKey string, slotID uint) string {
	return fmt.Sprintf("%s#%d", dayKey, slotID)
}

// BuildIndex folds entries into a lookup keyed by local day + slot id.
// Input order is the order received from the backend; duplicates resolve
// per the tie-break and are otherwise dropped, never merged or counted
// twice. Empty input yields an empty, non-nil index.
func BuildIndex(entries []Entry, tb TieBreak) Index {
	idx := make(Index, len(entries))
	for _, e := range entries {
		k := Key(DayKey(e.WorkDate), e.SlotID)
		if _, seen := idx[k]; seen && tb == FirstWins {
			continue
		}
		idx[k] = e
	}
	return idx
}

// Lookup resolves the entry for a day and slot.
func (idx Index) Lookup(day time.Time, slotID uint) (Entry, bool) {
	e, ok := idx[Key(DayKey(day), slotID)]
	return e, ok
}
