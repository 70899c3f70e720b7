package schedule

import (
	"sort"
	"time"
)

// CellState is the rendered state of one slot-by-date cell.
type CellState string

const (
	CellBooked      CellState = "booked"
	CellAvailable   CellState = "available"
	CellUnavailable CellState = "unavailable"
)

// Granularity selects between a single-day and a week matrix.
type Granularity string

const (
	GranularityDay  Granularity = "day"
	GranularityWeek Granularity = "week"
)

// SlotRow is one row of the matrix: a catalogue slot.
type SlotRow struct {
	SlotID uint   `json:"slotId"`
	Label  string `json:"slotLabel"`
}

// Cell is one matrix cell with its optional tooltip notes.
type Cell struct {
	State CellState `json:"state"`
	Notes string    `json:"notes,omitempty"`
}

// Matrix is the renderable slot-by-date grid. Rows follow Slots, columns
// follow Days, and Cells is indexed [row][column]. Zero Days means there
// is nothing to render and the caller should show an empty state.
type Matrix struct {
	Slots []SlotRow `json:"slots"`
	Days  []string  `json:"days"`
	Cells [][]Cell  `json:"cells"`
}

// Project builds the matrix for a date range from the slot catalogue and a
// built index. When the catalogue is empty the rows are derived from the
// slot ids present in the index instead. Days without a single indexed
// entry are omitted from the columns entirely rather than shown as fully
// unavailable; in day mode that leaves zero columns for an empty day.
func Project(rangeStart, rangeEnd time.Time, g Granularity, slots []SlotRow, idx Index) Matrix {
	if g == GranularityDay {
		rangeEnd = rangeStart
	}

	rows := slotRows(slots, idx)

	// A day is rendered when the index holds any entry for it, catalogue
	// slot or not.
	occupied := make(map[string]bool, len(idx))
	for _, e := range idx {
		occupied[DayKey(e.WorkDate)] = true
	}

	var dayKeys []string
	for _, d := range Days(rangeStart, rangeEnd) {
		key := DayKey(d)
		if occupied[key] {
			dayKeys = append(dayKeys, key)
		}
	}

	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]Cell, len(dayKeys))
		for j, day := range dayKeys {
			cells[i][j] = resolveCell(idx[Key(day, row.SlotID)])
		}
	}

	return Matrix{Slots: rows, Days: dayKeys, Cells: cells}
}

// resolveCell applies the display precedence: booked beats available,
// anything else renders unavailable. A zero Entry (missing key) has both
// flags false and resolves to unavailable.
func resolveCell(e Entry) Cell {
	switch {
	case e.HasBooking:
		return Cell{State: CellBooked, Notes: e.Notes}
	case e.IsAvailable:
		return Cell{State: CellAvailable, Notes: e.Notes}
	default:
		return Cell{State: CellUnavailable, Notes: e.Notes}
	}
}

// slotRows de-duplicates and sorts the catalogue ascending by slot id,
// falling back to the slot ids seen in the schedule data itself when the
// catalogue is empty or was not fetched.
func slotRows(slots []SlotRow, idx Index) []SlotRow {
	byID := make(map[uint]SlotRow)
	if len(slots) > 0 {
		for _, s := range slots {
			if _, seen := byID[s.SlotID]; !seen {
				byID[s.SlotID] = s
			}
		}
	} else {
		for _, e := range idx {
			if _, seen := byID[e.SlotID]; !seen {
				byID[e.SlotID] = SlotRow{SlotID: e.SlotID, Label: e.Label()}
			}
		}
	}

	rows := make([]SlotRow, 0, len(byID))
	for _, row := range byID {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].SlotID < rows[j].SlotID })
	return rows
}
