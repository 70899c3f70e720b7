package schedule

import (
	"fmt"
	"time"
)

// Mode selects between creating availability for one day or for a full
// business week (Monday through Friday).
type Mode string

const (
	ModeSingleDay Mode = "single-day"
	ModeWeekRange Mode = "week-range"
)

const maxNotesLen = 255

// ValidateNotes applies the notes length rule shared by creation and
// update. It returns an error message, or "" when the notes are fine.
func ValidateNotes(notes string) string {
	if len(notes) > maxNotesLen {
		return fmt.Sprintf("notes must be at most %d characters", maxNotesLen)
	}
	return ""
}

// DateRangeRequest is a proposed schedule creation before submission.
// Single-day mode uses WorkDate; week-range mode uses StartDate/EndDate.
type DateRangeRequest struct {
	Mode         Mode
	WorkDate     time.Time
	StartDate    time.Time
	EndDate      time.Time
	TechnicianID uint
	Notes        string
}

// Validate checks the request against the business calendar rules and
// returns field-keyed error messages. An empty map means the request is
// valid. "today" is supplied by the caller so validation never reads the
// wall clock. Per field the checks run in a fixed order and a later check
// overwrites an earlier message, so the result is deterministic.
func (r DateRangeRequest) Validate(today time.Time) map[string]string {
	errs := make(map[string]string)
	switch r.Mode {
	case ModeSingleDay:
		r.validateSingleDay(today, errs)
	case ModeWeekRange:
		r.validateWeekRange(today, errs)
	default:
		errs["mode"] = fmt.Sprintf("unknown schedule mode %q", r.Mode)
	}
	if msg := ValidateNotes(r.Notes); msg != "" {
		errs["notes"] = msg
	}
	return errs
}

func (r DateRangeRequest) validateSingleDay(today time.Time, errs map[string]string) {
	if r.WorkDate.IsZero() {
		errs["workDate"] = "work date is required"
		return
	}
	switch r.WorkDate.Weekday() {
	case time.Saturday:
		errs["workDate"] = "work date must not fall on a Saturday"
	case time.Sunday:
		errs["workDate"] = "work date must not fall on a Sunday"
	}
	// Past-date runs last so a past weekend day reports the past-date
	// message.
	if Midnight(r.WorkDate).Before(Midnight(today)) {
		errs["workDate"] = "work date must not be in the past"
	}
}

func (r DateRangeRequest) validateWeekRange(today time.Time, errs map[string]string) {
	if r.StartDate.IsZero() {
		errs["startDate"] = "start date is required"
	}
	if r.EndDate.IsZero() {
		errs["endDate"] = "end date is required"
	}
	if len(errs) > 0 {
		return
	}

	start := Midnight(r.StartDate)
	end := Midnight(r.EndDate)

	if start.After(end) {
		errs["endDate"] = "end date must not be before start date"
		return
	}
	if start.Weekday() != time.Monday {
		errs["startDate"] = "start date must be a Monday"
	}
	if end.Weekday() != time.Friday {
		errs["endDate"] = "end date must be the Friday of the same week"
	}
	// Span check runs even when the weekday checks already failed, and its
	// message takes precedence on endDate.
	if DaySpan(start, end) != 5 {
		errs["endDate"] = "a week schedule must span exactly 5 days (Monday to Friday)"
	}
	for _, d := range Days(start, end) {
		if IsWeekend(d) {
			errs["endDate"] = fmt.Sprintf("the range includes a weekend day (%s)", DisplayDate(d))
			break
		}
	}
	if start.Before(Midnight(today)) {
		errs["startDate"] = "start date must not be in the past"
	}
}
