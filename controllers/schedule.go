package controllers

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/db"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/models"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/redis"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/schedule"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/utils"
)

var validate = validator.New()

// CreateScheduleRequest is the creation payload for both modes. A missing
// slotId means "full day": one entry per active catalogue slot. The
// confirmed flag is the user's answer to the week-mode duplicate prompt.
type CreateScheduleRequest struct {
	TechnicianID uint   `json:"technicianId" validate:"required"`
	SlotID       uint   `json:"slotId"`
	WorkDate     string `json:"workDate"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	IsAvailable  *bool  `json:"isAvailable"`
	Notes        string `json:"notes"`
	Confirmed    bool   `json:"confirmed"`
}

// GetTechnicianSchedule returns the flat schedule entries for one
// technician within a date range.
func GetTechnicianSchedule(c *fiber.Ctx) error {
	technicianID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid technician id",
		})
	}
	start, end, err := parseRangeQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}
	if err := ensureTechnician(uint(technicianID)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Technician not found",
		})
	}

	entries, err := loadTechnicianEntries(uint(technicianID), start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedule",
			Error:   err.Error(),
		})
	}
	return c.JSON(entries)
}

// GetTechnicianMatrix projects the slot-by-date availability matrix for
// one technician. granularity=day uses startDate as the single column.
func GetTechnicianMatrix(c *fiber.Ctx) error {
	technicianID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid technician id",
		})
	}
	start, end, err := parseRangeQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}
	granularity := schedule.GranularityWeek
	if c.Query("granularity") == string(schedule.GranularityDay) {
		granularity = schedule.GranularityDay
	}
	if err := ensureTechnician(uint(technicianID)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Technician not found",
		})
	}

	entries, err := loadTechnicianEntries(uint(technicianID), start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedule",
			Error:   err.Error(),
		})
	}

	rows := catalogueRows()
	idx := schedule.BuildIndex(entries, schedule.FirstWins)
	matrix := schedule.Project(start, end, granularity, rows, idx)
	return c.JSON(matrix)
}

// GetCenterSchedule returns every technician's entries for one center
// within a date range, annotated per row with the technician id.
func GetCenterSchedule(c *fiber.Ctx) error {
	centerID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid center id",
		})
	}
	start, end, err := parseRangeQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	var center models.ServiceCenter
	if err := db.DB.First(&center, centerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service center not found",
		})
	}

	entries, err := loadCenterEntries(uint(centerID), start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch center schedule",
			Error:   err.Error(),
		})
	}
	return c.JSON(entries)
}

// CreateSchedule creates availability for a single day or a full business
// week. Validation failures are field-level 400s; duplicate collisions
// block single-day creates and require confirmation for week creates.
func CreateSchedule(c *fiber.Ctx) error {
	req := new(CreateScheduleRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid request",
			Error:   err.Error(),
		})
	}

	drr, parseErrs := buildDateRangeRequest(req)
	if len(parseErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": parseErrs})
	}
	if errs := drr.Validate(time.Now()); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	if err := ensureTechnician(req.TechnicianID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Technician not found",
		})
	}
	if req.SlotID != 0 {
		var slot models.TimeSlot
		if err := db.DB.First(&slot, req.SlotID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Time slot not found",
			})
		}
	}

	rangeStart, rangeEnd := drr.WorkDate, drr.WorkDate
	if drr.Mode == schedule.ModeWeekRange {
		rangeStart, rangeEnd = drr.StartDate, drr.EndDate
	}

	existing, err := loadTechnicianEntries(req.TechnicianID, rangeStart, rangeEnd)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check existing schedule",
			Error:   err.Error(),
		})
	}
	decision, collisions := schedule.Check(drr.Mode, existing, rangeStart, rangeEnd)
	switch decision {
	case schedule.Block:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message":            fmt.Sprintf("A schedule already exists on %s", collisions[0]),
			"duplicateSlotsInfo": collisions,
		})
	case schedule.Confirm:
		if !req.Confirmed {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message":              "Some days in this week already have schedules. Existing slots will be skipped.",
				"duplicateSlotsInfo":   collisions,
				"requiresConfirmation": true,
			})
		}
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	slotIDs, err := targetSlotIDs(req.SlotID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load slot catalogue",
			Error:   err.Error(),
		})
	}
	if len(slotIDs) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "No active time slots configured",
		})
	}

	var result createResult
	if drr.Mode == schedule.ModeSingleDay && req.SlotID == 0 {
		// Full-day create: one entry per active slot, fired concurrently.
		// Each request targets a distinct slot so ordering is irrelevant;
		// the counts are aggregated after everything settles.
		result = createFullDayConcurrent(req.TechnicianID, drr.WorkDate, slotIDs, isAvailable, req.Notes)
	} else {
		result = createRange(req.TechnicianID, rangeStart, rangeEnd, slotIDs, isAvailable, req.Notes)
	}

	message := fmt.Sprintf("Created %d of %d slots", result.created, result.attempted)
	if result.failed > 0 && result.firstErr != nil {
		message = fmt.Sprintf("%s (%d failed: %v)", message, result.failed, result.firstErr)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":            message,
		"totalSlotsSkipped":  result.skipped,
		"duplicateSlotsInfo": collisions,
	})
}

// UpdateSchedule updates availability or notes on one schedule entry.
func UpdateSchedule(c *fiber.Ctx) error {
	id := c.Params("id")
	var slot models.TechnicianSlot
	if err := db.DB.First(&slot, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Schedule entry not found",
			Error:   err.Error(),
		})
	}

	type updateRequest struct {
		IsAvailable *bool   `json:"isAvailable"`
		Notes       *string `json:"notes"`
	}
	req := new(updateRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.Notes != nil {
		if msg := schedule.ValidateNotes(*req.Notes); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": fiber.Map{"notes": msg},
			})
		}
	}

	if req.IsAvailable != nil {
		slot.IsAvailable = *req.IsAvailable
	}
	if req.Notes != nil {
		slot.Notes = *req.Notes
	}
	if err := db.DB.Save(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update schedule entry",
			Error:   err.Error(),
		})
	}
	return c.JSON(slot)
}

// DeleteSchedule removes one schedule entry unless it is booked.
func DeleteSchedule(c *fiber.Ctx) error {
	id := c.Params("id")
	var slot models.TechnicianSlot
	if err := db.DB.First(&slot, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Schedule entry not found",
			Error:   err.Error(),
		})
	}

	var activeBookings int64
	db.DB.Model(&models.Booking{}).
		Where("technician_slot_id = ? AND status IN ?", slot.ID,
			[]models.BookingStatus{models.BookingPending, models.BookingConfirmed}).
		Count(&activeBookings)
	if activeBookings > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Cannot delete a slot with an active booking",
		})
	}

	if err := db.DB.Delete(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete schedule entry",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ImportSchedule ingests a schedule payload exported from the legacy
// booking system. The normalization layer tolerates both field casings
// and the nested per-day shape; existing (date, slot) pairs are skipped.
func ImportSchedule(c *fiber.Ctx) error {
	entries, err := schedule.DecodeSchedule(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to decode legacy schedule payload",
			Error:   err.Error(),
		})
	}

	created, skipped := 0, 0
	for _, e := range entries {
		if e.TechnicianID == 0 || e.SlotID == 0 {
			skipped++
			continue
		}
		row := models.TechnicianSlot{
			TechnicianID: e.TechnicianID,
			WorkDate:     schedule.Midnight(e.WorkDate),
			SlotID:       e.SlotID,
			IsAvailable:  e.IsAvailable,
			Notes:        e.Notes,
		}
		if err := insertSlotRow(&row); err != nil {
			if utils.IsDuplicateError(err) {
				skipped++
				continue
			}
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to import schedule",
				Error:   err.Error(),
			})
		}
		created++
	}

	return c.JSON(fiber.Map{
		"message":           fmt.Sprintf("Imported %d entries", created),
		"totalSlotsSkipped": skipped,
	})
}

type createResult struct {
	attempted int
	created   int
	skipped   int
	failed    int
	firstErr  error
}

// createFullDayConcurrent fires one create per slot and waits for all of
// them to settle, tallying the outcome instead of failing fast. Partial
// success is a normal result here.
func createFullDayConcurrent(technicianID uint, day time.Time, slotIDs []uint, isAvailable bool, notes string) createResult {
	result := createResult{attempted: len(slotIDs)}

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, slotID := range slotIDs {
		wg.Add(1)
		go func(slotID uint) {
			defer wg.Done()
			row := models.TechnicianSlot{
				TechnicianID: technicianID,
				WorkDate:     schedule.Midnight(day),
				SlotID:       slotID,
				IsAvailable:  isAvailable,
				Notes:        notes,
			}
			err := insertSlotRow(&row)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				result.created++
			case utils.IsDuplicateError(err):
				result.skipped++
			default:
				result.failed++
				if result.firstErr == nil {
					result.firstErr = err
				}
				log.Printf("Failed to create slot %d on %s: %v", slotID, schedule.DayKey(day), err)
			}
		}(slotID)
	}
	wg.Wait()
	return result
}

// createRange walks every day in the range and creates the target slots,
// skipping pairs that already exist.
func createRange(technicianID uint, start, end time.Time, slotIDs []uint, isAvailable bool, notes string) createResult {
	var result createResult
	for _, day := range schedule.Days(start, end) {
		for _, slotID := range slotIDs {
			result.attempted++
			row := models.TechnicianSlot{
				TechnicianID: technicianID,
				WorkDate:     day,
				SlotID:       slotID,
				IsAvailable:  isAvailable,
				Notes:        notes,
			}
			err := insertSlotRow(&row)
			switch {
			case err == nil:
				result.created++
			case utils.IsDuplicateError(err):
				result.skipped++
			default:
				result.failed++
				if result.firstErr == nil {
					result.firstErr = err
				}
				log.Printf("Failed to create slot %d on %s: %v", slotID, schedule.DayKey(day), err)
			}
		}
	}
	return result
}

// insertSlotRow creates one schedule row, letting the composite unique
// index reject duplicates.
func insertSlotRow(row *models.TechnicianSlot) error {
	return db.DB.Create(row).Error
}

func buildDateRangeRequest(req *CreateScheduleRequest) (schedule.DateRangeRequest, map[string]string) {
	errs := make(map[string]string)
	drr := schedule.DateRangeRequest{
		TechnicianID: req.TechnicianID,
		Notes:        req.Notes,
	}

	if req.WorkDate != "" {
		drr.Mode = schedule.ModeSingleDay
		d, err := schedule.ParseISODate(req.WorkDate)
		if err != nil {
			errs["workDate"] = err.Error()
		}
		drr.WorkDate = d
		return drr, errs
	}

	drr.Mode = schedule.ModeWeekRange
	if req.StartDate != "" {
		d, err := schedule.ParseISODate(req.StartDate)
		if err != nil {
			errs["startDate"] = err.Error()
		}
		drr.StartDate = d
	}
	if req.EndDate != "" {
		d, err := schedule.ParseISODate(req.EndDate)
		if err != nil {
			errs["endDate"] = err.Error()
		}
		drr.EndDate = d
	}
	return drr, errs
}

func parseRangeQuery(c *fiber.Ctx) (time.Time, time.Time, error) {
	startStr := c.Query("startDate")
	endStr := c.Query("endDate", startStr)
	if startStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("startDate is required")
	}
	start, err := schedule.ParseISODate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := schedule.ParseISODate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("endDate must not be before startDate")
	}
	return start, end, nil
}

func ensureTechnician(id uint) error {
	var technician models.Technician
	return db.DB.First(&technician, id).Error
}

// targetSlotIDs resolves the slots a create applies to: the requested
// slot, or every active catalogue slot for full-day/full-week mode.
func targetSlotIDs(slotID uint) ([]uint, error) {
	if slotID != 0 {
		return []uint{slotID}, nil
	}
	slots, err := redis.GetActiveSlots()
	if err != nil {
		return nil, err
	}
	ids := make([]uint, len(slots))
	for i, s := range slots {
		ids[i] = s.ID
	}
	return ids, nil
}

// catalogueRows loads the active slot catalogue as matrix rows. A cache
// failure degrades to the projector's fallback of deriving rows from the
// schedule data itself.
func catalogueRows() []schedule.SlotRow {
	slots, err := redis.GetActiveSlots()
	if err != nil {
		log.Printf("Slot catalogue unavailable, deriving rows from schedule data: %v", err)
		return nil
	}
	rows := make([]schedule.SlotRow, len(slots))
	for i, s := range slots {
		rows[i] = schedule.SlotRow{SlotID: s.ID, Label: s.SlotLabel}
	}
	return rows
}

// loadTechnicianEntries fetches one technician's schedule rows for a
// range as canonical entries, hasBooking resolved from active bookings.
func loadTechnicianEntries(technicianID uint, start, end time.Time) ([]schedule.Entry, error) {
	query := db.DB.Preload("Slot").
		Where("technician_id = ?", technicianID).
		Where("work_date >= ? AND work_date <= ?", schedule.Midnight(start), schedule.Midnight(end))
	return collectEntries(query)
}

// loadCenterEntries fetches every technician's rows for one center; each
// entry keeps its technician id so a multi-technician view can group them.
func loadCenterEntries(centerID uint, start, end time.Time) ([]schedule.Entry, error) {
	query := db.DB.Preload("Slot").
		Joins("JOIN technicians ON technicians.id = technician_slots.technician_id").
		Where("technicians.center_id = ?", centerID).
		Where("work_date >= ? AND work_date <= ?", schedule.Midnight(start), schedule.Midnight(end))
	return collectEntries(query)
}

func collectEntries(query *gorm.DB) ([]schedule.Entry, error) {
	var rows []models.TechnicianSlot
	if err := query.Order("work_date asc, slot_id asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	booked, err := activeBookingSet(rows)
	if err != nil {
		return nil, err
	}

	entries := make([]schedule.Entry, len(rows))
	for i, row := range rows {
		entries[i] = schedule.Entry{
			TechnicianID:     row.TechnicianID,
			WorkDate:         row.WorkDate,
			SlotID:           row.SlotID,
			SlotLabel:        row.Slot.SlotLabel,
			IsAvailable:      row.IsAvailable,
			HasBooking:       booked[row.ID],
			Notes:            row.Notes,
			TechnicianSlotID: row.ID,
		}
	}
	return entries, nil
}

// activeBookingSet returns the schedule row ids that have a pending or
// confirmed booking.
func activeBookingSet(rows []models.TechnicianSlot) (map[uint]bool, error) {
	if len(rows) == 0 {
		return map[uint]bool{}, nil
	}
	ids := make([]uint, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	var bookedIDs []uint
	err := db.DB.Model(&models.Booking{}).
		Where("technician_slot_id IN ? AND status IN ?", ids,
			[]models.BookingStatus{models.BookingPending, models.BookingConfirmed}).
		Pluck("technician_slot_id", &bookedIDs).Error
	if err != nil {
		return nil, err
	}

	booked := make(map[uint]bool, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = true
	}
	return booked, nil
}
