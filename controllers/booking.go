package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/db"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/models"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/utils"
)

// CreateBookingRequest is the front-desk booking payload.
type CreateBookingRequest struct {
	TechnicianSlotID uint   `json:"technicianSlotId" validate:"required"`
	CustomerName     string `json:"customerName" validate:"required"`
	CustomerPhone    string `json:"customerPhone" validate:"required"`
	VehicleModel     string `json:"vehicleModel"`
	VehiclePlate     string `json:"vehiclePlate"`
	ServiceRequest   string `json:"serviceRequest"`
}

// CreateBooking reserves an available technician slot for a customer.
func CreateBooking(c *fiber.Ctx) error {
	req := new(CreateBookingRequest)
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

	var slot models.TechnicianSlot
	if err := db.DB.First(&slot, req.TechnicianSlotID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Schedule entry not found",
		})
	}
	if !slot.IsAvailable {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "The technician is not available in this slot",
		})
	}

	var activeCount int64
	db.DB.Model(&models.Booking{}).
		Where("technician_slot_id = ? AND status IN ?", slot.ID,
			[]models.BookingStatus{models.BookingPending, models.BookingConfirmed}).
		Count(&activeCount)
	if activeCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "This slot is already booked",
		})
	}

	booking := models.Booking{
		Code:             utils.GenerateBookingCode(),
		TechnicianSlotID: slot.ID,
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		VehicleModel:     req.VehicleModel,
		VehiclePlate:     req.VehiclePlate,
		ServiceRequest:   req.ServiceRequest,
	}
	if err := db.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetBooking returns one booking with its slot and technician.
func GetBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.Preload("TechnicianSlot.Slot").Preload("TechnicianSlot.Technician.User").
		First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// GetAllBookings lists bookings, optionally filtered by status.
func GetAllBookings(c *fiber.Ctx) error {
	query := db.DB.Preload("TechnicianSlot.Slot")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	var bookings []models.Booking
	if err := query.Order("created_at desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// UpdateBookingStatus applies a workflow transition. Illegal transitions
// (completing a pending booking, touching a terminal one) are 422s.
func UpdateBookingStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	type statusRequest struct {
		Status models.BookingStatus `json:"status"`
	}
	req := new(statusRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := booking.UpdateStatus(db.DB, req.Status); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Invalid booking state transition",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}
