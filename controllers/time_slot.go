package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/db"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/models"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/redis"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/utils"
)

// GetAllTimeSlots returns the slot catalogue. With activeOnly=true the
// active slots are served from the redis cache.
func GetAllTimeSlots(c *fiber.Ctx) error {
	if c.Query("activeOnly") == "true" {
		slots, err := redis.GetActiveSlots()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to get time slots",
				Error:   err.Error(),
			})
		}
		return c.JSON(slots)
	}

	var slots []models.TimeSlot
	if err := db.DB.Order("start_time asc").Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to get time slots",
			Error:   err.Error(),
		})
	}
	return c.JSON(slots)
}

// GetTimeSlot retrieves a specific time slot by ID
func GetTimeSlot(c *fiber.Ctx) error {
	id := c.Params("id")
	var slot models.TimeSlot
	if err := db.DB.First(&slot, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Time slot not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(slot)
}

// CreateTimeSlot creates a new catalogue slot
func CreateTimeSlot(c *fiber.Ctx) error {
	slot := new(models.TimeSlot)
	if err := c.BodyParser(slot); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Create(slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create time slot",
			Error:   err.Error(),
		})
	}
	redis.InvalidateSlotCache()
	return c.Status(fiber.StatusCreated).JSON(slot)
}

// UpdateTimeSlot updates an existing catalogue slot
func UpdateTimeSlot(c *fiber.Ctx) error {
	id := c.Params("id")
	var slot models.TimeSlot
	if err := db.DB.First(&slot, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Time slot not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&slot); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update time slot",
			Error:   err.Error(),
		})
	}
	redis.InvalidateSlotCache()
	return c.JSON(slot)
}

// DeleteTimeSlot deletes a catalogue slot by ID
func DeleteTimeSlot(c *fiber.Ctx) error {
	id := c.Params("id")
	var slot models.TimeSlot
	if err := db.DB.First(&slot, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Time slot not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete time slot",
			Error:   err.Error(),
		})
	}
	redis.InvalidateSlotCache()
	return c.SendStatus(fiber.StatusNoContent)
}
