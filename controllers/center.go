package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/db"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/models"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/utils"
)

// GetAllCenters retrieves all service centers
func GetAllCenters(c *fiber.Ctx) error {
	var centers []models.ServiceCenter
	if err := db.DB.Find(&centers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to get service centers",
			Error:   err.Error(),
		})
	}
	return c.JSON(centers)
}

// GetCenter retrieves a specific service center by ID
func GetCenter(c *fiber.Ctx) error {
	id := c.Params("id")
	var center models.ServiceCenter
	if err := db.DB.First(&center, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service center not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(center)
}

// CreateCenter creates a new service center
func CreateCenter(c *fiber.Ctx) error {
	center := new(models.ServiceCenter)
	if err := c.BodyParser(center); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	center.IsActive = true
	if err := db.DB.Create(center).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service center",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(center)
}

// UpdateCenter updates an existing service center
func UpdateCenter(c *fiber.Ctx) error {
	id := c.Params("id")
	var center models.ServiceCenter
	if err := db.DB.First(&center, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service center not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&center); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&center).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update service center",
			Error:   err.Error(),
		})
	}
	return c.JSON(center)
}

// DeleteCenter soft-deletes a service center by ID
func DeleteCenter(c *fiber.Ctx) error {
	id := c.Params("id")
	var center models.ServiceCenter
	if err := db.DB.First(&center, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service center not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(&center).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete service center",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
