package controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/db"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/models"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/utils"
)

// GetAllTechnicians returns the technician roster, paged and optionally
// filtered by service center.
func GetAllTechnicians(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("pageNumber", "1"))
	limit, _ := strconv.Atoi(c.Query("pageSize", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := db.DB.Preload("User").Preload("Center").Where("is_active = ?", true)
	countQuery := db.DB.Model(&models.Technician{}).Where("is_active = ?", true)
	if centerID := c.Query("centerId"); centerID != "" {
		query = query.Where("center_id = ?", centerID)
		countQuery = countQuery.Where("center_id = ?", centerID)
	}

	var technicians []models.Technician
	if err := query.Limit(limit).Offset(offset).Find(&technicians).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch technicians",
			Error:   err.Error(),
		})
	}

	var count int64
	countQuery.Count(&count)

	for i := range technicians {
		technicians[i].User.Password = ""
	}

	return c.JSON(fiber.Map{
		"technicians": technicians,
		"total":       count,
		"pageNumber":  page,
		"pageSize":    limit,
		"pages":       (int(count) + limit - 1) / limit,
	})
}

// GetTechnician returns one technician with their user and center details.
func GetTechnician(c *fiber.Ctx) error {
	id := c.Params("id")
	var technician models.Technician
	if err := db.DB.Preload("User").Preload("Center").First(&technician, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Technician not found",
			Error:   err.Error(),
		})
	}
	technician.User.Password = ""
	return c.JSON(technician)
}

// CreateTechnician registers a technician profile for an existing user.
func CreateTechnician(c *fiber.Ctx) error {
	technician := new(models.Technician)
	if err := c.BodyParser(technician); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var user models.User
	if err := db.DB.First(&user, technician.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
			Error:   err.Error(),
		})
	}
	var center models.ServiceCenter
	if err := db.DB.First(&center, technician.CenterID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service center not found",
			Error:   err.Error(),
		})
	}

	technician.IsActive = true
	if err := db.DB.Create(technician).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create technician",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(technician)
}

// UpdateTechnician updates a technician profile
func UpdateTechnician(c *fiber.Ctx) error {
	id := c.Params("id")
	var technician models.Technician
	if err := db.DB.First(&technician, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Technician not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&technician); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&technician).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update technician",
			Error:   err.Error(),
		})
	}
	return c.JSON(technician)
}

// DeleteTechnician soft-deletes a technician profile
func DeleteTechnician(c *fiber.Ctx) error {
	id := c.Params("id")
	var technician models.Technician
	if err := db.DB.First(&technician, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Technician not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(&technician).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete technician",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadTechnicianAvatar stores a profile picture on Cloudinary and saves
// the returned URL.
func UploadTechnicianAvatar(c *fiber.Ctx) error {
	id := c.Params("id")
	var technician models.Technician
	if err := db.DB.First(&technician, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Technician not found",
			Error:   err.Error(),
		})
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Avatar file is required",
			Error:   err.Error(),
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to read avatar file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	url, err := utils.UploadAvatar(file, fmt.Sprintf("technician_%d", technician.ID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload avatar",
			Error:   err.Error(),
		})
	}

	technician.AvatarURL = url
	if err := db.DB.Save(&technician).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save avatar URL",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"avatar_url": url})
}
