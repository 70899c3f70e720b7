package db

import (
	"fmt"
	"log"

	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/models"
)

// Seed creates the default roles, scheduling permissions and the fixed
// time-slot catalogue if they do not exist yet. Safe to run on every boot.
func Seed() {
	seedRolesAndPermissions()
	seedTimeSlots()
	fmt.Println("✅ Seed data ensured!")
}

func seedRolesAndPermissions() {
	roles := []models.Role{
		{Name: "admin", Description: "Administrator with full access"},
		{Name: "manager", Description: "Center manager who maintains technician schedules"},
		{Name: "technician", Description: "Technician who can view their own schedule"},
		{Name: "staff", Description: "Front desk staff who manage bookings"},
	}
	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}

	resources := []string{"technicians", "time-slots", "schedules", "bookings"}
	actions := []string{"create", "read", "update", "delete"}
	for _, resource := range resources {
		for _, action := range actions {
			name := action + "_" + resource
			var existing models.Permission
			if DB.Where("name = ?", name).First(&existing).RowsAffected == 0 {
				DB.Create(&models.Permission{
					Name:     name,
					Resource: resource,
					Action:   action,
				})
			}
		}
	}

	grant("admin", func(perms *[]models.Permission) {
		DB.Find(perms)
	})
	grant("manager", func(perms *[]models.Permission) {
		DB.Where("resource IN (?)", []string{"technicians", "schedules", "time-slots"}).Find(perms)
	})
	grant("staff", func(perms *[]models.Permission) {
		DB.Where("resource = ?", "bookings").
			Or("resource IN (?) AND action = ?", []string{"schedules", "technicians", "time-slots"}, "read").
			Find(perms)
	})
	grant("technician", func(perms *[]models.Permission) {
		DB.Where("action = ?", "read").Find(perms)
	})
}

func grant(roleName string, load func(*[]models.Permission)) {
	var role models.Role
	if DB.Where("name = ?", roleName).First(&role).RowsAffected == 0 {
		return
	}
	var perms []models.Permission
	load(&perms)
	if err := DB.Model(&role).Association("Permissions").Replace(perms); err != nil {
		log.Printf("Failed to grant permissions to %s: %v", roleName, err)
	}
}

// The working day runs 08:00-17:00 with a lunch break at 12:00.
func seedTimeSlots() {
	hours := []string{"08:00", "09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"}
	ends := []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}
	for i, start := range hours {
		label := start + "-" + ends[i]
		var existing models.TimeSlot
		if DB.Where("slot_label = ?", label).First(&existing).RowsAffected == 0 {
			DB.Create(&models.TimeSlot{
				SlotLabel: label,
				StartTime: start,
				EndTime:   ends[i],
				IsActive:  true,
			})
		}
	}
}
