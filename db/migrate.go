package db

import (
	"fmt"
	"log"

	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.ServiceCenter{},
		&models.Technician{},
		&models.TimeSlot{},
		&models.TechnicianSlot{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
