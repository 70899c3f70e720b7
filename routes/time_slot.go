package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/controllers"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/middleware"
)

// SetupTimeSlotRoutes configures all slot catalogue related routes
func SetupTimeSlotRoutes(app *fiber.App) {
	timeSlot := app.Group("/time-slots")
	timeSlot.Get("/", controllers.GetAllTimeSlots)
	timeSlot.Get("/:id", controllers.GetTimeSlot)
	timeSlot.Post("/", middleware.Protected(), middleware.RequirePermission("time-slots", "create"), controllers.CreateTimeSlot)
	timeSlot.Patch("/:id", middleware.Protected(), middleware.RequirePermission("time-slots", "update"), controllers.UpdateTimeSlot)
	timeSlot.Delete("/:id", middleware.Protected(), middleware.RequirePermission("time-slots", "delete"), controllers.DeleteTimeSlot)
}
