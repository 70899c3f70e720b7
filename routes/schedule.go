package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/controllers"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/middleware"
)

// SetupScheduleRoutes configures all technician schedule related routes
func SetupScheduleRoutes(app *fiber.App) {
	sched := app.Group("/schedules", middleware.Protected())
	sched.Get("/technician/:id", middleware.RequirePermission("schedules", "read"), controllers.GetTechnicianSchedule)
	sched.Get("/technician/:id/matrix", middleware.RequirePermission("schedules", "read"), controllers.GetTechnicianMatrix)
	sched.Get("/center/:id", middleware.RequirePermission("schedules", "read"), controllers.GetCenterSchedule)
	sched.Post("/", middleware.RequirePermission("schedules", "create"), controllers.CreateSchedule)
	sched.Post("/import", middleware.RequireRole("admin"), controllers.ImportSchedule)
	sched.Patch("/:id", middleware.RequirePermission("schedules", "update"), controllers.UpdateSchedule)
	sched.Delete("/:id", middleware.RequirePermission("schedules", "delete"), controllers.DeleteSchedule)
}
