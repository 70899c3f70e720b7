package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/controllers"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/middleware"
)

// SetupTechnicianRoutes configures all technician roster related routes
func SetupTechnicianRoutes(app *fiber.App) {
	technician := app.Group("/technicians")
	technician.Get("/", controllers.GetAllTechnicians)
	technician.Get("/:id", controllers.GetTechnician)
	technician.Post("/", middleware.Protected(), middleware.RequirePermission("technicians", "create"), controllers.CreateTechnician)
	technician.Patch("/:id", middleware.Protected(), middleware.RequirePermission("technicians", "update"), controllers.UpdateTechnician)
	technician.Delete("/:id", middleware.Protected(), middleware.RequirePermission("technicians", "delete"), controllers.DeleteTechnician)
	technician.Post("/:id/avatar", middleware.Protected(), middleware.RequirePermission("technicians", "update"), controllers.UploadTechnicianAvatar)
}

// SetupCenterRoutes configures all service center related routes
func SetupCenterRoutes(app *fiber.App) {
	center := app.Group("/centers")
	center.Get("/", controllers.GetAllCenters)
	center.Get("/:id", controllers.GetCenter)
	center.Post("/", middleware.Protected(), middleware.RequireRole("admin"), controllers.CreateCenter)
	center.Patch("/:id", middleware.Protected(), middleware.RequireRole("admin"), controllers.UpdateCenter)
	center.Delete("/:id", middleware.Protected(), middleware.RequireRole("admin"), controllers.DeleteCenter)
}
