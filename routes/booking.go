package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/controllers"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/middleware"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings", middleware.Protected())
	booking.Get("/", middleware.RequirePermission("bookings", "read"), controllers.GetAllBookings)
	booking.Get("/:id", middleware.RequirePermission("bookings", "read"), controllers.GetBooking)
	booking.Post("/", middleware.RequirePermission("bookings", "create"), controllers.CreateBooking)
	booking.Patch("/:id/status", middleware.RequirePermission("bookings", "update"), controllers.UpdateBookingStatus)
}
