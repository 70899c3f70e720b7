package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/cron"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/db"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/redis"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/routes"
)

func main() {
	app := fiber.New()
	db.Migrate()
	db.Seed()
	redis.InitRedis()
	defer redis.StopSlotCache()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("EV service center scheduler")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupCenterRoutes(app)
	routes.SetupTechnicianRoutes(app)
	routes.SetupTimeSlotRoutes(app)
	routes.SetupScheduleRoutes(app)
	routes.SetupBookingRoutes(app)

	log.Fatal(app.Listen(":8000"))
}
