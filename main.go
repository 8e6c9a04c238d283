package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/clinicdesk/clinic-booking/cron"
	"github.com/clinicdesk/clinic-booking/db"
	"github.com/clinicdesk/clinic-booking/redis"
	"github.com/clinicdesk/clinic-booking/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the clinic booking service",
		})
	})

	routes.SetupAuthRoutes(app)
	routes.SetupPatientRoutes(app)
	routes.SetupDoctorRoutes(app)
	routes.SetupStaffRoutes(app)

	cron.StartCronJobs()

	if err := app.Listen(":8000"); err != nil {
		log.Fatal(err)
	}
}
