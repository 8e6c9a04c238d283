package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-booking/controllers/staff"
	"github.com/clinicdesk/clinic-booking/middleware"
	"github.com/clinicdesk/clinic-booking/models"
)

// SetupStaffRoutes configures the front-desk routes
func SetupStaffRoutes(app *fiber.App) {
	group := app.Group("/staff", middleware.Protected(), middleware.RequireRole(models.RoleStaff))

	group.Get("/appointments", staff.DailyAppointments)
}
