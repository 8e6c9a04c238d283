package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-booking/controllers/patient"
	"github.com/clinicdesk/clinic-booking/middleware"
	"github.com/clinicdesk/clinic-booking/models"
)

// SetupPatientRoutes configures all patient related routes
func SetupPatientRoutes(app *fiber.App) {
	group := app.Group("/patient", middleware.Protected(), middleware.RequireRole(models.RolePatient))

	group.Get("/appointments", patient.MyAppointments)
	group.Post("/appointments", patient.BookAppointment)
	group.Post("/appointments/:id/cancel", patient.CancelAppointment)
	group.Patch("/appointments/:id/reschedule", patient.RescheduleAppointment)

	group.Get("/notifications", patient.MyNotifications)
	group.Get("/history", patient.MyHistory)
}
