package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-booking/controllers"
	"github.com/clinicdesk/clinic-booking/controllers/doctor"
	"github.com/clinicdesk/clinic-booking/middleware"
	"github.com/clinicdesk/clinic-booking/models"
)

// SetupDoctorRoutes configures the public doctor directory and all
// doctor-only routes
func SetupDoctorRoutes(app *fiber.App) {
	// Public directory, searchable by specialization
	app.Get("/doctors", controllers.SearchDoctors)

	group := app.Group("/doctor", middleware.Protected(), middleware.RequireRole(models.RoleDoctor))

	group.Get("/appointments", doctor.Dashboard)
	group.Post("/appointments/:id/action", doctor.AppointmentAction)
	group.Get("/report", doctor.Report)

	group.Get("/schedules", doctor.ListSchedules)
	group.Post("/schedules", doctor.AddSchedule)
	group.Get("/leaves", doctor.ListLeaves)
	group.Post("/leaves", doctor.ApplyLeave)

	group.Get("/patients/:id/history", doctor.PatientHistory)
	group.Post("/patients/:id/history", doctor.AddHistory)

	group.Patch("/profile/picture", doctor.UpdateProfilePicture)
}
