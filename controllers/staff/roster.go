package staff

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-booking/controllers"
	"github.com/clinicdesk/clinic-booking/services"
	"github.com/clinicdesk/clinic-booking/utils"
)

// DailyAppointments is the front-desk roster: every appointment on a single
// date, across all doctors.
func DailyAppointments(c *fiber.Ctx) error {
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		return utils.RespondServiceError(c,
			&services.ValidationError{Field: "date", Message: "date query parameter must be YYYY-MM-DD"},
			"Validation failed")
	}

	appointments, err := controllers.Lifecycle().DailyRoster(date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"date":         date.Format(utils.DateLayout),
		"appointments": appointments,
		"count":        len(appointments),
	})
}
