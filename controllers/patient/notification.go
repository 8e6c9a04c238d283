package patient

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-booking/controllers"
	"github.com/clinicdesk/clinic-booking/utils"
)

// MyNotifications lists the patient's notifications, newest first.
func MyNotifications(c *fiber.Ctx) error {
	patient, ok := currentPatient(c)
	if !ok {
		return nil
	}

	notifications, err := controllers.Notifications().ListByPatient(patient.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch notifications",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"notifications": notifications,
		"count":         len(notifications),
	})
}
