package patient

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-booking/controllers"
	"github.com/clinicdesk/clinic-booking/models"
)

// currentPatient resolves the acting patient profile from the JWT identity.
// On failure the response has already been written and ok is false. A valid
// token without a patient profile is still a forbidden caller.
func currentPatient(c *fiber.Ctx) (patient *models.Patient, ok bool) {
	userID, idOK := c.Locals("userID").(uint)
	if !idOK {
		c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
		return nil, false
	}

	patient, err := controllers.Patients().GetByUserID(userID)
	if err != nil {
		c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You are not registered as a patient.",
		})
		return nil, false
	}
	return patient, true
}
