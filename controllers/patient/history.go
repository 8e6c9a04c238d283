package patient

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-booking/controllers"
	"github.com/clinicdesk/clinic-booking/utils"
)

// MyHistory lists the patient's own medical records, newest first. Patients
// only ever see their own ledger.
func MyHistory(c *fiber.Ctx) error {
	patient, ok := currentPatient(c)
	if !ok {
		return nil
	}

	records, err := controllers.HistoryService().ForPatient(patient.ID)
	if err != nil {
		return utils.RespondServiceError(c, err, "Failed to fetch medical history")
	}

	return c.JSON(fiber.Map{
		"records": records,
		"count":   len(records),
	})
}
