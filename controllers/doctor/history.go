package doctor

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-booking/controllers"
	"github.com/clinicdesk/clinic-booking/utils"
)

// PatientHistory shows a patient's full ledger to the doctor, newest first.
func PatientHistory(c *fiber.Ctx) error {
	_, ok := currentDoctor(c)
	if !ok {
		return nil
	}

	patientID, err := c.ParamsInt("id")
	if err != nil || patientID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid patient ID",
		})
	}

	records, err := controllers.HistoryService().ForPatient(uint(patientID))
	if err != nil {
		return utils.RespondServiceError(c, err, "Failed to fetch medical history")
	}

	return c.JSON(fiber.Map{
		"records": records,
		"count":   len(records),
	})
}

type HistoryInput struct {
	Notes        string `json:"notes"`
	Prescription string `json:"prescription"`
}

// AddHistory appends a ledger entry for the patient. Entries are never
// edited afterwards.
func AddHistory(c *fiber.Ctx) error {
	doctor, ok := currentDoctor(c)
	if !ok {
		return nil
	}

	patientID, err := c.ParamsInt("id")
	if err != nil || patientID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid patient ID",
		})
	}

	input := new(HistoryInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	record, err := controllers.HistoryService().Add(doctor.ID, uint(patientID), input.Notes, input.Prescription)
	if err != nil {
		return utils.RespondServiceError(c, err, "Failed to add medical history")
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}
