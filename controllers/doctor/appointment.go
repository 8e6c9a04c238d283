package doctor

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-booking/controllers"
	"github.com/clinicdesk/clinic-booking/models"
	"github.com/clinicdesk/clinic-booking/utils"
)

// Dashboard lists every appointment assigned to the logged-in doctor.
func Dashboard(c *fiber.Ctx) error {
	doctor, ok := currentDoctor(c)
	if !ok {
		return nil
	}

	appointments, err := controllers.Lifecycle().Dashboard(doctor.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

type ActionInput struct {
	Action string `json:"action"` // confirm, reject or complete
}

// AppointmentAction applies confirm/reject/complete to an appointment the
// doctor is assigned to.
func AppointmentAction(c *fiber.Ctx) error {
	doctor, ok := currentDoctor(c)
	if !ok {
		return nil
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	input := new(ActionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	appointment, err := controllers.Lifecycle().Act(doctor.ID, uint(id), models.AppointmentAction(input.Action))
	if err != nil {
		return utils.RespondServiceError(c, err, "Failed to update appointment")
	}

	return c.JSON(fiber.Map{
		"appointment": appointment,
	})
}

// Report summarizes the doctor's appointments per status. All four statuses
// are always present in the summary.
func Report(c *fiber.Ctx) error {
	doctor, ok := currentDoctor(c)
	if !ok {
		return nil
	}

	summary, err := controllers.Lifecycle().Report(doctor.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to build report",
			Error:   err.Error(),
		})
	}

	var total int64
	for _, count := range summary {
		total += count
	}

	return c.JSON(fiber.Map{
		"summary": summary,
		"total":   total,
	})
}
