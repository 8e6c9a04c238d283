package patient

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-booking/controllers"
	"github.com/clinicdesk/clinic-booking/services"
	"github.com/clinicdesk/clinic-booking/utils"
)

// MyAppointments returns the patient's appointments split into upcoming and
// past.
func MyAppointments(c *fiber.Ctx) error {
	patient, ok := currentPatient(c)
	if !ok {
		return nil
	}

	upcoming, past, err := controllers.Lifecycle().MyAppointments(patient.ID, utils.Today())
	if err != nil {
		return utils.RespondServiceError(c, err, "Failed to fetch appointments")
	}

	return c.JSON(fiber.Map{
		"upcoming": upcoming,
		"past":     past,
	})
}

type BookInput struct {
	DoctorID uint   `json:"doctor_id"`
	Date     string `json:"date"` // "YYYY-MM-DD"
	Time     string `json:"time"` // "HH:MM" in 24h
}

// BookAppointment creates a Booked appointment with the chosen doctor.
func BookAppointment(c *fiber.Ctx) error {
	patient, ok := currentPatient(c)
	if !ok {
		return nil
	}

	input := new(BookInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return utils.RespondServiceError(c,
			&services.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"},
			"Validation failed")
	}

	appointment, err := controllers.Lifecycle().Book(patient.ID, input.DoctorID, date, input.Time)
	if err != nil {
		return utils.RespondServiceError(c, err, "Failed to book appointment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Appointment requested successfully.",
		"appointment": appointment,
	})
}

// CancelAppointment cancels one of the patient's own appointments.
func CancelAppointment(c *fiber.Ctx) error {
	patient, ok := currentPatient(c)
	if !ok {
		return nil
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	appointment, err := controllers.Lifecycle().Cancel(patient.ID, uint(id))
	if err != nil {
		return utils.RespondServiceError(c, err, "Failed to cancel appointment")
	}

	return c.JSON(fiber.Map{
		"message":     "Appointment cancelled successfully.",
		"appointment": appointment,
	})
}

type RescheduleInput struct {
	Date string `json:"date"` // "YYYY-MM-DD"
	Time string `json:"time"` // "HH:MM" in 24h
}

// RescheduleAppointment moves an appointment to a new date/time. The status
// drops back to Booked so the doctor re-confirms.
func RescheduleAppointment(c *fiber.Ctx) error {
	patient, ok := currentPatient(c)
	if !ok {
		return nil
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	input := new(RescheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return utils.RespondServiceError(c,
			&services.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"},
			"Validation failed")
	}

	appointment, err := controllers.Lifecycle().Reschedule(patient.ID, uint(id), date, input.Time)
	if err != nil {
		return utils.RespondServiceError(c, err, "Failed to reschedule appointment")
	}

	return c.JSON(fiber.Map{
		"message":     "Appointment rescheduled successfully.",
		"appointment": appointment,
	})
}
