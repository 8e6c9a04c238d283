package doctor

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-booking/controllers"
	"github.com/clinicdesk/clinic-booking/models"
	"github.com/clinicdesk/clinic-booking/services"
	"github.com/clinicdesk/clinic-booking/utils"
)

// ListSchedules lists the doctor's declared availability windows.
func ListSchedules(c *fiber.Ctx) error {
	doctor, ok := currentDoctor(c)
	if !ok {
		return nil
	}

	schedules, err := controllers.Schedules().ListByDoctor(doctor.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedules",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"schedules": schedules,
		"count":     len(schedules),
	})
}

type ScheduleInput struct {
	Date      string `json:"date"`       // "YYYY-MM-DD"
	StartTime string `json:"start_time"` // "HH:MM" in 24h
	EndTime   string `json:"end_time"`   // "HH:MM" in 24h
}

// AddSchedule declares an availability window. Overlapping windows are
// accepted as-is.
func AddSchedule(c *fiber.Ctx) error {
	doctor, ok := currentDoctor(c)
	if !ok {
		return nil
	}

	input := new(ScheduleInput)
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
	if _, err := time.Parse("15:04", input.StartTime); err != nil {
		return utils.RespondServiceError(c,
			&services.ValidationError{Field: "start_time", Message: "start_time must be HH:MM in 24h format"},
			"Validation failed")
	}
	if _, err := time.Parse("15:04", input.EndTime); err != nil {
		return utils.RespondServiceError(c,
			&services.ValidationError{Field: "end_time", Message: "end_time must be HH:MM in 24h format"},
			"Validation failed")
	}

	schedule := &models.DoctorSchedule{
		DoctorID:  doctor.ID,
		Date:      date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	}
	if err := controllers.Schedules().Create(schedule); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create schedule",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(schedule)
}

// ListLeaves lists the doctor's blackout dates, most recent first.
func ListLeaves(c *fiber.Ctx) error {
	doctor, ok := currentDoctor(c)
	if !ok {
		return nil
	}

	leaves, err := controllers.Leaves().ListByDoctor(doctor.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch leaves",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"leaves": leaves,
		"count":  len(leaves),
	})
}

type LeaveInput struct {
	Date   string `json:"date"` // "YYYY-MM-DD"
	Reason string `json:"reason"`
}

// ApplyLeave records a blackout date and cancels every Booked appointment on
// it, notifying each affected patient.
func ApplyLeave(c *fiber.Ctx) error {
	doctor, ok := currentDoctor(c)
	if !ok {
		return nil
	}

	input := new(LeaveInput)
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

	leave, cancelled, err := controllers.Lifecycle().ApplyLeave(doctor.ID, date, input.Reason)
	if err != nil {
		return utils.RespondServiceError(c, err, "Failed to apply leave")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Leave applied successfully! Patients have been notified.",
		"leave":     leave,
		"cancelled": len(cancelled),
	})
}
