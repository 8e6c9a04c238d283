package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-booking/models"
	"github.com/clinicdesk/clinic-booking/services"
)

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// RespondServiceError maps a service-layer error onto the HTTP reply.
// Unrecognized errors become a 500 with the fallback message.
func RespondServiceError(c *fiber.Ctx, err error, fallback string) error {
	var validation *services.ValidationError

	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resource not found",
		})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Access denied",
		})
	case errors.Is(err, models.ErrInvalidAction):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Unknown action",
		})
	case errors.Is(err, models.ErrInvalidTransition):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Action not allowed from the current status",
		})
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"field":   validation.Field,
			"message": validation.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Message: fallback,
		Error:   err.Error(),
	})
}
