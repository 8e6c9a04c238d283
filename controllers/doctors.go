package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-booking/utils"
)

// SearchDoctors lists doctors, optionally filtered by specialization.
// Public: prospective patients browse before registering.
func SearchDoctors(c *fiber.Ctx) error {
	specialization := c.Query("specialization")

	doctors, err := Doctors().Search(specialization)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctors",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"doctors": doctors,
		"count":   len(doctors),
	})
}
