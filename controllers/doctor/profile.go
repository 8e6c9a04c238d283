package doctor

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-booking/controllers"
	"github.com/clinicdesk/clinic-booking/db"
	"github.com/clinicdesk/clinic-booking/models"
	"github.com/clinicdesk/clinic-booking/utils"
)

// currentDoctor resolves the acting doctor profile from the JWT identity.
// On failure the response has already been written and ok is false.
func currentDoctor(c *fiber.Ctx) (doctor *models.Doctor, ok bool) {
	userID, idOK := c.Locals("userID").(uint)
	if !idOK {
		c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
		return nil, false
	}

	doctor, err := controllers.Doctors().GetByUserID(userID)
	if err != nil {
		c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Only doctors can access this page.",
		})
		return nil, false
	}
	return doctor, true
}

// UpdateProfilePicture uploads a new profile photo to Cloudinary and stores
// the secure URL on the doctor profile.
func UpdateProfilePicture(c *fiber.Ctx) error {
	doctor, ok := currentDoctor(c)
	if !ok {
		return nil
	}

	file, err := c.FormFile("profile_picture")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to get profile picture",
		})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open profile picture",
		})
	}
	defer f.Close()

	publicID := fmt.Sprintf("doctor_%d_%d", doctor.ID, time.Now().Unix())
	secureURL, err := utils.UploadToCloudinary(f, publicID, "doctor_profiles")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload profile picture to Cloudinary",
		})
	}

	if err := db.DB.Model(doctor).Update("profile_picture", secureURL).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save profile picture",
		})
	}

	return c.JSON(fiber.Map{
		"profile_picture": secureURL,
	})
}
