package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole gates a route group on the role baked into the JWT. The role
// is decided once at login; there is no per-request probing of profile
// tables.
func RequireRole(roleName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role != roleName {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have the required role to perform this action",
			})
		}
		return c.Next()
	}
}
