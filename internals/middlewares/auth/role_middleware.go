package auth

import (
	"github.com/gofiber/fiber/v2"

	"bookstore_backend/internals/constants"
)

// IsAdmin membatasi route khusus admin toko (inventori, laporan, konfirmasi order).
func IsAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}
