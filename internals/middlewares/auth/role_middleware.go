package middleware

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "ptaweb_backend/internals/helpers/auth"
)

// RequireRoles rejects requests whose token carries none of the wanted roles.
func RequireRoles(wanted ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.HasRole(c, wanted...) {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden")
		}
		return c.Next()
	}
}
