package auth

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "edusaber_backend/internals/helpers/auth"
)

// RequireRoles corta la request si el rol del token no está en la lista.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.HasRole(c, roles...) {
			return fiber.NewError(fiber.StatusForbidden, "No tienes permisos para acceder a este recurso")
		}
		return c.Next()
	}
}
