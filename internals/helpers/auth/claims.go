package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Accesores a los claims que AuthMiddleware deja en c.Locals.

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id no presente en el token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id inválido en el token")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals("user_role").(string)
	return role
}

func GetInstitutionFromToken(c *fiber.Ctx) string {
	inst, _ := c.Locals("user_institution").(string)
	return inst
}

// GetTeacherIDFromToken devuelve el teacher_id si el usuario es docente.
func GetTeacherIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("teacher_id").(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "El usuario no tiene perfil de docente")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "teacher_id inválido en el token")
	}
	return id, nil
}

// GetStudentIDFromToken devuelve el student_id si el usuario es estudiante.
func GetStudentIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("student_id").(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "El usuario no tiene perfil de estudiante")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "student_id inválido en el token")
	}
	return id, nil
}

func HasRole(c *fiber.Ctx, roles ...string) bool {
	current := GetRoleFromToken(c)
	for _, r := range roles {
		if current == r {
			return true
		}
	}
	return false
}
