package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edusaber_backend/internals/constants"
)

func accessCheckFor(t *testing.T, planStudentID uuid.UUID, locals map[string]string) bool {
	t.Helper()

	var allowed bool
	app := fiber.New()
	app.Get("/check", func(c *fiber.Ctx) error {
		for k, v := range locals {
			c.Locals(k, v)
		}
		allowed = canAccessStudentPlan(c, planStudentID)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/check", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return allowed
}

func TestCanAccessStudentPlan_DuenoDelPlan(t *testing.T) {
	studentID := uuid.New()
	allowed := accessCheckFor(t, studentID, map[string]string{
		"user_role":  constants.RoleEstudiante,
		"student_id": studentID.String(),
	})
	assert.True(t, allowed)
}

func TestCanAccessStudentPlan_OtroEstudiante(t *testing.T) {
	allowed := accessCheckFor(t, uuid.New(), map[string]string{
		"user_role":  constants.RoleEstudiante,
		"student_id": uuid.New().String(),
	})
	assert.False(t, allowed, "un estudiante no lee los planes de otro")
}

func TestCanAccessStudentPlan_SinPerfilDeEstudiante(t *testing.T) {
	allowed := accessCheckFor(t, uuid.New(), map[string]string{
		"user_role": constants.RoleEstudiante,
	})
	assert.False(t, allowed)
}

func TestCanAccessStudentPlan_DocenteYAdmin(t *testing.T) {
	planStudent := uuid.New()
	for _, role := range []string{
		constants.RoleDocente,
		constants.RoleAdministrador,
		constants.RoleSuperAdministrador,
	} {
		allowed := accessCheckFor(t, planStudent, map[string]string{"user_role": role})
		assert.True(t, allowed, role)
	}
}
