package controller

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edusaber_backend/internals/constants"
)

// El guard de propiedad corta antes de tocar la base de datos, así que el
// controlador se arma sin conexión.
func TestGetStudentIndicators_OtroEstudianteRechazado(t *testing.T) {
	ctrl := NewIndicatorController(nil)
	app := fiber.New()
	app.Get("/indicators/student/:studentId", func(c *fiber.Ctx) error {
		c.Locals("user_role", constants.RoleEstudiante)
		c.Locals("student_id", uuid.New().String())
		return ctrl.GetStudentIndicators(c)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/indicators/student/"+uuid.New().String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Solo puedes consultar tu propio estado de indicadores", body.Message)
}

func TestGetStudentIndicators_SinPerfilDeEstudianteRechazado(t *testing.T) {
	ctrl := NewIndicatorController(nil)
	app := fiber.New()
	app.Get("/indicators/student/:studentId", func(c *fiber.Ctx) error {
		c.Locals("user_role", constants.RoleEstudiante)
		return ctrl.GetStudentIndicators(c)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/indicators/student/"+uuid.New().String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGetStudentIndicators_IDInvalido(t *testing.T) {
	ctrl := NewIndicatorController(nil)
	app := fiber.New()
	app.Get("/indicators/student/:studentId", func(c *fiber.Ctx) error {
		c.Locals("user_role", constants.RoleDocente)
		return ctrl.GetStudentIndicators(c)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/indicators/student/no-es-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
