package controller

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El rechazo de autoborrado ocurre antes de tocar la base de datos, así que
// el controlador se arma sin conexión.
func TestDeleteUser_NoPuedeBorrarseASiMismo(t *testing.T) {
	userID := uuid.New()

	ctrl := NewUserController(nil)
	app := fiber.New()
	app.Delete("/users/:id", func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return ctrl.DeleteUser(c)
	})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/users/"+userID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "No puedes eliminar tu propia cuenta", body.Message)
}

func TestDeleteUser_IDInvalido(t *testing.T) {
	ctrl := NewUserController(nil)
	app := fiber.New()
	app.Delete("/users/:id", func(c *fiber.Ctx) error {
		c.Locals("user_id", uuid.New().String())
		return ctrl.DeleteUser(c)
	})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/users/no-es-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
