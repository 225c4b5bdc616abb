package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edusaber_backend/internals/constants"
	authService "edusaber_backend/internals/features/users/auth/service"
	userModel "edusaber_backend/internals/features/users/users/model"
	helperAuth "edusaber_backend/internals/helpers/auth"
)

// Los claims que emite el login y las llaves que el middleware deja en
// Locals tienen que coincidir; si divergen, RequireRoles rechaza todo.
func TestStoreClaimsToLocals_CoincideConLosClaimsEmitidos(t *testing.T) {
	teacherID := uuid.New()
	user := &userModel.UserModel{
		UserID:          uuid.New(),
		UserName:        "Laura Ríos",
		UserRole:        constants.RoleDocente,
		UserInstitution: "IE El Progreso",
	}
	claims := authService.BuildAccessClaims(user, authService.ProfileRefs{TeacherID: &teacherID}, time.Now())

	app := fiber.New()
	app.Get("/check", func(c *fiber.Ctx) error {
		storeClaimsToLocals(c, claims)

		assert.Equal(t, constants.RoleDocente, helperAuth.GetRoleFromToken(c))
		assert.Equal(t, "IE El Progreso", helperAuth.GetInstitutionFromToken(c))
		assert.True(t, helperAuth.HasRole(c, constants.DocenteAndAbove...))

		gotTeacher, err := helperAuth.GetTeacherIDFromToken(c)
		assert.NoError(t, err)
		assert.Equal(t, teacherID, gotTeacher)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/check", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoles_ConClaimsEmitidos(t *testing.T) {
	user := &userModel.UserModel{
		UserID:   uuid.New(),
		UserName: "Laura Ríos",
		UserRole: constants.RoleDocente,
	}
	claims := authService.BuildAccessClaims(user, authService.ProfileRefs{}, time.Now())

	app := fiber.New()
	app.Get("/t/ping",
		func(c *fiber.Ctx) error {
			storeClaimsToLocals(c, claims)
			return c.Next()
		},
		RequireRoles(constants.DocenteAndAbove...),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	app.Get("/sa/ping",
		func(c *fiber.Ctx) error {
			storeClaimsToLocals(c, claims)
			return c.Next()
		},
		RequireRoles(constants.SuperAdminOnly...),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	resp, err := app.Test(httptest.NewRequest("GET", "/t/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "un docente entra a /t")

	resp, err = app.Test(httptest.NewRequest("GET", "/sa/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "un docente no entra a /sa")
}
