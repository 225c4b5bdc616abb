package details

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func registeredRoutes(t *testing.T, register func(fiber.Router)) map[string]bool {
	t.Helper()

	app := fiber.New()
	register(app)

	routes := make(map[string]bool)
	for _, r := range app.GetRoutes(true) {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

// Los handlers con semántica de parche (campos opcionales tri-estado) se
// exponen como PATCH, no PUT.
func TestTeacherRoutes_MetodosYRutas(t *testing.T) {
	routes := registeredRoutes(t, func(app fiber.Router) {
		TeacherRoutes(app.Group("/api/t"), nil)
	})

	for _, want := range []string{
		"PATCH /api/t/teachers/me",
		"POST /api/t/teachers/me/logo",
		"PATCH /api/t/students/:id",
		"PATCH /api/t/questionnaires/:id",
		"PATCH /api/t/indicators/:id",
		"PATCH /api/t/improvement-plans/:id",
		"POST /api/t/improvement-plans/process/:questionnaireId",
		"POST /api/t/improvement-plans/process/:questionnaireId/student/:studentId",
		"PUT /api/t/grades/override/:studentId/:phase",
	} {
		assert.Contains(t, routes, want)
	}

	for _, stale := range []string{
		"PUT /api/t/indicators/:id",
		"PUT /api/t/improvement-plans/:id",
		"POST /api/t/improvement-plans/process/:questionnaireId/:studentId",
	} {
		assert.NotContains(t, routes, stale)
	}
}

func TestUserRoutes_EstadoDeIndicadoresDelEstudiante(t *testing.T) {
	routes := registeredRoutes(t, func(app fiber.Router) {
		UserRoutes(app.Group("/api/u"), nil)
	})

	assert.Contains(t, routes, "GET /api/u/indicators/student/:studentId")
	assert.Contains(t, routes, "PATCH /api/u/improvement-plans/activities/:activityId/status")
}

func TestAdminRoutes_MetodosYRutas(t *testing.T) {
	routes := registeredRoutes(t, func(app fiber.Router) {
		AdminRoutes(app.Group("/api/a"), nil)
	})

	assert.Contains(t, routes, "PATCH /api/a/users/:id")
	assert.Contains(t, routes, "PATCH /api/a/courses/:id")
	assert.NotContains(t, routes, "PUT /api/a/users/:id")
}
