package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusaber_backend/internals/constants"
	authMiddleware "edusaber_backend/internals/middlewares/auth"
	routeDetails "edusaber_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== PÚBLICO =====================
	log.Println("[INFO] Registrando AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Registrando webhook de licencias...")
	routeDetails.LicenseWebhookRoute(app, db)

	// ===================== GRUPOS AUTENTICADOS =====================
	// /api/u → cualquier usuario autenticado
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	// /api/t → docentes y superiores
	teacher := app.Group("/api/t",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireRoles(constants.DocenteAndAbove...),
	)

	// /api/a → administradores y superiores
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireRoles(constants.AdminAndAbove...),
	)

	// /api/sa → solo super administrador
	superAdmin := app.Group("/api/sa",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireRoles(constants.SuperAdminOnly...),
	)

	log.Println("[INFO] Registrando rutas de usuario...")
	routeDetails.UserRoutes(user, db)

	log.Println("[INFO] Registrando rutas de docente...")
	routeDetails.TeacherRoutes(teacher, db)

	log.Println("[INFO] Registrando rutas de administración...")
	routeDetails.AdminRoutes(admin, db)
	routeDetails.SuperAdminRoutes(superAdmin, db)

	// Uptime simple para monitoreo.
	app.Get("/api/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"uptime": time.Since(startTime).String(),
		})
	})

	log.Println("✅ Todas las rutas registradas")
}
