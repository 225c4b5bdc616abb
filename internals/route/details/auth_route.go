package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "edusaber_backend/internals/features/users/auth/controller"
	"edusaber_backend/internals/middlewares"
	authMiddleware "edusaber_backend/internals/middlewares/auth"
)

// AuthRoutes registra los endpoints públicos de autenticación con sus
// limitadores, y los protegidos (logout, cambio de contraseña).
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.RefreshToken)

	protected := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", ctrl.Logout)
	protected.Post("/change-password", ctrl.ChangePassword)
}
