package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	licenseController "edusaber_backend/internals/features/licenses/controller"
)

// LicenseWebhookRoute expone la notificación de pago de Midtrans sin autenticación.
// El middleware de auth omite esta ruta explícitamente.
func LicenseWebhookRoute(app *fiber.App, db *gorm.DB) {
	licenses := licenseController.NewLicenseController(db)
	app.Post("/api/licenses/notification", licenses.HandlePaymentNotification)
}
