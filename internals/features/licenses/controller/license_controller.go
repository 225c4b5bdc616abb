package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusaber_backend/internals/features/licenses/model"
	"edusaber_backend/internals/features/licenses/service"
	helper "edusaber_backend/internals/helpers"
	helperAuth "edusaber_backend/internals/helpers/auth"
)

type LicenseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLicenseController(db *gorm.DB) *LicenseController {
	return &LicenseController{DB: db, Validator: validator.New()}
}

type checkoutRequest struct {
	Plan string `json:"plan" validate:"required,oneof=mensual anual"`
}

// POST /t/licenses/checkout
//
// Crea la licencia pendiente con su order_id y devuelve el token Snap para
// que el frontend abra el pago.
func (ctrl *LicenseController) Checkout(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	amount, err := service.PlanPrice(req.Plan)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	orderID := fmt.Sprintf("LIC-%d-%s", time.Now().Unix(), uuid.NewString()[:8])
	license := model.TeacherLicenseModel{
		TeacherLicenseTeacherID:   teacherID,
		TeacherLicenseInstitution: helperAuth.GetInstitutionFromToken(c),
		TeacherLicensePlan:        req.Plan,
		TeacherLicenseStatus:      model.LicenseStatusPending,
		TeacherLicenseOrderID:     &orderID,
		TeacherLicenseAmount:      amount,
	}
	if err := ctrl.DB.Create(&license).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la orden de licencia")
	}

	name, _ := c.Locals("user_name").(string)
	token, err := service.GenerateSnapToken(&license, name, "")
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo generar el token de pago")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Orden de licencia creada", fiber.Map{
		"order_id":   orderID,
		"snap_token": token,
		"amount":     amount,
	})
}

// POST /licenses/notification — webhook de Midtrans, sin autenticación.
func (ctrl *LicenseController) HandlePaymentNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Notificación inválida")
	}

	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	statusCode, _ := body["status_code"].(string)
	grossAmount, _ := body["gross_amount"].(string)
	signatureKey, _ := body["signature_key"].(string)
	if orderID == "" || transactionStatus == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Notificación incompleta")
	}

	// La ruta no lleva auth; la firma es lo único que acredita a Midtrans.
	if !service.VerifyNotificationSignature(orderID, statusCode, grossAmount, signatureKey) {
		log.Printf("[WARN] Webhook de licencias con firma inválida, order_id=%s", orderID)
		return helper.Error(c, fiber.StatusForbidden, "Firma de la notificación inválida")
	}

	if err := service.ApplyPaymentNotification(ctrl.DB, orderID, transactionStatus); err != nil {
		log.Printf("[ERROR] Webhook de licencias: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo procesar la notificación")
	}
	return helper.Success(c, "Notificación procesada", nil)
}

// GET /t/licenses/mine
func (ctrl *LicenseController) GetMyLicenses(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var licenses []model.TeacherLicenseModel
	if err := ctrl.DB.Where("teacher_license_teacher_id = ?", teacherID).
		Order("teacher_license_created_at DESC").
		Find(&licenses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron listar tus licencias")
	}

	active, err := service.HasActiveLicense(ctrl.DB, teacherID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo verificar la licencia activa")
	}

	return helper.Success(c, "Licencias del docente", fiber.Map{
		"licenses":   licenses,
		"has_active": active,
	})
}

// GET /a/teacher-licenses?status=
func (ctrl *LicenseController) GetLicenses(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.TeacherLicenseModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("teacher_license_status = ?", status)
	}

	var licenses []model.TeacherLicenseModel
	if err := q.Order("teacher_license_created_at DESC").Find(&licenses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron listar las licencias")
	}
	return helper.Success(c, "Licencias obtenidas", licenses)
}

type activateRequest struct {
	ValidUntil string `json:"valid_until" validate:"required,datetime=2006-01-02"`
}

// PATCH /a/teacher-licenses/:id/activate — activación manual por un administrador.
func (ctrl *LicenseController) ActivateLicense(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de licencia inválido")
	}

	var req activateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	validUntil, _ := time.Parse("2006-01-02", req.ValidUntil)

	var license model.TeacherLicenseModel
	if err := ctrl.DB.Where("teacher_license_id = ?", id).First(&license).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Licencia no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar la licencia")
	}

	now := time.Now()
	license.TeacherLicenseStatus = model.LicenseStatusActive
	license.TeacherLicenseValidUntil = &validUntil
	license.TeacherLicensePaidAt = &now
	if err := ctrl.DB.Save(&license).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo activar la licencia")
	}
	return helper.Success(c, "Licencia activada", license)
}
