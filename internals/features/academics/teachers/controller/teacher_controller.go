package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusaber_backend/internals/features/academics/teachers/dto"
	"edusaber_backend/internals/features/academics/teachers/model"
	helper "edusaber_backend/internals/helpers"
	helperAuth "edusaber_backend/internals/helpers/auth"
	"edusaber_backend/internals/helpers/storage"
)

type TeacherController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validator: validator.New()}
}

// GET /t/teachers/me
func (ctrl *TeacherController) GetMyProfile(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var teacher model.TeacherModel
	if err := ctrl.DB.Where("teacher_id = ?", teacherID).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Perfil de docente no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar el perfil")
	}
	return helper.Success(c, "Perfil de docente obtenido", teacher)
}

// GET /a/teachers/:id
func (ctrl *TeacherController) GetTeacherByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de docente inválido")
	}

	var teacher model.TeacherModel
	if err := ctrl.DB.Where("teacher_id = ?", id).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Docente no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar el docente")
	}
	return helper.Success(c, "Docente obtenido", teacher)
}

// PATCH /t/teachers/me
func (ctrl *TeacherController) UpdateMyProfile(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nada que actualizar")
	}

	res := ctrl.DB.Model(&model.TeacherModel{}).Where("teacher_id = ?", teacherID).Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el perfil")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Perfil de docente no encontrado")
	}
	return helper.Success(c, "Perfil actualizado", nil)
}

// POST /t/teachers/me/logo  (multipart: logo)
//
// Sube el logo para los reportes del docente; la imagen se normaliza a webp.
func (ctrl *TeacherController) UploadReportLogo(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("logo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Archivo 'logo' no proporcionado")
	}

	client, err := storage.NewClientFromEnv()
	if err != nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Almacenamiento de archivos no disponible")
	}
	url, err := client.UploadImageAsWebP("teacher-logos", fh)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Model(&model.TeacherModel{}).
		Where("teacher_id = ?", teacherID).
		Update("teacher_report_logo_url", url).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo guardar el logo")
	}

	return helper.Success(c, "Logo subido", fiber.Map{"logo_url": url})
}
