package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusaber_backend/internals/constants"
	"edusaber_backend/internals/features/resources/model"
	helper "edusaber_backend/internals/helpers"
	helperAuth "edusaber_backend/internals/helpers/auth"
	"edusaber_backend/internals/helpers/storage"
)

type EducationalResourceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEducationalResourceController(db *gorm.DB) *EducationalResourceController {
	return &EducationalResourceController{DB: db, Validator: validator.New()}
}

type createResourceRequest struct {
	Title       string  `json:"title"       validate:"required,min=3,max=200"`
	Subject     string  `json:"subject"     validate:"required,max=100"`
	Grade       string  `json:"grade"       validate:"required,max=20"`
	Type        string  `json:"type"        validate:"required,oneof=video guia enlace"`
	URL         *string `json:"url"         validate:"omitempty,url"`
	Description *string `json:"description"`
}

// POST /t/resources
//
// Los videos y enlaces llevan URL; las guías se suben como PDF por separado.
func (ctrl *EducationalResourceController) CreateResource(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req createResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Type != model.EducationalResourceTypeGuide && req.URL == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Los recursos de tipo video o enlace requieren URL")
	}

	resource := model.EducationalResourceModel{
		EducationalResourceTitle:       strings.TrimSpace(req.Title),
		EducationalResourceSubject:     strings.TrimSpace(req.Subject),
		EducationalResourceGrade:       strings.TrimSpace(req.Grade),
		EducationalResourceType:        req.Type,
		EducationalResourceURL:         req.URL,
		EducationalResourceDescription: helper.TrimPtr(req.Description),
		EducationalResourceUploadedBy:  teacherID,
	}
	if err := ctrl.DB.Create(&resource).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el recurso")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Recurso creado", resource)
}

// POST /t/resources/:id/file  (multipart: file)
func (ctrl *EducationalResourceController) UploadResourceFile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de recurso inválido")
	}

	var resource model.EducationalResourceModel
	if err := ctrl.DB.Where("educational_resource_id = ?", id).First(&resource).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Recurso no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar el recurso")
	}
	if resource.EducationalResourceType != model.EducationalResourceTypeGuide {
		return helper.Error(c, fiber.StatusBadRequest, "Solo las guías admiten archivo PDF")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Archivo 'file' no proporcionado")
	}
	if constants.DetectFileTypeFromExt(fh.Filename) != constants.FileTypePDF {
		return helper.Error(c, fiber.StatusBadRequest, "El archivo debe ser un PDF")
	}

	client, err := storage.NewClientFromEnv()
	if err != nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Almacenamiento de archivos no disponible")
	}
	url, err := client.UploadPDF("resource-guides", fh)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Model(&resource).
		Update("educational_resource_file_url", url).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo guardar la URL del archivo")
	}
	return helper.Success(c, "Archivo subido", fiber.Map{"file_url": url})
}

// GET /u/resources?subject=&grade=&type=
func (ctrl *EducationalResourceController) GetResources(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.EducationalResourceModel{})
	if subject := strings.TrimSpace(c.Query("subject")); subject != "" {
		q = q.Where("educational_resource_subject = ?", subject)
	}
	if grade := strings.TrimSpace(c.Query("grade")); grade != "" {
		q = q.Where("educational_resource_grade = ?", grade)
	}
	if rtype := strings.TrimSpace(c.Query("type")); rtype != "" {
		q = q.Where("educational_resource_type = ?", rtype)
	}

	var resources []model.EducationalResourceModel
	if err := q.Order("educational_resource_created_at DESC").Find(&resources).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron listar los recursos")
	}
	return helper.Success(c, "Recursos obtenidos", resources)
}

// GET /u/resources/:id
func (ctrl *EducationalResourceController) GetResourceByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de recurso inválido")
	}

	var resource model.EducationalResourceModel
	if err := ctrl.DB.Where("educational_resource_id = ?", id).First(&resource).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Recurso no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar el recurso")
	}
	return helper.Success(c, "Recurso obtenido", resource)
}

// DELETE /t/resources/:id — solo quien lo subió o un administrador.
func (ctrl *EducationalResourceController) DeleteResource(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de recurso inválido")
	}

	var resource model.EducationalResourceModel
	if err := ctrl.DB.Where("educational_resource_id = ?", id).First(&resource).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Recurso no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar el recurso")
	}

	if teacherID, terr := helperAuth.GetTeacherIDFromToken(c); terr == nil {
		isAdmin := helperAuth.HasRole(c, constants.AdminAndAbove...)
		if !isAdmin && resource.EducationalResourceUploadedBy != teacherID {
			return helper.Error(c, fiber.StatusForbidden, "No tienes permiso sobre este recurso")
		}
	}

	if err := ctrl.DB.Delete(&resource).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el recurso")
	}
	return helper.Success(c, "Recurso eliminado", nil)
}
