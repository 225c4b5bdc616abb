package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusaber_backend/internals/features/assessments/grades/model"
	"edusaber_backend/internals/features/assessments/grades/service"
	helper "edusaber_backend/internals/helpers"
	helperAuth "edusaber_backend/internals/helpers/auth"
)

type GradeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db, Validator: validator.New()}
}

// POST /t/grades/recalculate/:studentId
func (ctrl *GradeController) RecalculateStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de estudiante inválido")
	}

	var teacherID *uuid.UUID
	if tid, terr := helperAuth.GetTeacherIDFromToken(c); terr == nil {
		teacherID = &tid
	}

	summary, err := service.RecalculatePhaseAverages(ctrl.DB, studentID, teacherID)
	if err != nil {
		if errors.Is(err, service.ErrNoTeacherAssigned) {
			return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron recalcular los promedios")
	}
	return helper.Success(c, "Promedios recalculados", summary)
}

// GET /u/grades/:studentId
func (ctrl *GradeController) GetStudentGrades(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de estudiante inválido")
	}

	var grade model.GradeModel
	if err := ctrl.DB.Where("grade_student_id = ?", studentID).First(&grade).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "El estudiante aún no tiene notas")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron consultar las notas")
	}

	var phases []model.PhaseAverageModel
	if err := ctrl.DB.Where("phase_average_student_id = ?", studentID).
		Order("phase_average_phase").
		Find(&phases).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron consultar los promedios por fase")
	}

	return helper.Success(c, "Notas obtenidas", fiber.Map{
		"grade":          grade,
		"phase_averages": phases,
	})
}

// PUT /t/grades/override/:studentId/:phase
//
// Override manual del promedio de una fase; null lo elimina y vuelve a regir
// el promedio calculado.
func (ctrl *GradeController) SetManualOverride(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de estudiante inválido")
	}
	phase, err := c.ParamsInt("phase")
	if err != nil || phase < 1 || phase > service.TotalPhases {
		return helper.Error(c, fiber.StatusBadRequest, "Fase inválida")
	}
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req struct {
		Score *float64 `json:"score" validate:"omitempty,gte=0,lte=5"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.SetManualOverride(ctrl.DB, studentID, teacherID, phase, req.Score); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "No hay promedio para ese estudiante y fase")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo guardar el override")
	}
	return helper.Success(c, "Override guardado", nil)
}
