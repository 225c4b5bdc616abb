package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusaber_backend/internals/features/assessments/evaluation/service"
	helper "edusaber_backend/internals/helpers"
)

type EvaluationController struct {
	DB *gorm.DB
}

func NewEvaluationController(db *gorm.DB) *EvaluationController {
	return &EvaluationController{DB: db}
}

// POST /t/indicator-evaluation/evaluate/:studentId/:questionnaireId
func (ctrl *EvaluationController) EvaluateStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de estudiante inválido")
	}
	questionnaireID, err := uuid.Parse(c.Params("questionnaireId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de cuestionario inválido")
	}

	summary, err := service.EvaluateStudentIndicators(ctrl.DB, studentID, questionnaireID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo evaluar al estudiante")
	}
	return helper.Success(c, "Evaluación de indicadores completada", summary)
}

// POST /t/indicator-evaluation/evaluate-questionnaire/:questionnaireId
//
// Evalúa a todos los estudiantes con resultados del cuestionario; las fallas
// por estudiante quedan reportadas por ítem, sin abortar el lote.
func (ctrl *EvaluationController) EvaluateQuestionnaire(c *fiber.Ctx) error {
	questionnaireID, err := uuid.Parse(c.Params("questionnaireId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de cuestionario inválido")
	}

	summary, err := service.EvaluateAllStudentsIndicators(ctrl.DB, questionnaireID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo evaluar el cuestionario")
	}
	return helper.Success(c, "Evaluación masiva completada", summary)
}
