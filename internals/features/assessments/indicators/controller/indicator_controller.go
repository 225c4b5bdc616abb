package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusaber_backend/internals/constants"
	evaluationService "edusaber_backend/internals/features/assessments/evaluation/service"
	"edusaber_backend/internals/features/assessments/indicators/dto"
	"edusaber_backend/internals/features/assessments/indicators/model"
	helper "edusaber_backend/internals/helpers"
	helperAuth "edusaber_backend/internals/helpers/auth"
)

type IndicatorController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewIndicatorController(db *gorm.DB) *IndicatorController {
	return &IndicatorController{DB: db, Validator: validator.New()}
}

const defaultPassingScore = 3.0

// POST /t/indicators
//
// Escritura multi-tabla: el indicador y su vínculo al cuestionario (con
// umbral) van juntos o no va ninguno.
func (ctrl *IndicatorController) CreateIndicator(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateIndicatorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	indicator := model.IndicatorModel{
		IndicatorDescription:     strings.TrimSpace(req.Description),
		IndicatorSubject:         strings.TrimSpace(req.Subject),
		IndicatorPhase:           req.Phase,
		IndicatorGrade:           strings.TrimSpace(req.Grade),
		IndicatorCategory:        helper.TrimPtr(req.Category),
		IndicatorTeacherID:       teacherID,
		IndicatorQuestionnaireID: req.QuestionnaireID,
		IndicatorFromTemplate:    req.FromTemplate,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&indicator).Error; err != nil {
			return err
		}
		if req.QuestionnaireID == nil {
			return nil
		}
		passing := defaultPassingScore
		if req.PassingScore != nil {
			passing = *req.PassingScore
		}
		link := model.QuestionnaireIndicatorModel{
			QuestionnaireIndicatorQuestionnaireID: *req.QuestionnaireID,
			QuestionnaireIndicatorIndicatorID:     indicator.IndicatorID,
			QuestionnaireIndicatorPassingScore:    passing,
		}
		return tx.Create(&link).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el indicador")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Indicador creado", indicator)
}

// GET /t/indicators?subject=&phase=&questionnaire_id=
func (ctrl *IndicatorController) GetIndicators(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.IndicatorModel{})

	if teacherID, err := helperAuth.GetTeacherIDFromToken(c); err == nil {
		q = q.Where("indicator_teacher_id = ?", teacherID)
	}
	if subject := strings.TrimSpace(c.Query("subject")); subject != "" {
		q = q.Where("indicator_subject = ?", subject)
	}
	if phase := c.QueryInt("phase"); phase > 0 {
		q = q.Where("indicator_phase = ?", phase)
	}
	if qid := strings.TrimSpace(c.Query("questionnaire_id")); qid != "" {
		id, err := uuid.Parse(qid)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "questionnaire_id inválido")
		}
		q = q.Where("indicator_questionnaire_id = ?", id)
	}

	var indicators []model.IndicatorModel
	if err := q.Order("indicator_created_at DESC").Find(&indicators).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron listar los indicadores")
	}
	return helper.Success(c, "Indicadores obtenidos", indicators)
}

// GET /u/indicators/student/:studentId?questionnaire_id=
//
// Un estudiante consulta solo su propio estado; docentes y superiores el de
// cualquier estudiante.
func (ctrl *IndicatorController) GetStudentIndicators(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de estudiante inválido")
	}

	if !helperAuth.HasRole(c, constants.DocenteAndAbove...) {
		own, serr := helperAuth.GetStudentIDFromToken(c)
		if serr != nil || own != studentID {
			return helper.Error(c, fiber.StatusForbidden, "Solo puedes consultar tu propio estado de indicadores")
		}
	}

	var questionnaireID *uuid.UUID
	if qid := strings.TrimSpace(c.Query("questionnaire_id")); qid != "" {
		id, err := uuid.Parse(qid)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "questionnaire_id inválido")
		}
		questionnaireID = &id
	}

	rows, err := evaluationService.GetStudentIndicatorStatus(ctrl.DB, studentID, questionnaireID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar el estado de indicadores")
	}
	return helper.Success(c, "Estado de indicadores obtenido", rows)
}

// PATCH /t/indicators/:id
func (ctrl *IndicatorController) UpdateIndicator(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de indicador inválido")
	}

	var req dto.UpdateIndicatorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	updates := req.ToUpdates()
	if len(updates) == 0 && !req.PassingScore.ShouldUpdate() {
		return helper.Error(c, fiber.StatusBadRequest, "Nada que actualizar")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			res := tx.Model(&model.IndicatorModel{}).
				Where("indicator_id = ?", id).
				Updates(updates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		if req.PassingScore.ShouldUpdate() && !req.PassingScore.IsNull() {
			return tx.Model(&model.QuestionnaireIndicatorModel{}).
				Where("questionnaire_indicator_indicator_id = ?", id).
				Update("questionnaire_indicator_passing_score", req.PassingScore.Val()).Error
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Indicador no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el indicador")
	}
	return helper.Success(c, "Indicador actualizado", nil)
}

// DELETE /t/indicators/:id
//
// Borra también los vínculos y los resultados derivados del indicador.
func (ctrl *IndicatorController) DeleteIndicator(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de indicador inválido")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("questionnaire_indicator_indicator_id = ?", id).
			Delete(&model.QuestionnaireIndicatorModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_indicator_indicator_id = ?", id).
			Delete(&model.StudentIndicatorModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("indicator_id = ?", id).Delete(&model.IndicatorModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Indicador no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el indicador")
	}
	return helper.Success(c, "Indicador eliminado", nil)
}
