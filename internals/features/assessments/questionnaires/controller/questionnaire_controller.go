package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	evaluationService "edusaber_backend/internals/features/assessments/evaluation/service"
	gradesService "edusaber_backend/internals/features/assessments/grades/service"
	planService "edusaber_backend/internals/features/assessments/improvement_plans/service"
	"edusaber_backend/internals/features/assessments/questionnaires/dto"
	"edusaber_backend/internals/features/assessments/questionnaires/model"
	"edusaber_backend/internals/features/assessments/questionnaires/service"
	helper "edusaber_backend/internals/helpers"
	helperAuth "edusaber_backend/internals/helpers/auth"
)

type QuestionnaireController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuestionnaireController(db *gorm.DB) *QuestionnaireController {
	return &QuestionnaireController{DB: db, Validator: validator.New()}
}

// POST /t/questionnaires
func (ctrl *QuestionnaireController) CreateQuestionnaire(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateQuestionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	questionnaire := model.QuestionnaireModel{
		QuestionnaireTitle:            strings.TrimSpace(req.Title),
		QuestionnaireSubject:          strings.TrimSpace(req.Subject),
		QuestionnairePhase:            req.Phase,
		QuestionnaireGrade:            strings.TrimSpace(req.Grade),
		QuestionnaireCreatedBy:        teacherID,
		QuestionnaireIsPruebaSaber:    req.IsPruebaSaber,
		QuestionnairePruebaSaberLevel: req.PruebaSaberLevel,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&questionnaire).Error; err != nil {
			return err
		}
		questions := make([]model.QuestionnaireQuestionModel, 0, len(req.Questions))
		for _, q := range req.Questions {
			questions = append(questions, model.QuestionnaireQuestionModel{
				QuestionQuestionnaireID: questionnaire.QuestionnaireID,
				QuestionText:            q.Text,
				QuestionOptions:         q.Options,
				QuestionCorrectOption:   strings.ToUpper(strings.TrimSpace(q.CorrectOption)),
				QuestionPoints:          q.Points,
			})
		}
		return tx.Create(&questions).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el cuestionario")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Cuestionario creado", questionnaire)
}

// GET /t/questionnaires?subject=&phase=&prueba_saber=
func (ctrl *QuestionnaireController) GetQuestionnaires(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.QuestionnaireModel{})

	if teacherID, err := helperAuth.GetTeacherIDFromToken(c); err == nil {
		q = q.Where("questionnaire_created_by = ?", teacherID)
	}
	if subject := strings.TrimSpace(c.Query("subject")); subject != "" {
		q = q.Where("questionnaire_subject = ?", subject)
	}
	if phase := c.QueryInt("phase"); phase > 0 {
		q = q.Where("questionnaire_phase = ?", phase)
	}
	if ps := strings.TrimSpace(c.Query("prueba_saber")); ps != "" {
		q = q.Where("questionnaire_is_prueba_saber = ?", ps == "true")
	}

	var questionnaires []model.QuestionnaireModel
	if err := q.Order("questionnaire_created_at DESC").Find(&questionnaires).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron listar los cuestionarios")
	}
	return helper.Success(c, "Cuestionarios obtenidos", questionnaires)
}

// GET /u/questionnaires/:id
func (ctrl *QuestionnaireController) GetQuestionnaireByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de cuestionario inválido")
	}

	var questionnaire model.QuestionnaireModel
	if err := ctrl.DB.Preload("Questions").
		Where("questionnaire_id = ?", id).
		First(&questionnaire).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Cuestionario no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar el cuestionario")
	}
	return helper.Success(c, "Cuestionario obtenido", questionnaire)
}

// PATCH /t/questionnaires/:id
func (ctrl *QuestionnaireController) UpdateQuestionnaire(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de cuestionario inválido")
	}

	var req dto.UpdateQuestionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nada que actualizar")
	}

	res := ctrl.DB.Model(&model.QuestionnaireModel{}).
		Where("questionnaire_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el cuestionario")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Cuestionario no encontrado")
	}
	return helper.Success(c, "Cuestionario actualizado", nil)
}

// DELETE /t/questionnaires/:id
func (ctrl *QuestionnaireController) DeleteQuestionnaire(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de cuestionario inválido")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_questionnaire_id = ?", id).
			Delete(&model.QuestionnaireQuestionModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("questionnaire_id = ?", id).Delete(&model.QuestionnaireModel{})
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
			return helper.Error(c, fiber.StatusNotFound, "Cuestionario no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el cuestionario")
	}
	return helper.Success(c, "Cuestionario eliminado", nil)
}

// POST /u/questionnaires/:id/submit
//
// Registra el intento del estudiante y encadena la tubería: mejor puntaje →
// evaluación de indicadores → plan de mejoramiento → promedios por fase.
func (ctrl *QuestionnaireController) SubmitQuestionnaire(c *fiber.Ctx) error {
	questionnaireID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de cuestionario inválido")
	}
	studentID, err := helperAuth.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SubmitQuestionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if len(req.Answers) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No se enviaron respuestas")
	}

	var questions []model.QuestionnaireQuestionModel
	if err := ctrl.DB.Where("question_questionnaire_id = ?", questionnaireID).
		Find(&questions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron cargar las preguntas")
	}

	score, err := service.ScoreSubmission(questions, req.Answers)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := service.UpsertEvaluationResult(ctrl.DB, studentID, questionnaireID, score)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo guardar el resultado")
	}

	evaluation, err := evaluationService.EvaluateStudentIndicators(ctrl.DB, studentID, questionnaireID)
	if err != nil {
		log.Printf("[ERROR] Evaluación de indicadores tras el intento: %v", err)
	}

	// Fallas aquí no invalidan el intento ya registrado.
	if _, perr := planService.ProcessStudentImprovementPlan(ctrl.DB, studentID, questionnaireID); perr != nil &&
		!errors.Is(perr, planService.ErrPlanAlreadyExists) {
		log.Printf("[ERROR] Plan de mejoramiento tras el intento: %v", perr)
	}
	if _, gerr := gradesService.RecalculatePhaseAverages(ctrl.DB, studentID, nil); gerr != nil &&
		!errors.Is(gerr, gradesService.ErrNoTeacherAssigned) {
		log.Printf("[ERROR] Recalcular promedios tras el intento: %v", gerr)
	}

	return helper.Success(c, "Intento registrado", fiber.Map{
		"score":      score,
		"best_score": result.EvaluationResultBestScore,
		"attempts":   result.EvaluationResultAttempts,
		"evaluation": evaluation,
	})
}
