package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	planModel "edusaber_backend/internals/features/assessments/improvement_plans/model"
	questionnaireModel "edusaber_backend/internals/features/assessments/questionnaires/model"
)

var ErrPlanAlreadyExists = errors.New("el estudiante ya tiene un plan para este cuestionario")

// FailedIndicator es un indicador reprobado de un estudiante.
type FailedIndicator struct {
	IndicatorID uuid.UUID
	Description string
}

// ProcessResult resume la generación masiva de planes de un cuestionario.
type ProcessResult struct {
	QuestionnaireID uuid.UUID           `json:"questionnaire_id"`
	StudentsChecked int                 `json:"students_checked"`
	PlansCreated    int                 `json:"plans_created"`
	Skipped         int                 `json:"skipped"`
	Items           []ProcessResultItem `json:"items"`
}

type ProcessResultItem struct {
	StudentID uuid.UUID  `json:"student_id"`
	PlanID    *uuid.UUID `json:"plan_id,omitempty"`
	Failed    int        `json:"failed_indicators"`
	Error     string     `json:"error,omitempty"`
}

// ProcessQuestionnaireResults genera un plan por cada estudiante con al menos
// un indicador reprobado en el cuestionario. Estudiantes sin reprobados no
// generan plan; los errores por estudiante quedan en Items.
func ProcessQuestionnaireResults(db *gorm.DB, questionnaireID uuid.UUID) (*ProcessResult, error) {
	questionnaire, err := loadQuestionnaire(db, questionnaireID)
	if err != nil {
		return nil, err
	}

	var studentIDs []uuid.UUID
	if err := db.Model(&questionnaireModel.EvaluationResultModel{}).
		Where("evaluation_result_questionnaire_id = ?", questionnaireID).
		Distinct().
		Pluck("evaluation_result_student_id", &studentIDs).Error; err != nil {
		return nil, fmt.Errorf("listar estudiantes con resultados: %w", err)
	}

	return collectProcessItems(questionnaireID, studentIDs, func(sid uuid.UUID) (*planModel.ImprovementPlanModel, int, error) {
		return processOneStudent(db, questionnaire, sid)
	}), nil
}

// collectProcessItems clasifica a cada estudiante: plan creado (al menos un
// indicador reprobado), omitido (sin reprobados o plan duplicado) o error.
// Solo los estudiantes con plan, duplicado o error aparecen en Items.
func collectProcessItems(questionnaireID uuid.UUID, studentIDs []uuid.UUID, processFn func(uuid.UUID) (*planModel.ImprovementPlanModel, int, error)) *ProcessResult {
	result := &ProcessResult{
		QuestionnaireID: questionnaireID,
		StudentsChecked: len(studentIDs),
		Items:           make([]ProcessResultItem, 0, len(studentIDs)),
	}

	for _, sid := range studentIDs {
		plan, failedCount, err := processFn(sid)
		item := ProcessResultItem{StudentID: sid, Failed: failedCount}
		switch {
		case errors.Is(err, ErrPlanAlreadyExists):
			result.Skipped++
			item.Error = err.Error()
		case err != nil:
			log.Printf("[ERROR] plan automático estudiante=%s cuestionario=%s: %v", sid, questionnaireID, err)
			item.Error = err.Error()
		case plan == nil:
			// sin indicadores reprobados, no hay plan
			result.Skipped++
			continue
		default:
			result.PlansCreated++
			id := plan.ImprovementPlanID
			item.PlanID = &id
		}
		result.Items = append(result.Items, item)
	}

	return result
}

// ProcessStudentImprovementPlan es la entrada de un solo estudiante (se invoca
// al registrar el intento de un cuestionario).
func ProcessStudentImprovementPlan(db *gorm.DB, studentID, questionnaireID uuid.UUID) (*planModel.ImprovementPlanModel, error) {
	questionnaire, err := loadQuestionnaire(db, questionnaireID)
	if err != nil {
		return nil, err
	}
	plan, _, err := processOneStudent(db, questionnaire, studentID)
	return plan, err
}

func processOneStudent(db *gorm.DB, q *questionnaireModel.QuestionnaireModel, studentID uuid.UUID) (*planModel.ImprovementPlanModel, int, error) {
	failed, err := loadFailedIndicators(db, studentID, q.QuestionnaireID)
	if err != nil {
		return nil, 0, err
	}
	if len(failed) == 0 {
		return nil, 0, nil
	}

	// El guard de duplicados es la clave (student, questionnaire), no el título.
	var count int64
	if err := db.Model(&planModel.ImprovementPlanModel{}).
		Where("improvement_plan_student_id = ? AND improvement_plan_questionnaire_id = ?",
			studentID, q.QuestionnaireID).
		Count(&count).Error; err != nil {
		return nil, len(failed), fmt.Errorf("verificar plan existente: %w", err)
	}
	if count > 0 {
		return nil, len(failed), ErrPlanAlreadyExists
	}

	studentName, err := lookupStudentName(db, studentID)
	if err != nil {
		return nil, len(failed), err
	}

	plan, err := createAutomaticImprovementPlan(db, q, studentID, studentName, failed)
	if err != nil {
		return nil, len(failed), err
	}
	return plan, len(failed), nil
}

// createAutomaticImprovementPlan inserta el plan con sus recursos y
// actividades en una sola transacción.
func createAutomaticImprovementPlan(
	db *gorm.DB,
	q *questionnaireModel.QuestionnaireModel,
	studentID uuid.UUID,
	studentName string,
	failed []FailedIndicator,
) (*planModel.ImprovementPlanModel, error) {
	now := time.Now()
	descriptions := make([]string, 0, len(failed))
	for _, f := range failed {
		descriptions = append(descriptions, f.Description)
	}
	content := BuildPlanContent(q.QuestionnaireTitle, q.QuestionnaireSubject, studentName, descriptions, now)

	failedJSON, err := json.Marshal(descriptions)
	if err != nil {
		return nil, fmt.Errorf("serializar indicadores reprobados: %w", err)
	}

	deadline := content.Deadline
	plan := &planModel.ImprovementPlanModel{
		ImprovementPlanStudentID:          studentID,
		ImprovementPlanQuestionnaireID:    &q.QuestionnaireID,
		ImprovementPlanTeacherID:          q.QuestionnaireCreatedBy,
		ImprovementPlanTitle:              content.Title,
		ImprovementPlanSubject:            q.QuestionnaireSubject,
		ImprovementPlanDescription:        content.Description,
		ImprovementPlanActivities:         content.Activities,
		ImprovementPlanDeadline:           &deadline,
		ImprovementPlanFailedAchievements: datatypes.JSON(failedJSON),
		ImprovementPlanActivityStatus:     planModel.ActivityStatusPendiente,
		ImprovementPlanAcademicYear:       AcademicYearFor(now),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return fmt.Errorf("crear plan: %w", err)
		}
		if err := tx.Create(buildAutomaticResources(plan.ImprovementPlanID, q.QuestionnaireSubject)).Error; err != nil {
			return fmt.Errorf("crear recursos: %w", err)
		}
		if err := tx.Create(buildAutomaticActivities(plan.ImprovementPlanID, failed)).Error; err != nil {
			return fmt.Errorf("crear actividades: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// buildAutomaticResources arma los tres recursos fijos (video, documento,
// enlace de práctica) según la materia.
func buildAutomaticResources(planID uuid.UUID, subject string) []planModel.RecoveryResourceModel {
	urls := ResourcesForSubject(subject)
	desc := func(s string) *string { return &s }
	return []planModel.RecoveryResourceModel{
		{
			RecoveryResourcePlanID:      planID,
			RecoveryResourceType:        planModel.ResourceTypeVideo,
			RecoveryResourceTitle:       fmt.Sprintf("Videos de refuerzo de %s", subject),
			RecoveryResourceURL:         urls.VideoURL,
			RecoveryResourceDescription: desc("Material audiovisual para repasar los temas pendientes."),
		},
		{
			RecoveryResourcePlanID:      planID,
			RecoveryResourceType:        planModel.ResourceTypeDocument,
			RecoveryResourceTitle:       fmt.Sprintf("Guías de estudio de %s", subject),
			RecoveryResourceURL:         urls.DocumentURL,
			RecoveryResourceDescription: desc("Documentos y talleres descargables."),
		},
		{
			RecoveryResourcePlanID:      planID,
			RecoveryResourceType:        planModel.ResourceTypeLink,
			RecoveryResourceTitle:       fmt.Sprintf("Práctica interactiva de %s", subject),
			RecoveryResourceURL:         urls.PracticeURL,
			RecoveryResourceDescription: desc("Ejercicios interactivos de práctica."),
		},
	}
}

// buildAutomaticActivities crea una actividad por indicador reprobado más la
// actividad de cierre.
func buildAutomaticActivities(planID uuid.UUID, failed []FailedIndicator) []planModel.RecoveryActivityModel {
	activities := make([]planModel.RecoveryActivityModel, 0, len(failed)+1)
	for i := range failed {
		f := failed[i]
		indicatorID := f.IndicatorID
		activities = append(activities, planModel.RecoveryActivityModel{
			RecoveryActivityPlanID:      planID,
			RecoveryActivityTitle:       fmt.Sprintf("Taller de refuerzo %d", i+1),
			RecoveryActivityDescription: fmt.Sprintf("Desarrollar ejercicios sobre: %s", f.Description),
			RecoveryActivityIndicatorID: &indicatorID,
			RecoveryActivityOrder:       i + 1,
			RecoveryActivityStatus:      planModel.ActivityStatusPendiente,
		})
	}
	activities = append(activities, planModel.RecoveryActivityModel{
		RecoveryActivityPlanID:      planID,
		RecoveryActivityTitle:       "Cuestionario de cierre",
		RecoveryActivityDescription: "Presentar nuevamente la evaluación para verificar los logros pendientes.",
		RecoveryActivityOrder:       len(failed) + 1,
		RecoveryActivityStatus:      planModel.ActivityStatusPendiente,
	})
	return activities
}

/* ==============================
   Lecturas auxiliares
============================== */

func loadQuestionnaire(db *gorm.DB, questionnaireID uuid.UUID) (*questionnaireModel.QuestionnaireModel, error) {
	var q questionnaireModel.QuestionnaireModel
	if err := db.Where("questionnaire_id = ?", questionnaireID).First(&q).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cuestionario %s no encontrado", questionnaireID)
		}
		return nil, fmt.Errorf("consultar cuestionario: %w", err)
	}
	return &q, nil
}

// loadFailedIndicators lista los indicadores del cuestionario con
// achieved = false para el estudiante.
func loadFailedIndicators(db *gorm.DB, studentID, questionnaireID uuid.UUID) ([]FailedIndicator, error) {
	var rows []FailedIndicator
	err := db.Table("student_indicators AS si").
		Select(`si.student_indicator_indicator_id AS indicator_id,
			i.indicator_description AS description`).
		Joins("JOIN indicators i ON i.indicator_id = si.student_indicator_indicator_id AND i.indicator_deleted_at IS NULL").
		Where("si.student_indicator_student_id = ?", studentID).
		Where("si.student_indicator_questionnaire_id = ?", questionnaireID).
		Where("si.student_indicator_achieved = false").
		Order("i.indicator_description").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("consultar indicadores reprobados: %w", err)
	}
	return rows, nil
}

func lookupStudentName(db *gorm.DB, studentID uuid.UUID) (string, error) {
	var name string
	err := db.Table("students AS s").
		Select("u.user_name").
		Joins("JOIN users u ON u.user_id = s.student_user_id").
		Where("s.student_id = ?", studentID).
		Scan(&name).Error
	if err != nil {
		return "", fmt.Errorf("consultar nombre del estudiante: %w", err)
	}
	if name == "" {
		return "", fmt.Errorf("estudiante %s no encontrado", studentID)
	}
	return name, nil
}
