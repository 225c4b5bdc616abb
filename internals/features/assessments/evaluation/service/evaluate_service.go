package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	indicatorModel "edusaber_backend/internals/features/assessments/indicators/model"
	questionnaireModel "edusaber_backend/internals/features/assessments/questionnaires/model"
)

/* ==============================
   Resultados
============================== */

// IndicatorThreshold es un indicador asociado a un cuestionario con su umbral.
type IndicatorThreshold struct {
	IndicatorID  uuid.UUID
	Description  string
	PassingScore float64
}

type IndicatorOutcome struct {
	IndicatorID  uuid.UUID `json:"indicator_id"`
	Description  string    `json:"description"`
	PassingScore float64   `json:"passing_score"`
	Achieved     bool      `json:"achieved"`
}

// EvaluationSummary es el resultado de evaluar un estudiante contra un
// cuestionario. Success=false sin error es un fallo suave (sin evaluación o
// sin indicadores), igual que el comportamiento histórico del pipeline.
type EvaluationSummary struct {
	Success   bool               `json:"success"`
	Message   string             `json:"message,omitempty"`
	StudentID uuid.UUID          `json:"student_id"`
	BestScore float64            `json:"best_score"`
	Approved  int                `json:"approved"`
	Failed    int                `json:"failed"`
	Outcomes  []IndicatorOutcome `json:"outcomes,omitempty"`
}

// BulkItem es el resultado por estudiante en la evaluación masiva; los
// fallos ya no se tragan en silencio, se reportan en la lista.
type BulkItem struct {
	StudentID uuid.UUID `json:"student_id"`
	Success   bool      `json:"success"`
	Approved  int       `json:"approved"`
	Failed    int       `json:"failed"`
	Error     string    `json:"error,omitempty"`
}

type BulkSummary struct {
	QuestionnaireID uuid.UUID  `json:"questionnaire_id"`
	StudentsTotal   int        `json:"students_total"`
	Evaluated       int        `json:"evaluated"`
	Errored         int        `json:"errored"`
	Items           []BulkItem `json:"items"`
}

/* ==============================
   Núcleo puro
============================== */

// MarkOutcomes aplica la regla achieved = score >= umbral por indicador.
func MarkOutcomes(bestScore float64, thresholds []IndicatorThreshold) []IndicatorOutcome {
	outcomes := make([]IndicatorOutcome, 0, len(thresholds))
	for _, t := range thresholds {
		outcomes = append(outcomes, IndicatorOutcome{
			IndicatorID:  t.IndicatorID,
			Description:  t.Description,
			PassingScore: t.PassingScore,
			Achieved:     bestScore >= t.PassingScore,
		})
	}
	return outcomes
}

func CountApproved(outcomes []IndicatorOutcome) (approved, failed int) {
	for _, o := range outcomes {
		if o.Achieved {
			approved++
		} else {
			failed++
		}
	}
	return approved, failed
}

/* ==============================
   Operaciones
============================== */

// EvaluateStudentIndicators evalúa todos los indicadores del cuestionario
// para un estudiante y upserta student_indicators (única por estudiante +
// indicador + cuestionario, nunca duplica).
func EvaluateStudentIndicators(db *gorm.DB, studentID, questionnaireID uuid.UUID) (*EvaluationSummary, error) {
	var result questionnaireModel.EvaluationResultModel
	err := db.Where("evaluation_result_student_id = ? AND evaluation_result_questionnaire_id = ?",
		studentID, questionnaireID).
		First(&result).Error
	if err == gorm.ErrRecordNotFound {
		return &EvaluationSummary{
			Success:   false,
			Message:   "El estudiante no tiene evaluación registrada para este cuestionario",
			StudentID: studentID,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("consultar evaluation_results: %w", err)
	}

	thresholds, err := loadThresholds(db, questionnaireID)
	if err != nil {
		return nil, err
	}
	if len(thresholds) == 0 {
		return &EvaluationSummary{
			Success:   false,
			Message:   "El cuestionario no tiene indicadores asociados",
			StudentID: studentID,
			BestScore: result.EvaluationResultBestScore,
		}, nil
	}

	outcomes := MarkOutcomes(result.EvaluationResultBestScore, thresholds)

	now := time.Now()
	rows := make([]indicatorModel.StudentIndicatorModel, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, indicatorModel.StudentIndicatorModel{
			StudentIndicatorStudentID:       studentID,
			StudentIndicatorIndicatorID:     o.IndicatorID,
			StudentIndicatorQuestionnaireID: questionnaireID,
			StudentIndicatorAchieved:        o.Achieved,
			StudentIndicatorAssignedAt:      now,
		})
	}

	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "student_indicator_student_id"},
			{Name: "student_indicator_indicator_id"},
			{Name: "student_indicator_questionnaire_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"student_indicator_achieved",
			"student_indicator_assigned_at",
		}),
	}).Create(&rows).Error; err != nil {
		return nil, fmt.Errorf("upsert student_indicators: %w", err)
	}

	approved, failed := CountApproved(outcomes)
	return &EvaluationSummary{
		Success:   true,
		StudentID: studentID,
		BestScore: result.EvaluationResultBestScore,
		Approved:  approved,
		Failed:    failed,
		Outcomes:  outcomes,
	}, nil
}

// EvaluateAllStudentsIndicators evalúa a todos los estudiantes con resultado
// para el cuestionario y devuelve el detalle por estudiante.
func EvaluateAllStudentsIndicators(db *gorm.DB, questionnaireID uuid.UUID) (*BulkSummary, error) {
	var studentIDs []uuid.UUID
	if err := db.Model(&questionnaireModel.EvaluationResultModel{}).
		Where("evaluation_result_questionnaire_id = ?", questionnaireID).
		Distinct().
		Pluck("evaluation_result_student_id", &studentIDs).Error; err != nil {
		return nil, fmt.Errorf("listar estudiantes con resultados: %w", err)
	}

	return collectBulkItems(questionnaireID, studentIDs, func(sid uuid.UUID) (*EvaluationSummary, error) {
		return EvaluateStudentIndicators(db, sid, questionnaireID)
	}), nil
}

// collectBulkItems clasifica el resultado de cada estudiante: evaluado,
// fallo suave (sin evaluación o sin indicadores) o error duro. Ningún fallo
// se traga en silencio, todos quedan en Items.
func collectBulkItems(questionnaireID uuid.UUID, studentIDs []uuid.UUID, evaluateFn func(uuid.UUID) (*EvaluationSummary, error)) *BulkSummary {
	summary := &BulkSummary{
		QuestionnaireID: questionnaireID,
		StudentsTotal:   len(studentIDs),
		Items:           make([]BulkItem, 0, len(studentIDs)),
	}

	for _, sid := range studentIDs {
		res, err := evaluateFn(sid)
		if err != nil {
			log.Printf("[ERROR] evaluación estudiante=%s cuestionario=%s: %v", sid, questionnaireID, err)
			summary.Errored++
			summary.Items = append(summary.Items, BulkItem{StudentID: sid, Error: err.Error()})
			continue
		}
		if !res.Success {
			summary.Errored++
			summary.Items = append(summary.Items, BulkItem{StudentID: sid, Error: res.Message})
			continue
		}
		summary.Evaluated++
		summary.Items = append(summary.Items, BulkItem{
			StudentID: sid,
			Success:   true,
			Approved:  res.Approved,
			Failed:    res.Failed,
		})
	}

	return summary
}

/* ==============================
   Consultas
============================== */

type IndicatorStatusRow struct {
	IndicatorID   uuid.UUID  `json:"indicator_id"`
	Description   string     `json:"description"`
	Subject       string     `json:"subject"`
	Phase         int        `json:"phase"`
	PassingScore  float64    `json:"passing_score"`
	BestScore     *float64   `json:"best_score,omitempty"`
	Achieved      *bool      `json:"achieved,omitempty"`
	QuestionnaireID uuid.UUID `json:"questionnaire_id"`
}

// GetStudentIndicatorStatus devuelve el estado de indicadores del estudiante,
// opcionalmente filtrado a un cuestionario.
func GetStudentIndicatorStatus(db *gorm.DB, studentID uuid.UUID, questionnaireID *uuid.UUID) ([]IndicatorStatusRow, error) {
	q := db.Table("questionnaire_indicators AS qi").
		Select(`i.indicator_id AS indicator_id,
			i.indicator_description AS description,
			i.indicator_subject AS subject,
			i.indicator_phase AS phase,
			qi.questionnaire_indicator_passing_score AS passing_score,
			er.evaluation_result_best_score AS best_score,
			si.student_indicator_achieved AS achieved,
			qi.questionnaire_indicator_questionnaire_id AS questionnaire_id`).
		Joins("JOIN indicators i ON i.indicator_id = qi.questionnaire_indicator_indicator_id AND i.indicator_deleted_at IS NULL").
		Joins(`LEFT JOIN evaluation_results er
			ON er.evaluation_result_questionnaire_id = qi.questionnaire_indicator_questionnaire_id
			AND er.evaluation_result_student_id = ?`, studentID).
		Joins(`LEFT JOIN student_indicators si
			ON si.student_indicator_indicator_id = qi.questionnaire_indicator_indicator_id
			AND si.student_indicator_questionnaire_id = qi.questionnaire_indicator_questionnaire_id
			AND si.student_indicator_student_id = ?`, studentID)

	if questionnaireID != nil {
		q = q.Where("qi.questionnaire_indicator_questionnaire_id = ?", *questionnaireID)
	}

	var rows []IndicatorStatusRow
	if err := q.Order("i.indicator_phase, i.indicator_subject").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("consultar estado de indicadores: %w", err)
	}
	return rows, nil
}

func loadThresholds(db *gorm.DB, questionnaireID uuid.UUID) ([]IndicatorThreshold, error) {
	var thresholds []IndicatorThreshold
	err := db.Table("questionnaire_indicators AS qi").
		Select(`qi.questionnaire_indicator_indicator_id AS indicator_id,
			i.indicator_description AS description,
			qi.questionnaire_indicator_passing_score AS passing_score`).
		Joins("JOIN indicators i ON i.indicator_id = qi.questionnaire_indicator_indicator_id AND i.indicator_deleted_at IS NULL").
		Where("qi.questionnaire_indicator_questionnaire_id = ?", questionnaireID).
		Scan(&thresholds).Error
	if err != nil {
		return nil, fmt.Errorf("consultar umbrales de indicadores: %w", err)
	}
	return thresholds, nil
}
