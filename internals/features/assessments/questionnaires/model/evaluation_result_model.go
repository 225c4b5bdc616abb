package model

import (
	"time"

	"github.com/google/uuid"
)

// EvaluationResultModel guarda el mejor puntaje del estudiante por cuestionario.
// Única por (student, questionnaire); se upserta en cada intento.
type EvaluationResultModel struct {
	EvaluationResultID uuid.UUID `gorm:"column:evaluation_result_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"evaluation_result_id"`

	EvaluationResultStudentID       uuid.UUID `gorm:"column:evaluation_result_student_id;type:uuid;not null;uniqueIndex:uq_evaluation_result" json:"evaluation_result_student_id"`
	EvaluationResultQuestionnaireID uuid.UUID `gorm:"column:evaluation_result_questionnaire_id;type:uuid;not null;uniqueIndex:uq_evaluation_result" json:"evaluation_result_questionnaire_id"`

	EvaluationResultBestScore float64 `gorm:"column:evaluation_result_best_score;not null"    json:"evaluation_result_best_score"`
	EvaluationResultAttempts  int     `gorm:"column:evaluation_result_attempts;not null;default:1" json:"evaluation_result_attempts"`

	EvaluationResultCreatedAt time.Time `gorm:"column:evaluation_result_created_at;not null;autoCreateTime" json:"evaluation_result_created_at"`
	EvaluationResultUpdatedAt time.Time `gorm:"column:evaluation_result_updated_at;not null;autoUpdateTime" json:"evaluation_result_updated_at"`
}

func (EvaluationResultModel) TableName() string { return "evaluation_results" }
