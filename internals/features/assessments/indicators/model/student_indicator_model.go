package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentIndicatorModel es el resultado derivado de evaluar un indicador
// para un estudiante. Única por (student, indicator, questionnaire); la
// re-evaluación upserta sobre la misma fila.
type StudentIndicatorModel struct {
	StudentIndicatorID uuid.UUID `gorm:"column:student_indicator_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_indicator_id"`

	StudentIndicatorStudentID       uuid.UUID `gorm:"column:student_indicator_student_id;type:uuid;not null;uniqueIndex:uq_student_indicator" json:"student_indicator_student_id"`
	StudentIndicatorIndicatorID     uuid.UUID `gorm:"column:student_indicator_indicator_id;type:uuid;not null;uniqueIndex:uq_student_indicator" json:"student_indicator_indicator_id"`
	StudentIndicatorQuestionnaireID uuid.UUID `gorm:"column:student_indicator_questionnaire_id;type:uuid;not null;uniqueIndex:uq_student_indicator" json:"student_indicator_questionnaire_id"`

	StudentIndicatorAchieved   bool      `gorm:"column:student_indicator_achieved;not null"          json:"student_indicator_achieved"`
	StudentIndicatorAssignedAt time.Time `gorm:"column:student_indicator_assigned_at;not null"       json:"student_indicator_assigned_at"`
}

func (StudentIndicatorModel) TableName() string { return "student_indicators" }
