package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionnaireIndicatorModel asocia un indicador a un cuestionario con su
// umbral de aprobación.
type QuestionnaireIndicatorModel struct {
	QuestionnaireIndicatorID uuid.UUID `gorm:"column:questionnaire_indicator_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"questionnaire_indicator_id"`

	QuestionnaireIndicatorQuestionnaireID uuid.UUID `gorm:"column:questionnaire_indicator_questionnaire_id;type:uuid;not null;uniqueIndex:uq_questionnaire_indicator" json:"questionnaire_indicator_questionnaire_id"`
	QuestionnaireIndicatorIndicatorID     uuid.UUID `gorm:"column:questionnaire_indicator_indicator_id;type:uuid;not null;uniqueIndex:uq_questionnaire_indicator" json:"questionnaire_indicator_indicator_id"`

	QuestionnaireIndicatorPassingScore float64 `gorm:"column:questionnaire_indicator_passing_score;not null" json:"questionnaire_indicator_passing_score"`

	QuestionnaireIndicatorCreatedAt time.Time `gorm:"column:questionnaire_indicator_created_at;not null;autoCreateTime" json:"questionnaire_indicator_created_at"`
}

func (QuestionnaireIndicatorModel) TableName() string { return "questionnaire_indicators" }
