package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionnaireQuestionModel struct {
	QuestionID              uuid.UUID `gorm:"column:question_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"question_id"`
	QuestionQuestionnaireID uuid.UUID `gorm:"column:question_questionnaire_id;type:uuid;not null;index"         json:"question_questionnaire_id"`

	QuestionText string `gorm:"column:question_text;not null" json:"question_text"`

	// Opciones de selección múltiple: [{"key":"A","text":"..."}, ...]
	QuestionOptions       datatypes.JSON `gorm:"column:question_options;type:jsonb;not null" json:"question_options"`
	QuestionCorrectOption string         `gorm:"column:question_correct_option;type:varchar(5);not null" json:"question_correct_option"`
	QuestionPoints        float64        `gorm:"column:question_points;not null;default:1"               json:"question_points"`

	QuestionCreatedAt time.Time      `gorm:"column:question_created_at;not null;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time      `gorm:"column:question_updated_at;not null;autoUpdateTime" json:"question_updated_at"`
	QuestionDeletedAt gorm.DeletedAt `gorm:"column:question_deleted_at;index"                   json:"question_deleted_at,omitempty"`
}

func (QuestionnaireQuestionModel) TableName() string { return "questionnaire_questions" }
