package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionnaireModel struct {
	QuestionnaireID uuid.UUID `gorm:"column:questionnaire_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"questionnaire_id"`

	QuestionnaireTitle     string    `gorm:"column:questionnaire_title;type:varchar(180);not null" json:"questionnaire_title"`
	QuestionnaireSubject   string    `gorm:"column:questionnaire_subject;type:varchar(100);not null" json:"questionnaire_subject"`
	QuestionnairePhase     int       `gorm:"column:questionnaire_phase;not null"                   json:"questionnaire_phase"`
	QuestionnaireGrade     string    `gorm:"column:questionnaire_grade;type:varchar(20);not null"  json:"questionnaire_grade"`
	QuestionnaireCreatedBy uuid.UUID `gorm:"column:questionnaire_created_by;type:uuid;not null"    json:"questionnaire_created_by"`

	// Modalidad Prueba Saber (examen estandarizado colombiano)
	QuestionnaireIsPruebaSaber    bool    `gorm:"column:questionnaire_is_prueba_saber;not null;default:false" json:"questionnaire_is_prueba_saber"`
	QuestionnairePruebaSaberLevel *string `gorm:"column:questionnaire_prueba_saber_level;type:varchar(30)"    json:"questionnaire_prueba_saber_level,omitempty"`

	QuestionnaireCreatedAt time.Time      `gorm:"column:questionnaire_created_at;not null;autoCreateTime" json:"questionnaire_created_at"`
	QuestionnaireUpdatedAt time.Time      `gorm:"column:questionnaire_updated_at;not null;autoUpdateTime" json:"questionnaire_updated_at"`
	QuestionnaireDeletedAt gorm.DeletedAt `gorm:"column:questionnaire_deleted_at;index"                   json:"questionnaire_deleted_at,omitempty"`

	Questions []QuestionnaireQuestionModel `gorm:"foreignKey:QuestionQuestionnaireID;references:QuestionnaireID" json:"questions,omitempty"`
}

func (QuestionnaireModel) TableName() string { return "questionnaires" }
