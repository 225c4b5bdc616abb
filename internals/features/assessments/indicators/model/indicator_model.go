package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IndicatorModel es un indicador de logro curricular.
type IndicatorModel struct {
	IndicatorID uuid.UUID `gorm:"column:indicator_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"indicator_id"`

	IndicatorDescription string `gorm:"column:indicator_description;not null"               json:"indicator_description"`
	IndicatorSubject     string `gorm:"column:indicator_subject;type:varchar(100);not null" json:"indicator_subject"`
	IndicatorPhase       int    `gorm:"column:indicator_phase;not null"                     json:"indicator_phase"`
	IndicatorGrade       string `gorm:"column:indicator_grade;type:varchar(20);not null"    json:"indicator_grade"`
	IndicatorCategory    *string `gorm:"column:indicator_category;type:varchar(60)"         json:"indicator_category,omitempty"`

	IndicatorTeacherID       uuid.UUID  `gorm:"column:indicator_teacher_id;type:uuid;not null;index" json:"indicator_teacher_id"`
	IndicatorQuestionnaireID *uuid.UUID `gorm:"column:indicator_questionnaire_id;type:uuid;index"    json:"indicator_questionnaire_id,omitempty"`
	IndicatorFromTemplate    bool       `gorm:"column:indicator_from_template;not null;default:false" json:"indicator_from_template"`

	IndicatorCreatedAt time.Time      `gorm:"column:indicator_created_at;not null;autoCreateTime" json:"indicator_created_at"`
	IndicatorUpdatedAt time.Time      `gorm:"column:indicator_updated_at;not null;autoUpdateTime" json:"indicator_updated_at"`
	IndicatorDeletedAt gorm.DeletedAt `gorm:"column:indicator_deleted_at;index"                   json:"indicator_deleted_at,omitempty"`
}

func (IndicatorModel) TableName() string { return "indicators" }
