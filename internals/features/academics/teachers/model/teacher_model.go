package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID     uuid.UUID `gorm:"column:teacher_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_id"`
	TeacherUserID uuid.UUID `gorm:"column:teacher_user_id;type:uuid;not null;uniqueIndex"            json:"teacher_user_id"`

	TeacherSubject     string `gorm:"column:teacher_subject;type:varchar(100);not null"     json:"teacher_subject"`
	TeacherInstitution string `gorm:"column:teacher_institution;type:varchar(150);not null" json:"teacher_institution"`

	// Marca para los reportes PDF que genera el frontend
	TeacherReportBrandName *string `gorm:"column:teacher_report_brand_name;type:varchar(150)" json:"teacher_report_brand_name,omitempty"`
	TeacherReportLogoURL   *string `gorm:"column:teacher_report_logo_url"                     json:"teacher_report_logo_url,omitempty"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;not null;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index"                   json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
