package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EducationalResourceTypeVideo = "video"
	EducationalResourceTypeGuide = "guia"
	EducationalResourceTypeLink  = "enlace"
)

type EducationalResourceModel struct {
	EducationalResourceID uuid.UUID `gorm:"column:educational_resource_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"educational_resource_id"`

	EducationalResourceTitle       string  `gorm:"column:educational_resource_title;type:varchar(200);not null" json:"educational_resource_title"`
	EducationalResourceSubject     string  `gorm:"column:educational_resource_subject;type:varchar(100);not null" json:"educational_resource_subject"`
	EducationalResourceGrade       string  `gorm:"column:educational_resource_grade;type:varchar(20);not null"  json:"educational_resource_grade"`
	EducationalResourceType        string  `gorm:"column:educational_resource_type;type:varchar(20);not null"   json:"educational_resource_type"`
	EducationalResourceURL         *string `gorm:"column:educational_resource_url"                              json:"educational_resource_url,omitempty"`
	EducationalResourceDescription *string `gorm:"column:educational_resource_description"                      json:"educational_resource_description,omitempty"`

	// URL de la guía PDF subida a OSS (tipo "guia")
	EducationalResourceFileURL *string `gorm:"column:educational_resource_file_url" json:"educational_resource_file_url,omitempty"`

	EducationalResourceUploadedBy uuid.UUID `gorm:"column:educational_resource_uploaded_by;type:uuid;not null;index" json:"educational_resource_uploaded_by"`

	EducationalResourceCreatedAt time.Time      `gorm:"column:educational_resource_created_at;not null;autoCreateTime" json:"educational_resource_created_at"`
	EducationalResourceUpdatedAt time.Time      `gorm:"column:educational_resource_updated_at;not null;autoUpdateTime" json:"educational_resource_updated_at"`
	EducationalResourceDeletedAt gorm.DeletedAt `gorm:"column:educational_resource_deleted_at;index"                   json:"educational_resource_deleted_at,omitempty"`
}

func (EducationalResourceModel) TableName() string { return "educational_resources" }
