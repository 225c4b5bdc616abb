package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ResourceTypeVideo    = "video"
	ResourceTypeDocument = "documento"
	ResourceTypeLink     = "enlace"
)

type RecoveryResourceModel struct {
	RecoveryResourceID     uuid.UUID `gorm:"column:recovery_resource_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"recovery_resource_id"`
	RecoveryResourcePlanID uuid.UUID `gorm:"column:recovery_resource_plan_id;type:uuid;not null;index" json:"recovery_resource_plan_id"`

	RecoveryResourceType        string  `gorm:"column:recovery_resource_type;type:varchar(20);not null"   json:"recovery_resource_type"`
	RecoveryResourceTitle       string  `gorm:"column:recovery_resource_title;type:varchar(200);not null" json:"recovery_resource_title"`
	RecoveryResourceURL         string  `gorm:"column:recovery_resource_url;not null"                     json:"recovery_resource_url"`
	RecoveryResourceDescription *string `gorm:"column:recovery_resource_description"                      json:"recovery_resource_description,omitempty"`

	RecoveryResourceCreatedAt time.Time `gorm:"column:recovery_resource_created_at;not null;autoCreateTime" json:"recovery_resource_created_at"`
}

func (RecoveryResourceModel) TableName() string { return "recovery_resources" }
