package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActivityStatusPendiente  = "pendiente"
	ActivityStatusEnProgreso = "en_progreso"
	ActivityStatusCompletada = "completada"
)

type RecoveryActivityModel struct {
	RecoveryActivityID     uuid.UUID `gorm:"column:recovery_activity_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"recovery_activity_id"`
	RecoveryActivityPlanID uuid.UUID `gorm:"column:recovery_activity_plan_id;type:uuid;not null;index" json:"recovery_activity_plan_id"`

	RecoveryActivityTitle       string     `gorm:"column:recovery_activity_title;type:varchar(200);not null" json:"recovery_activity_title"`
	RecoveryActivityDescription string     `gorm:"column:recovery_activity_description;not null"             json:"recovery_activity_description"`
	RecoveryActivityIndicatorID *uuid.UUID `gorm:"column:recovery_activity_indicator_id;type:uuid"           json:"recovery_activity_indicator_id,omitempty"`
	RecoveryActivityOrder       int        `gorm:"column:recovery_activity_order;not null;default:1"         json:"recovery_activity_order"`
	RecoveryActivityStatus      string     `gorm:"column:recovery_activity_status;type:varchar(20);not null;default:'pendiente'" json:"recovery_activity_status"`

	RecoveryActivityCreatedAt time.Time `gorm:"column:recovery_activity_created_at;not null;autoCreateTime" json:"recovery_activity_created_at"`
	RecoveryActivityUpdatedAt time.Time `gorm:"column:recovery_activity_updated_at;not null;autoUpdateTime" json:"recovery_activity_updated_at"`
}

func (RecoveryActivityModel) TableName() string { return "recovery_activities" }
