package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LicenseStatusPending = "pending"
	LicenseStatusActive  = "active"
	LicenseStatusExpired = "expired"
)

const (
	LicensePlanMensual = "mensual"
	LicensePlanAnual   = "anual"
)

// TeacherLicenseModel controla el acceso de un docente por institución.
// Se activa vía webhook de pago (Midtrans) o manualmente por un admin.
type TeacherLicenseModel struct {
	TeacherLicenseID uuid.UUID `gorm:"column:teacher_license_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_license_id"`

	TeacherLicenseTeacherID   uuid.UUID `gorm:"column:teacher_license_teacher_id;type:uuid;not null;index"   json:"teacher_license_teacher_id"`
	TeacherLicenseInstitution string    `gorm:"column:teacher_license_institution;type:varchar(150);not null" json:"teacher_license_institution"`

	TeacherLicensePlan       string     `gorm:"column:teacher_license_plan;type:varchar(30);not null"                     json:"teacher_license_plan"`
	TeacherLicenseStatus     string     `gorm:"column:teacher_license_status;type:varchar(15);not null;default:'pending'" json:"teacher_license_status"`
	TeacherLicenseValidUntil *time.Time `gorm:"column:teacher_license_valid_until"                                        json:"teacher_license_valid_until,omitempty"`

	// Referencia de la transacción Snap
	TeacherLicenseOrderID *string `gorm:"column:teacher_license_order_id;type:varchar(80);uniqueIndex" json:"teacher_license_order_id,omitempty"`
	TeacherLicenseAmount  int64   `gorm:"column:teacher_license_amount;not null;default:0"             json:"teacher_license_amount"`
	TeacherLicensePaidAt  *time.Time `gorm:"column:teacher_license_paid_at"                            json:"teacher_license_paid_at,omitempty"`

	TeacherLicenseCreatedAt time.Time      `gorm:"column:teacher_license_created_at;not null;autoCreateTime" json:"teacher_license_created_at"`
	TeacherLicenseUpdatedAt time.Time      `gorm:"column:teacher_license_updated_at;not null;autoUpdateTime" json:"teacher_license_updated_at"`
	TeacherLicenseDeletedAt gorm.DeletedAt `gorm:"column:teacher_license_deleted_at;index"                   json:"teacher_license_deleted_at,omitempty"`
}

func (TeacherLicenseModel) TableName() string { return "teacher_licenses" }
