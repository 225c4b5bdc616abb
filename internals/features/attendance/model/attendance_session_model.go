package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AttendanceSessionModel es una sesión de asistencia con token QR.
type AttendanceSessionModel struct {
	AttendanceSessionID uuid.UUID `gorm:"column:attendance_session_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_session_id"`

	AttendanceSessionCourseID  uuid.UUID `gorm:"column:attendance_session_course_id;type:uuid;not null;index"  json:"attendance_session_course_id"`
	AttendanceSessionTeacherID uuid.UUID `gorm:"column:attendance_session_teacher_id;type:uuid;not null;index" json:"attendance_session_teacher_id"`

	AttendanceSessionDate      time.Time `gorm:"column:attendance_session_date;type:date;not null"          json:"attendance_session_date"`
	AttendanceSessionQRToken   string    `gorm:"column:attendance_session_qr_token;not null;uniqueIndex"    json:"attendance_session_qr_token"`
	AttendanceSessionExpiresAt time.Time `gorm:"column:attendance_session_expires_at;not null"              json:"attendance_session_expires_at"`

	AttendanceSessionMetadata datatypes.JSON `gorm:"column:attendance_session_metadata;type:jsonb" json:"attendance_session_metadata,omitempty"`

	AttendanceSessionCreatedAt time.Time      `gorm:"column:attendance_session_created_at;not null;autoCreateTime" json:"attendance_session_created_at"`
	AttendanceSessionDeletedAt gorm.DeletedAt `gorm:"column:attendance_session_deleted_at;index"                   json:"attendance_session_deleted_at,omitempty"`
}

func (AttendanceSessionModel) TableName() string { return "attendance_sessions" }

// IsExpired indica si el token QR de la sesión ya no acepta registros.
func (m *AttendanceSessionModel) IsExpired(now time.Time) bool {
	return now.After(m.AttendanceSessionExpiresAt)
}
