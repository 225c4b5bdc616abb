package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttendanceStatusPresente = "presente"
	AttendanceStatusTarde    = "tarde"
	AttendanceStatusAusente  = "ausente"
)

// AttendanceRecordModel es el registro de un escaneo QR. Único por
// (session, student); un re-escaneo actualiza la fila existente.
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"column:attendance_record_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_record_id"`

	AttendanceRecordSessionID uuid.UUID `gorm:"column:attendance_record_session_id;type:uuid;not null;uniqueIndex:uq_attendance_record" json:"attendance_record_session_id"`
	AttendanceRecordStudentID uuid.UUID `gorm:"column:attendance_record_student_id;type:uuid;not null;uniqueIndex:uq_attendance_record" json:"attendance_record_student_id"`

	AttendanceRecordStatus     string    `gorm:"column:attendance_record_status;type:varchar(15);not null;default:'presente'" json:"attendance_record_status"`
	AttendanceRecordRecordedAt time.Time `gorm:"column:attendance_record_recorded_at;not null" json:"attendance_record_recorded_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
