package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID     uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	StudentUserID uuid.UUID `gorm:"column:student_user_id;type:uuid;not null;uniqueIndex"            json:"student_user_id"`

	StudentCourseID *uuid.UUID `gorm:"column:student_course_id;type:uuid" json:"student_course_id,omitempty"`

	StudentGrade        string  `gorm:"column:student_grade;type:varchar(20);not null"        json:"student_grade"`
	StudentContactEmail *string `gorm:"column:student_contact_email;type:varchar(120)"        json:"student_contact_email,omitempty"`
	StudentContactPhone *string `gorm:"column:student_contact_phone;type:varchar(30)"         json:"student_contact_phone,omitempty"`
	StudentInstitution  string  `gorm:"column:student_institution;type:varchar(150);not null" json:"student_institution"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index"                   json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
