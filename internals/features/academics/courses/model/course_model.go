package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`

	CourseName        string     `gorm:"column:course_name;type:varchar(100);not null"        json:"course_name"`
	CourseGrade       string     `gorm:"column:course_grade;type:varchar(20);not null"        json:"course_grade"`
	CourseInstitution string     `gorm:"column:course_institution;type:varchar(150);not null" json:"course_institution"`
	CourseTeacherID   *uuid.UUID `gorm:"column:course_teacher_id;type:uuid"                   json:"course_teacher_id,omitempty"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;not null;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;not null;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index"                   json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }
