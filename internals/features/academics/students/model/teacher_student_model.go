package model

import (
	"time"

	"github.com/google/uuid"
)

// TeacherStudentModel asigna estudiantes a docentes por año académico.
// Única por (teacher, student, year).
type TeacherStudentModel struct {
	TeacherStudentID uuid.UUID `gorm:"column:teacher_student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_student_id"`

	TeacherStudentTeacherID    uuid.UUID `gorm:"column:teacher_student_teacher_id;type:uuid;not null;uniqueIndex:uq_teacher_student" json:"teacher_student_teacher_id"`
	TeacherStudentStudentID    uuid.UUID `gorm:"column:teacher_student_student_id;type:uuid;not null;uniqueIndex:uq_teacher_student" json:"teacher_student_student_id"`
	TeacherStudentAcademicYear string    `gorm:"column:teacher_student_academic_year;type:varchar(9);not null;uniqueIndex:uq_teacher_student" json:"teacher_student_academic_year"`

	TeacherStudentCreatedAt time.Time `gorm:"column:teacher_student_created_at;not null;autoCreateTime" json:"teacher_student_created_at"`
}

func (TeacherStudentModel) TableName() string { return "teacher_students" }
