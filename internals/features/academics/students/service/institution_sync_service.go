package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CurrentAcademicYear devuelve el año lectivo en formato "2026-2027".
func CurrentAcademicYear() string {
	year := time.Now().Year()
	return strconv.Itoa(year) + "-" + strconv.Itoa(year+1)
}

// SyncStudentInstitution copia la institución del docente al estudiante (y a
// su usuario) cuando difieren. Es una utilidad best-effort: la consistencia
// de institución no está respaldada por una restricción de base de datos.
func SyncStudentInstitution(db *gorm.DB, teacherID, studentID uuid.UUID) error {
	var institution string
	err := db.Table("teachers").
		Select("teacher_institution").
		Where("teacher_id = ?", teacherID).
		Scan(&institution).Error
	if err != nil {
		return fmt.Errorf("consultar institución del docente: %w", err)
	}
	if institution == "" {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("students").
			Where("student_id = ? AND student_institution <> ?", studentID, institution).
			Update("student_institution", institution).Error; err != nil {
			return fmt.Errorf("sincronizar institución del estudiante: %w", err)
		}
		if err := tx.Table("users").
			Where("user_id = (SELECT student_user_id FROM students WHERE student_id = ?)", studentID).
			Where("user_institution <> ?", institution).
			Update("user_institution", institution).Error; err != nil {
			return fmt.Errorf("sincronizar institución del usuario: %w", err)
		}
		return nil
	})
}
