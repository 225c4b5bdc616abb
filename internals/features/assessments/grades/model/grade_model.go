package model

import (
	"time"

	"github.com/google/uuid"
)

// GradeModel es el snapshot desnormalizado de las cuatro fases, espejado
// desde phase_averages en cada recálculo.
type GradeModel struct {
	GradeID        uuid.UUID `gorm:"column:grade_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"grade_id"`
	GradeStudentID uuid.UUID `gorm:"column:grade_student_id;type:uuid;not null;uniqueIndex"         json:"grade_student_id"`

	GradePhase1 *float64 `gorm:"column:grade_phase1" json:"grade_phase1,omitempty"`
	GradePhase2 *float64 `gorm:"column:grade_phase2" json:"grade_phase2,omitempty"`
	GradePhase3 *float64 `gorm:"column:grade_phase3" json:"grade_phase3,omitempty"`
	GradePhase4 *float64 `gorm:"column:grade_phase4" json:"grade_phase4,omitempty"`

	GradeAverage *float64 `gorm:"column:grade_average" json:"grade_average,omitempty"`

	GradeUpdatedAt time.Time `gorm:"column:grade_updated_at;not null;autoUpdateTime" json:"grade_updated_at"`
}

func (GradeModel) TableName() string { return "grades" }
