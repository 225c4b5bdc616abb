package model

import (
	"time"

	"github.com/google/uuid"
)

// PhaseAverageModel es el agregado por fase. Fila única por
// (student, teacher, phase), creada perezosamente en el recálculo.
type PhaseAverageModel struct {
	PhaseAverageID uuid.UUID `gorm:"column:phase_average_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"phase_average_id"`

	PhaseAverageStudentID uuid.UUID `gorm:"column:phase_average_student_id;type:uuid;not null;uniqueIndex:uq_phase_average" json:"phase_average_student_id"`
	PhaseAverageTeacherID uuid.UUID `gorm:"column:phase_average_teacher_id;type:uuid;not null;uniqueIndex:uq_phase_average" json:"phase_average_teacher_id"`
	PhaseAveragePhase     int       `gorm:"column:phase_average_phase;not null;uniqueIndex:uq_phase_average" json:"phase_average_phase"`

	PhaseAverageScore       float64  `gorm:"column:phase_average_score;not null"  json:"phase_average_score"`
	PhaseAverageScoreManual *float64 `gorm:"column:phase_average_score_manual"    json:"phase_average_score_manual,omitempty"`

	PhaseAverageEvaluationsCompleted int `gorm:"column:phase_average_evaluations_completed;not null;default:0" json:"phase_average_evaluations_completed"`

	PhaseAverageCreatedAt time.Time `gorm:"column:phase_average_created_at;not null;autoCreateTime" json:"phase_average_created_at"`
	PhaseAverageUpdatedAt time.Time `gorm:"column:phase_average_updated_at;not null;autoUpdateTime" json:"phase_average_updated_at"`
}

func (PhaseAverageModel) TableName() string { return "phase_averages" }

// EffectiveScore prefiere el override manual del docente cuando existe.
func (m *PhaseAverageModel) EffectiveScore() float64 {
	if m.PhaseAverageScoreManual != nil {
		return *m.PhaseAverageScoreManual
	}
	return m.PhaseAverageScore
}
