package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	gradeModel "edusaber_backend/internals/features/assessments/grades/model"
)

const TotalPhases = 4

var ErrNoTeacherAssigned = errors.New("el estudiante no tiene docente asignado")

// PhaseScore es un puntaje de evaluación ya resuelto a su fase.
type PhaseScore struct {
	Phase int
	Score float64
}

// PhaseStat es el agregado de una fase.
type PhaseStat struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// RecalculateSummary es el resultado del recálculo de un estudiante.
type RecalculateSummary struct {
	StudentID     uuid.UUID         `json:"student_id"`
	TeacherID     uuid.UUID         `json:"teacher_id"`
	PhaseAverages map[int]PhaseStat `json:"phase_averages"`
	OverallGrade  *float64          `json:"overall_grade,omitempty"`
}

// ComputePhaseStats agrega los puntajes por fase. Ignora fases fuera de 1..4.
func ComputePhaseStats(scores []PhaseScore) map[int]PhaseStat {
	sums := map[int]float64{}
	counts := map[int]int{}
	for _, s := range scores {
		if s.Phase < 1 || s.Phase > TotalPhases {
			continue
		}
		sums[s.Phase] += s.Score
		counts[s.Phase]++
	}
	stats := make(map[int]PhaseStat, len(counts))
	for phase, n := range counts {
		stats[phase] = PhaseStat{Average: round2(sums[phase] / float64(n)), Count: n}
	}
	return stats
}

// OverallAverage promedia las fases que tienen puntaje. Devuelve nil cuando
// ninguna fase tiene datos.
func OverallAverage(phases map[int]float64) *float64 {
	if len(phases) == 0 {
		return nil
	}
	var sum float64
	for _, v := range phases {
		sum += v
	}
	avg := round2(sum / float64(len(phases)))
	return &avg
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RecalculatePhaseAverages recomputa los agregados por fase de un estudiante
// y espeja el resultado en la fila desnormalizada de grades. Es idempotente:
// con los mismos evaluation_results produce los mismos valores. Si teacherID
// es nil, se resuelve por la asignación más reciente en teacher_students.
func RecalculatePhaseAverages(db *gorm.DB, studentID uuid.UUID, teacherID *uuid.UUID) (*RecalculateSummary, error) {
	resolvedTeacher, err := resolveTeacher(db, studentID, teacherID)
	if err != nil {
		return nil, err
	}

	scores, err := loadPhaseScores(db, studentID, resolvedTeacher)
	if err != nil {
		return nil, err
	}
	stats := ComputePhaseStats(scores)

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := upsertPhaseAverages(tx, studentID, resolvedTeacher, stats); err != nil {
			return err
		}
		return mirrorGradeSnapshot(tx, studentID)
	})
	if err != nil {
		return nil, err
	}

	summary := &RecalculateSummary{
		StudentID:     studentID,
		TeacherID:     resolvedTeacher,
		PhaseAverages: stats,
	}
	effective, err := loadEffectivePhaseScores(db, studentID)
	if err != nil {
		return nil, err
	}
	summary.OverallGrade = OverallAverage(effective)
	return summary, nil
}

func resolveTeacher(db *gorm.DB, studentID uuid.UUID, teacherID *uuid.UUID) (uuid.UUID, error) {
	if teacherID != nil {
		return *teacherID, nil
	}
	var resolved uuid.UUID
	err := db.Table("teacher_students").
		Select("teacher_student_teacher_id").
		Where("teacher_student_student_id = ?", studentID).
		Order("teacher_student_academic_year DESC").
		Limit(1).
		Scan(&resolved).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolver docente del estudiante: %w", err)
	}
	if resolved == uuid.Nil {
		return uuid.Nil, ErrNoTeacherAssigned
	}
	return resolved, nil
}

// loadPhaseScores trae (fase, mejor puntaje) de los cuestionarios del docente.
func loadPhaseScores(db *gorm.DB, studentID, teacherID uuid.UUID) ([]PhaseScore, error) {
	var rows []PhaseScore
	err := db.Table("evaluation_results AS er").
		Select("q.questionnaire_phase AS phase, er.evaluation_result_best_score AS score").
		Joins("JOIN questionnaires q ON q.questionnaire_id = er.evaluation_result_questionnaire_id AND q.questionnaire_deleted_at IS NULL").
		Where("er.evaluation_result_student_id = ?", studentID).
		Where("q.questionnaire_created_by = ?", teacherID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("consultar puntajes por fase: %w", err)
	}
	return rows, nil
}

func upsertPhaseAverages(tx *gorm.DB, studentID, teacherID uuid.UUID, stats map[int]PhaseStat) error {
	for phase, stat := range stats {
		row := gradeModel.PhaseAverageModel{
			PhaseAverageStudentID:            studentID,
			PhaseAverageTeacherID:            teacherID,
			PhaseAveragePhase:                phase,
			PhaseAverageScore:                stat.Average,
			PhaseAverageEvaluationsCompleted: stat.Count,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "phase_average_student_id"},
				{Name: "phase_average_teacher_id"},
				{Name: "phase_average_phase"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"phase_average_score",
				"phase_average_evaluations_completed",
				"phase_average_updated_at",
			}),
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("guardar promedio fase %d: %w", phase, err)
		}
	}
	return nil
}

// loadEffectivePhaseScores lee los promedios del estudiante en todas sus
// asignaciones, prefiriendo el override manual del docente.
func loadEffectivePhaseScores(db *gorm.DB, studentID uuid.UUID) (map[int]float64, error) {
	var rows []gradeModel.PhaseAverageModel
	if err := db.Where("phase_average_student_id = ?", studentID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("consultar promedios por fase: %w", err)
	}
	sums := map[int]float64{}
	counts := map[int]int{}
	for i := range rows {
		sums[rows[i].PhaseAveragePhase] += rows[i].EffectiveScore()
		counts[rows[i].PhaseAveragePhase]++
	}
	effective := make(map[int]float64, len(counts))
	for phase, n := range counts {
		effective[phase] = round2(sums[phase] / float64(n))
	}
	return effective, nil
}

// mirrorGradeSnapshot reescribe la fila desnormalizada phase1..4 + promedio.
func mirrorGradeSnapshot(tx *gorm.DB, studentID uuid.UUID) error {
	effective, err := loadEffectivePhaseScores(tx, studentID)
	if err != nil {
		return err
	}

	snapshot := gradeModel.GradeModel{GradeStudentID: studentID}
	phasePtr := func(phase int) *float64 {
		if v, ok := effective[phase]; ok {
			score := v
			return &score
		}
		return nil
	}
	snapshot.GradePhase1 = phasePtr(1)
	snapshot.GradePhase2 = phasePtr(2)
	snapshot.GradePhase3 = phasePtr(3)
	snapshot.GradePhase4 = phasePtr(4)
	snapshot.GradeAverage = OverallAverage(effective)

	err = tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "grade_student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"grade_phase1", "grade_phase2", "grade_phase3", "grade_phase4",
			"grade_average", "grade_updated_at",
		}),
	}).Create(&snapshot).Error
	if err != nil {
		return fmt.Errorf("guardar snapshot de notas: %w", err)
	}
	return nil
}

// SetManualOverride fija (o limpia con nil) el promedio manual del docente
// para una fase y vuelve a espejar grades.
func SetManualOverride(db *gorm.DB, studentID, teacherID uuid.UUID, phase int, manual *float64) error {
	if phase < 1 || phase > TotalPhases {
		return fmt.Errorf("fase inválida: %d", phase)
	}
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&gradeModel.PhaseAverageModel{}).
			Where("phase_average_student_id = ? AND phase_average_teacher_id = ? AND phase_average_phase = ?",
				studentID, teacherID, phase).
			Update("phase_average_score_manual", manual)
		if res.Error != nil {
			return fmt.Errorf("guardar override manual: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return mirrorGradeSnapshot(tx, studentID)
	})
}
