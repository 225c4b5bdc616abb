package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"edusaber_backend/internals/features/assessments/questionnaires/model"
)

// MaxScore es el tope de la escala de calificación colombiana (0.0 a 5.0).
const MaxScore = 5.0

var ErrNoQuestions = errors.New("el cuestionario no tiene preguntas")

// ScoreSubmission califica las respuestas contra las preguntas: puntos
// obtenidos sobre puntos posibles, escalados a 0..5.
func ScoreSubmission(questions []model.QuestionnaireQuestionModel, answers map[uuid.UUID]string) (float64, error) {
	if len(questions) == 0 {
		return 0, ErrNoQuestions
	}
	var earned, possible float64
	for i := range questions {
		q := &questions[i]
		points := q.QuestionPoints
		if points <= 0 {
			points = 1
		}
		possible += points
		if answers[q.QuestionID] == q.QuestionCorrectOption {
			earned += points
		}
	}
	score := earned / possible * MaxScore
	return math.Round(score*100) / 100, nil
}

// UpsertEvaluationResult conserva el mejor puntaje del par
// (student, questionnaire) y cuenta el intento.
func UpsertEvaluationResult(db *gorm.DB, studentID, questionnaireID uuid.UUID, score float64) (*model.EvaluationResultModel, error) {
	row := model.EvaluationResultModel{
		EvaluationResultStudentID:       studentID,
		EvaluationResultQuestionnaireID: questionnaireID,
		EvaluationResultBestScore:       score,
		EvaluationResultAttempts:        1,
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "evaluation_result_student_id"},
			{Name: "evaluation_result_questionnaire_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"evaluation_result_best_score": gorm.Expr(
				"GREATEST(evaluation_results.evaluation_result_best_score, EXCLUDED.evaluation_result_best_score)"),
			"evaluation_result_attempts": gorm.Expr(
				"evaluation_results.evaluation_result_attempts + 1"),
			"evaluation_result_updated_at": gorm.Expr("now()"),
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("guardar resultado de evaluación: %w", err)
	}

	var stored model.EvaluationResultModel
	err = db.Where("evaluation_result_student_id = ? AND evaluation_result_questionnaire_id = ?",
		studentID, questionnaireID).
		First(&stored).Error
	if err != nil {
		return nil, fmt.Errorf("leer resultado de evaluación: %w", err)
	}
	return &stored, nil
}
