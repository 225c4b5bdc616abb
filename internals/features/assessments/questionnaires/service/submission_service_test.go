package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"edusaber_backend/internals/features/assessments/questionnaires/model"
)

func question(correct string, points float64) model.QuestionnaireQuestionModel {
	return model.QuestionnaireQuestionModel{
		QuestionID:            uuid.New(),
		QuestionCorrectOption: correct,
		QuestionPoints:        points,
	}
}

func TestScoreSubmission_TodoCorrecto(t *testing.T) {
	qs := []model.QuestionnaireQuestionModel{
		question("A", 1),
		question("B", 1),
		question("C", 1),
	}
	answers := map[uuid.UUID]string{
		qs[0].QuestionID: "A",
		qs[1].QuestionID: "B",
		qs[2].QuestionID: "C",
	}

	score, err := ScoreSubmission(qs, answers)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, score)
}

func TestScoreSubmission_Parcial(t *testing.T) {
	qs := []model.QuestionnaireQuestionModel{
		question("A", 1),
		question("B", 1),
	}
	answers := map[uuid.UUID]string{
		qs[0].QuestionID: "A",
		qs[1].QuestionID: "D",
	}

	score, err := ScoreSubmission(qs, answers)
	assert.NoError(t, err)
	assert.Equal(t, 2.5, score)
}

func TestScoreSubmission_Ponderado(t *testing.T) {
	qs := []model.QuestionnaireQuestionModel{
		question("A", 3),
		question("B", 1),
	}
	// solo acierta la pregunta de 3 puntos: 3/4 * 5 = 3.75
	answers := map[uuid.UUID]string{qs[0].QuestionID: "A"}

	score, err := ScoreSubmission(qs, answers)
	assert.NoError(t, err)
	assert.Equal(t, 3.75, score)
}

func TestScoreSubmission_PuntosNoPositivosValenUno(t *testing.T) {
	qs := []model.QuestionnaireQuestionModel{
		question("A", 0),
		question("B", -2),
	}
	answers := map[uuid.UUID]string{qs[0].QuestionID: "A"}

	score, err := ScoreSubmission(qs, answers)
	assert.NoError(t, err)
	assert.Equal(t, 2.5, score)
}

func TestScoreSubmission_SinRespuestas(t *testing.T) {
	qs := []model.QuestionnaireQuestionModel{question("A", 1)}

	score, err := ScoreSubmission(qs, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestScoreSubmission_SinPreguntas(t *testing.T) {
	_, err := ScoreSubmission(nil, map[uuid.UUID]string{})
	assert.ErrorIs(t, err, ErrNoQuestions)
}
