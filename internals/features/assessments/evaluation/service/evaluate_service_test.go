package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMarkOutcomes_UmbralInclusivo(t *testing.T) {
	thresholds := []IndicatorThreshold{
		{IndicatorID: uuid.New(), Description: "Resuelve ecuaciones lineales", PassingScore: 3.0},
		{IndicatorID: uuid.New(), Description: "Interpreta gráficas", PassingScore: 3.5},
		{IndicatorID: uuid.New(), Description: "Argumenta resultados", PassingScore: 4.0},
	}

	outcomes := MarkOutcomes(3.0, thresholds)
	assert.Len(t, outcomes, 3)
	assert.True(t, outcomes[0].Achieved, "puntaje igual al umbral aprueba")
	assert.False(t, outcomes[1].Achieved)
	assert.False(t, outcomes[2].Achieved)

	outcomes = MarkOutcomes(4.0, thresholds)
	assert.True(t, outcomes[0].Achieved)
	assert.True(t, outcomes[1].Achieved)
	assert.True(t, outcomes[2].Achieved, "4.0 contra umbral 4.0 aprueba")
}

func TestMarkOutcomes_ConservaDatosDelUmbral(t *testing.T) {
	id := uuid.New()
	outcomes := MarkOutcomes(2.5, []IndicatorThreshold{
		{IndicatorID: id, Description: "Comprende textos", PassingScore: 3.0},
	})

	assert.Equal(t, id, outcomes[0].IndicatorID)
	assert.Equal(t, "Comprende textos", outcomes[0].Description)
	assert.Equal(t, 3.0, outcomes[0].PassingScore)
	assert.False(t, outcomes[0].Achieved)
}

func TestMarkOutcomes_SinUmbrales(t *testing.T) {
	assert.Empty(t, MarkOutcomes(5.0, nil))
}

func TestCountApproved(t *testing.T) {
	outcomes := []IndicatorOutcome{
		{Achieved: true},
		{Achieved: false},
		{Achieved: true},
		{Achieved: false},
		{Achieved: false},
	}

	approved, failed := CountApproved(outcomes)
	assert.Equal(t, 2, approved)
	assert.Equal(t, 3, failed)

	approved, failed = CountApproved(nil)
	assert.Zero(t, approved)
	assert.Zero(t, failed)
}

func TestCollectBulkItems_ReportaCadaEstudiante(t *testing.T) {
	questionnaireID := uuid.New()
	ok := uuid.New()
	sinEvaluacion := uuid.New()
	conError := uuid.New()

	summary := collectBulkItems(questionnaireID, []uuid.UUID{ok, sinEvaluacion, conError},
		func(sid uuid.UUID) (*EvaluationSummary, error) {
			switch sid {
			case ok:
				return &EvaluationSummary{Success: true, StudentID: sid, Approved: 4, Failed: 1}, nil
			case sinEvaluacion:
				return &EvaluationSummary{
					Success:   false,
					Message:   "El estudiante no tiene evaluación registrada para este cuestionario",
					StudentID: sid,
				}, nil
			default:
				return nil, errors.New("upsert student_indicators: conexión perdida")
			}
		})

	assert.Equal(t, questionnaireID, summary.QuestionnaireID)
	assert.Equal(t, 3, summary.StudentsTotal)
	assert.Equal(t, 1, summary.Evaluated)
	assert.Equal(t, 2, summary.Errored)
	assert.Len(t, summary.Items, 3, "cada estudiante aparece en el detalle")

	assert.Equal(t, ok, summary.Items[0].StudentID)
	assert.True(t, summary.Items[0].Success)
	assert.Equal(t, 4, summary.Items[0].Approved)
	assert.Equal(t, 1, summary.Items[0].Failed)
	assert.Empty(t, summary.Items[0].Error)

	assert.Equal(t, sinEvaluacion, summary.Items[1].StudentID)
	assert.False(t, summary.Items[1].Success)
	assert.Equal(t, "El estudiante no tiene evaluación registrada para este cuestionario", summary.Items[1].Error)

	assert.Equal(t, conError, summary.Items[2].StudentID)
	assert.False(t, summary.Items[2].Success)
	assert.Contains(t, summary.Items[2].Error, "conexión perdida")
}

func TestCollectBulkItems_SinEstudiantes(t *testing.T) {
	summary := collectBulkItems(uuid.New(), nil, func(uuid.UUID) (*EvaluationSummary, error) {
		t.Fatal("no debe evaluarse a nadie")
		return nil, nil
	})

	assert.Zero(t, summary.StudentsTotal)
	assert.Zero(t, summary.Evaluated)
	assert.Zero(t, summary.Errored)
	assert.Empty(t, summary.Items)
}
