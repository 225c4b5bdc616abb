package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	planModel "edusaber_backend/internals/features/assessments/improvement_plans/model"
)

func TestCollectProcessItems_PlanSoloParaReprobados(t *testing.T) {
	questionnaireID := uuid.New()
	conReprobados := uuid.New()
	todoAprobado := uuid.New()
	conPlanPrevio := uuid.New()
	conError := uuid.New()
	planID := uuid.New()

	result := collectProcessItems(questionnaireID,
		[]uuid.UUID{conReprobados, todoAprobado, conPlanPrevio, conError},
		func(sid uuid.UUID) (*planModel.ImprovementPlanModel, int, error) {
			switch sid {
			case conReprobados:
				return &planModel.ImprovementPlanModel{ImprovementPlanID: planID}, 3, nil
			case todoAprobado:
				return nil, 0, nil
			case conPlanPrevio:
				return nil, 2, ErrPlanAlreadyExists
			default:
				return nil, 1, errors.New("crear plan: conexión perdida")
			}
		})

	assert.Equal(t, questionnaireID, result.QuestionnaireID)
	assert.Equal(t, 4, result.StudentsChecked)
	assert.Equal(t, 1, result.PlansCreated)
	assert.Equal(t, 2, result.Skipped, "sin reprobados y duplicado cuentan como omitidos")

	// los estudiantes con todo aprobado no aparecen en el detalle
	assert.Len(t, result.Items, 3)

	assert.Equal(t, conReprobados, result.Items[0].StudentID)
	assert.Equal(t, 3, result.Items[0].Failed)
	if assert.NotNil(t, result.Items[0].PlanID) {
		assert.Equal(t, planID, *result.Items[0].PlanID)
	}
	assert.Empty(t, result.Items[0].Error)

	assert.Equal(t, conPlanPrevio, result.Items[1].StudentID)
	assert.Nil(t, result.Items[1].PlanID)
	assert.Equal(t, ErrPlanAlreadyExists.Error(), result.Items[1].Error)

	assert.Equal(t, conError, result.Items[2].StudentID)
	assert.Nil(t, result.Items[2].PlanID)
	assert.Contains(t, result.Items[2].Error, "conexión perdida")
}

func TestCollectProcessItems_SinEstudiantes(t *testing.T) {
	result := collectProcessItems(uuid.New(), nil,
		func(uuid.UUID) (*planModel.ImprovementPlanModel, int, error) {
			t.Fatal("no debe procesarse a nadie")
			return nil, 0, nil
		})

	assert.Zero(t, result.StudentsChecked)
	assert.Zero(t, result.PlansCreated)
	assert.Zero(t, result.Skipped)
	assert.Empty(t, result.Items)
}
