package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildPlanContent(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	failed := []string{
		"Resuelve problemas con fracciones",
		"Identifica la idea principal de un texto",
	}

	content := BuildPlanContent("Prueba Saber Fase 1", "Matemáticas", "Ana Gómez", failed, now)

	assert.Equal(t, "Plan de mejoramiento - Matemáticas - Cuestionario: Prueba Saber Fase 1", content.Title)
	assert.Equal(t, now.AddDate(0, 0, DeadlineDays), content.Deadline)

	assert.Contains(t, content.Description, "Ana Gómez")
	assert.Contains(t, content.Description, "Prueba Saber Fase 1")
	assert.Contains(t, content.Description, "1. Resuelve problemas con fracciones")
	assert.Contains(t, content.Description, "2. Identifica la idea principal de un texto")
	assert.Contains(t, content.Description, "2026-03-24", "la fecha límite son 14 días después")

	assert.Contains(t, content.Activities, "1. Desarrollar el taller de ejercicios sobre: Resuelve problemas con fracciones")
	assert.Contains(t, content.Activities, "3. Presentar el cuestionario de cierre del plan.")
}

func TestBuildPlanContent_EsDeterminista(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	failed := []string{"Usa conectores lógicos"}

	a := BuildPlanContent("Quiz", "Lenguaje", "Luis", failed, now)
	b := BuildPlanContent("Quiz", "Lenguaje", "Luis", failed, now)
	assert.Equal(t, a, b)
}

func TestAcademicYearFor(t *testing.T) {
	assert.Equal(t, "2026", AcademicYearFor(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026", AcademicYearFor(time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC)))
}
