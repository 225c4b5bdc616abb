package service

import (
	"fmt"
	"strings"
	"time"
)

// DeadlineDays es el plazo estándar del plan de mejoramiento.
const DeadlineDays = 14

// PlanContent es el texto generado de un plan de mejoramiento.
type PlanContent struct {
	Title       string
	Description string
	Activities  string
	Deadline    time.Time
}

// BuildPlanContent genera título, descripción y actividades a partir de los
// indicadores reprobados. Puro: misma entrada, mismo texto.
func BuildPlanContent(questionnaireTitle, subject, studentName string, failedDescriptions []string, now time.Time) PlanContent {
	deadline := now.AddDate(0, 0, DeadlineDays)

	title := fmt.Sprintf("Plan de mejoramiento - %s - Cuestionario: %s", subject, questionnaireTitle)

	var desc strings.Builder
	fmt.Fprintf(&desc, "Plan de mejoramiento generado automáticamente para %s tras el cuestionario \"%s\" de %s.\n\n",
		studentName, questionnaireTitle, subject)
	desc.WriteString("Indicadores de logro pendientes:\n")
	for i, d := range failedDescriptions {
		fmt.Fprintf(&desc, "%d. %s\n", i+1, d)
	}
	fmt.Fprintf(&desc, "\nFecha límite de entrega: %s.", deadline.Format("2006-01-02"))

	var acts strings.Builder
	acts.WriteString("Actividades de refuerzo:\n")
	for i, d := range failedDescriptions {
		fmt.Fprintf(&acts, "%d. Desarrollar el taller de ejercicios sobre: %s\n", i+1, d)
	}
	fmt.Fprintf(&acts, "%d. Presentar el cuestionario de cierre del plan.\n", len(failedDescriptions)+1)

	return PlanContent{
		Title:       title,
		Description: desc.String(),
		Activities:  acts.String(),
		Deadline:    deadline,
	}
}

// AcademicYearFor devuelve el año lectivo (calendario A colombiano: año civil).
func AcademicYearFor(now time.Time) string {
	return fmt.Sprintf("%d", now.Year())
}
