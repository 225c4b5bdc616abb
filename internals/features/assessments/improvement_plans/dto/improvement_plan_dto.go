package dto

import (
	helper "edusaber_backend/internals/helpers"
)

// UpdatePlanRequest son los campos que el docente puede tocar de un plan.
type UpdatePlanRequest struct {
	ActivityStatus helper.UpdateField[string] `json:"activity_status"`
	TeacherNotes   helper.UpdateField[string] `json:"teacher_notes"`
	Deadline       helper.UpdateField[string] `json:"deadline"`
}

type UpdateActivityStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pendiente en_progreso completada"`
}
