package dto

import (
	"github.com/google/uuid"

	helper "edusaber_backend/internals/helpers"
)

// CreateIndicatorRequest crea el indicador y, si trae cuestionario, su
// vínculo con el umbral en la misma transacción.
type CreateIndicatorRequest struct {
	Description     string     `json:"description"      validate:"required,min=5"`
	Subject         string     `json:"subject"          validate:"required,max=100"`
	Phase           int        `json:"phase"            validate:"required,min=1,max=4"`
	Grade           string     `json:"grade"            validate:"required,max=20"`
	Category        *string    `json:"category"         validate:"omitempty,max=60"`
	QuestionnaireID *uuid.UUID `json:"questionnaire_id" validate:"omitempty"`
	PassingScore    *float64   `json:"passing_score"    validate:"omitempty,gte=0,lte=5"`
	FromTemplate    bool       `json:"from_template"`
}

type UpdateIndicatorRequest struct {
	Description  helper.UpdateField[string]  `json:"description"`
	Subject      helper.UpdateField[string]  `json:"subject"`
	Phase        helper.UpdateField[int]     `json:"phase"`
	Grade        helper.UpdateField[string]  `json:"grade"`
	Category     helper.UpdateField[string]  `json:"category"`
	PassingScore helper.UpdateField[float64] `json:"passing_score"`
}

func (r *UpdateIndicatorRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Description.ShouldUpdate() && !r.Description.IsNull() {
		updates["indicator_description"] = r.Description.Val()
	}
	if r.Subject.ShouldUpdate() && !r.Subject.IsNull() {
		updates["indicator_subject"] = r.Subject.Val()
	}
	if r.Phase.ShouldUpdate() && !r.Phase.IsNull() {
		updates["indicator_phase"] = r.Phase.Val()
	}
	if r.Grade.ShouldUpdate() && !r.Grade.IsNull() {
		updates["indicator_grade"] = r.Grade.Val()
	}
	if r.Category.ShouldUpdate() {
		if r.Category.IsNull() {
			updates["indicator_category"] = nil
		} else {
			updates["indicator_category"] = r.Category.Val()
		}
	}
	return updates
}
