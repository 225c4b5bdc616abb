package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	helper "edusaber_backend/internals/helpers"
)

type QuestionInput struct {
	Text          string         `json:"text"           validate:"required"`
	Options       datatypes.JSON `json:"options"        validate:"required"`
	CorrectOption string         `json:"correct_option" validate:"required,max=5"`
	Points        float64        `json:"points"         validate:"omitempty,gt=0"`
}

type CreateQuestionnaireRequest struct {
	Title            string          `json:"title"              validate:"required,min=3,max=180"`
	Subject          string          `json:"subject"            validate:"required,max=100"`
	Phase            int             `json:"phase"              validate:"required,min=1,max=4"`
	Grade            string          `json:"grade"              validate:"required,max=20"`
	IsPruebaSaber    bool            `json:"is_prueba_saber"`
	PruebaSaberLevel *string         `json:"prueba_saber_level" validate:"omitempty,max=30"`
	Questions        []QuestionInput `json:"questions"          validate:"required,min=1,dive"`
}

type UpdateQuestionnaireRequest struct {
	Title            helper.UpdateField[string] `json:"title"`
	Subject          helper.UpdateField[string] `json:"subject"`
	Phase            helper.UpdateField[int]    `json:"phase"`
	Grade            helper.UpdateField[string] `json:"grade"`
	IsPruebaSaber    helper.UpdateField[bool]   `json:"is_prueba_saber"`
	PruebaSaberLevel helper.UpdateField[string] `json:"prueba_saber_level"`
}

func (r *UpdateQuestionnaireRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Title.ShouldUpdate() && !r.Title.IsNull() {
		updates["questionnaire_title"] = r.Title.Val()
	}
	if r.Subject.ShouldUpdate() && !r.Subject.IsNull() {
		updates["questionnaire_subject"] = r.Subject.Val()
	}
	if r.Phase.ShouldUpdate() && !r.Phase.IsNull() {
		updates["questionnaire_phase"] = r.Phase.Val()
	}
	if r.Grade.ShouldUpdate() && !r.Grade.IsNull() {
		updates["questionnaire_grade"] = r.Grade.Val()
	}
	if r.IsPruebaSaber.ShouldUpdate() && !r.IsPruebaSaber.IsNull() {
		updates["questionnaire_is_prueba_saber"] = r.IsPruebaSaber.Val()
	}
	if r.PruebaSaberLevel.ShouldUpdate() {
		if r.PruebaSaberLevel.IsNull() {
			updates["questionnaire_prueba_saber_level"] = nil
		} else {
			updates["questionnaire_prueba_saber_level"] = r.PruebaSaberLevel.Val()
		}
	}
	return updates
}

// SubmitQuestionnaireRequest son las respuestas de un intento:
// question_id → opción elegida.
type SubmitQuestionnaireRequest struct {
	Answers map[uuid.UUID]string `json:"answers" validate:"required,min=1"`
}
