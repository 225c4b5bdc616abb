package dto

import (
	"github.com/google/uuid"

	helper "edusaber_backend/internals/helpers"
)

type CreateCourseRequest struct {
	Name        string     `json:"name"        validate:"required,min=2,max=100"`
	Grade       string     `json:"grade"       validate:"required,max=20"`
	Institution string     `json:"institution" validate:"required,max=150"`
	TeacherID   *uuid.UUID `json:"teacher_id"  validate:"omitempty"`
}

type UpdateCourseRequest struct {
	Name        helper.UpdateField[string]    `json:"name"`
	Grade       helper.UpdateField[string]    `json:"grade"`
	Institution helper.UpdateField[string]    `json:"institution"`
	TeacherID   helper.UpdateField[uuid.UUID] `json:"teacher_id"`
}

func (r *UpdateCourseRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name.ShouldUpdate() && !r.Name.IsNull() {
		updates["course_name"] = r.Name.Val()
	}
	if r.Grade.ShouldUpdate() && !r.Grade.IsNull() {
		updates["course_grade"] = r.Grade.Val()
	}
	if r.Institution.ShouldUpdate() && !r.Institution.IsNull() {
		updates["course_institution"] = r.Institution.Val()
	}
	if r.TeacherID.ShouldUpdate() {
		if r.TeacherID.IsNull() {
			updates["course_teacher_id"] = nil
		} else {
			updates["course_teacher_id"] = r.TeacherID.Val()
		}
	}
	return updates
}
