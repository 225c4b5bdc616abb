package dto

import (
	helper "edusaber_backend/internals/helpers"
)

type UpdateTeacherRequest struct {
	Subject         helper.UpdateField[string] `json:"subject"`
	Institution     helper.UpdateField[string] `json:"institution"`
	ReportBrandName helper.UpdateField[string] `json:"report_brand_name"`
}

func (r *UpdateTeacherRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Subject.ShouldUpdate() && !r.Subject.IsNull() {
		updates["teacher_subject"] = r.Subject.Val()
	}
	if r.Institution.ShouldUpdate() && !r.Institution.IsNull() {
		updates["teacher_institution"] = r.Institution.Val()
	}
	if r.ReportBrandName.ShouldUpdate() {
		if r.ReportBrandName.IsNull() {
			updates["teacher_report_brand_name"] = nil
		} else {
			updates["teacher_report_brand_name"] = r.ReportBrandName.Val()
		}
	}
	return updates
}
