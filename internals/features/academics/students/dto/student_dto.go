package dto

import (
	"github.com/google/uuid"

	helper "edusaber_backend/internals/helpers"
)

// CreateStudentRequest crea el usuario y el perfil de estudiante en una sola
// transacción.
type CreateStudentRequest struct {
	Name         string     `json:"name"          validate:"required,min=2,max=100"`
	Email        string     `json:"email"         validate:"required,email"`
	Password     string     `json:"password"      validate:"required,min=8"`
	Grade        string     `json:"grade"         validate:"required,max=20"`
	CourseID     *uuid.UUID `json:"course_id"     validate:"omitempty"`
	ContactEmail *string    `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string    `json:"contact_phone" validate:"omitempty,max=30"`
	Institution  string     `json:"institution"   validate:"required,max=150"`
}

type UpdateStudentRequest struct {
	Grade        helper.UpdateField[string]    `json:"grade"`
	CourseID     helper.UpdateField[uuid.UUID] `json:"course_id"`
	ContactEmail helper.UpdateField[string]    `json:"contact_email"`
	ContactPhone helper.UpdateField[string]    `json:"contact_phone"`
	Institution  helper.UpdateField[string]    `json:"institution"`
}

func (r *UpdateStudentRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Grade.ShouldUpdate() && !r.Grade.IsNull() {
		updates["student_grade"] = r.Grade.Val()
	}
	if r.CourseID.ShouldUpdate() {
		if r.CourseID.IsNull() {
			updates["student_course_id"] = nil
		} else {
			updates["student_course_id"] = r.CourseID.Val()
		}
	}
	if r.ContactEmail.ShouldUpdate() {
		if r.ContactEmail.IsNull() {
			updates["student_contact_email"] = nil
		} else {
			updates["student_contact_email"] = r.ContactEmail.Val()
		}
	}
	if r.ContactPhone.ShouldUpdate() {
		if r.ContactPhone.IsNull() {
			updates["student_contact_phone"] = nil
		} else {
			updates["student_contact_phone"] = r.ContactPhone.Val()
		}
	}
	if r.Institution.ShouldUpdate() && !r.Institution.IsNull() {
		updates["student_institution"] = r.Institution.Val()
	}
	return updates
}

// AssignStudentRequest vincula un estudiante a un docente por año académico.
type AssignStudentRequest struct {
	StudentID    uuid.UUID `json:"student_id"    validate:"required"`
	AcademicYear string    `json:"academic_year" validate:"required,len=9"`
}

// StudentWithUser es la proyección estudiante + datos del usuario.
type StudentWithUser struct {
	StudentID           uuid.UUID  `json:"student_id"`
	StudentUserID       uuid.UUID  `json:"student_user_id"`
	StudentGrade        string     `json:"student_grade"`
	StudentCourseID     *uuid.UUID `json:"student_course_id,omitempty"`
	StudentInstitution  string     `json:"student_institution"`
	StudentContactEmail *string    `json:"student_contact_email,omitempty"`
	StudentContactPhone *string    `json:"student_contact_phone,omitempty"`
	UserName            string     `json:"user_name"`
	UserEmail           string     `json:"user_email"`
	UserIsActive        bool       `json:"user_is_active"`
}
