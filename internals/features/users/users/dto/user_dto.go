package dto

import (
	helper "edusaber_backend/internals/helpers"
)

type CreateUserRequest struct {
	Name        string  `json:"name"        validate:"required,min=2,max=100"`
	Email       string  `json:"email"       validate:"required,email"`
	Phone       *string `json:"phone"       validate:"omitempty,max=30"`
	Password    string  `json:"password"    validate:"required,min=8"`
	Role        string  `json:"role"        validate:"required,oneof=estudiante docente administrador super_administrador"`
	Institution string  `json:"institution" validate:"required,max=150"`
}

type UpdateUserRequest struct {
	Name        helper.UpdateField[string] `json:"name"`
	Email       helper.UpdateField[string] `json:"email"`
	Phone       helper.UpdateField[string] `json:"phone"`
	Role        helper.UpdateField[string] `json:"role"`
	Institution helper.UpdateField[string] `json:"institution"`
	IsActive    helper.UpdateField[bool]   `json:"is_active"`
}

// ToUpdates arma el mapa columna → valor para el UPDATE parcial.
func (r *UpdateUserRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name.ShouldUpdate() && !r.Name.IsNull() {
		updates["user_name"] = r.Name.Val()
	}
	if r.Email.ShouldUpdate() && !r.Email.IsNull() {
		updates["user_email"] = r.Email.Val()
	}
	if r.Phone.ShouldUpdate() {
		if r.Phone.IsNull() {
			updates["user_phone"] = nil
		} else {
			updates["user_phone"] = r.Phone.Val()
		}
	}
	if r.Role.ShouldUpdate() && !r.Role.IsNull() {
		updates["user_role"] = r.Role.Val()
	}
	if r.Institution.ShouldUpdate() && !r.Institution.IsNull() {
		updates["user_institution"] = r.Institution.Val()
	}
	if r.IsActive.ShouldUpdate() && !r.IsActive.IsNull() {
		updates["user_is_active"] = r.IsActive.Val()
	}
	return updates
}
