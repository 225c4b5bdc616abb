package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`

	UserName        string  `gorm:"column:user_name;type:varchar(100);not null"        json:"user_name"`
	UserEmail       string  `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex" json:"user_email"`
	UserPhone       *string `gorm:"column:user_phone;type:varchar(30)"                 json:"user_phone,omitempty"`
	UserPassword    string  `gorm:"column:user_password;not null"                      json:"-"`
	UserRole        string  `gorm:"column:user_role;type:varchar(30);not null"         json:"user_role"`
	UserInstitution string  `gorm:"column:user_institution;type:varchar(150);not null" json:"user_institution"`
	UserPhotoURL    *string `gorm:"column:user_photo_url"                              json:"user_photo_url,omitempty"`
	UserIsActive    bool    `gorm:"column:user_is_active;not null;default:true"        json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;not null;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index"                   json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
