package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TokenBlacklist struct {
	TokenBlacklistID uuid.UUID `gorm:"column:token_blacklist_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"token_blacklist_id"`

	TokenBlacklistToken     string    `gorm:"column:token_blacklist_token;not null;index" json:"token_blacklist_token"`
	TokenBlacklistExpiredAt time.Time `gorm:"column:token_blacklist_expired_at;not null"  json:"token_blacklist_expired_at"`

	TokenBlacklistCreatedAt time.Time      `gorm:"column:token_blacklist_created_at;not null;autoCreateTime" json:"token_blacklist_created_at"`
	TokenBlacklistDeletedAt gorm.DeletedAt `gorm:"column:token_blacklist_deleted_at;index"                   json:"token_blacklist_deleted_at,omitempty"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }
