package repository

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "edusaber_backend/internals/features/users/auth/model"
	userModel "edusaber_backend/internals/features/users/users/model"
)

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("LOWER(user_email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// BlacklistToken registra el access token para invalidarlo hasta que expire.
func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	entry := authModel.TokenBlacklist{
		TokenBlacklistToken:     token,
		TokenBlacklistExpiredAt: time.Now().Add(ttl),
	}
	return db.Create(&entry).Error
}

func IsTokenBlacklisted(db *gorm.DB, token string) (bool, error) {
	var count int64
	err := db.Model(&authModel.TokenBlacklist{}).
		Where("token_blacklist_token = ?", token).
		Where("token_blacklist_expired_at > ?", time.Now()).
		Count(&count).Error
	return count > 0, err
}

func CreateRefreshToken(db *gorm.DB, rt *authModel.RefreshTokenModel) error {
	return db.Create(rt).Error
}

// FindActiveRefreshToken busca el hash vigente (no revocado, no vencido).
func FindActiveRefreshToken(db *gorm.DB, tokenHash string) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	err := db.Where("refresh_token_token = ?", tokenHash).
		Where("refresh_token_revoked_at IS NULL").
		Where("refresh_token_expires_at > ?", time.Now()).
		First(&rt).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func RevokeRefreshToken(db *gorm.DB, tokenHash string) error {
	now := time.Now()
	return db.Model(&authModel.RefreshTokenModel{}).
		Where("refresh_token_token = ?", tokenHash).
		Where("refresh_token_revoked_at IS NULL").
		Update("refresh_token_revoked_at", &now).Error
}
