package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusaber_backend/internals/configs"
	authModel "edusaber_backend/internals/features/users/auth/model"
	authRepo "edusaber_backend/internals/features/users/auth/repository"
	userModel "edusaber_backend/internals/features/users/users/model"
	"edusaber_backend/internals/constants"
	helper "edusaber_backend/internals/helpers"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET no está configurado")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET no está configurado")
	}
	return secret, nil
}

// ComputeRefreshHash es el HMAC-SHA256 en hex con el que se persiste el
// refresh token (nunca se guarda en claro).
func ComputeRefreshHash(token, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return hex.EncodeToString(m.Sum(nil))
}

// ProfileRefs son los ids de perfil que viajan en los claims según el rol.
type ProfileRefs struct {
	TeacherID *uuid.UUID
	StudentID *uuid.UUID
}

func lookupProfileRefs(db *gorm.DB, user *userModel.UserModel) ProfileRefs {
	var refs ProfileRefs
	switch user.UserRole {
	case constants.RoleDocente, constants.RoleAdministrador, constants.RoleSuperAdministrador:
		var id uuid.UUID
		if err := db.Table("teachers").
			Select("teacher_id").
			Where("teacher_user_id = ? AND teacher_deleted_at IS NULL", user.UserID).
			Limit(1).
			Scan(&id).Error; err == nil && id != uuid.Nil {
			refs.TeacherID = &id
		}
	case constants.RoleEstudiante:
		var id uuid.UUID
		if err := db.Table("students").
			Select("student_id").
			Where("student_user_id = ? AND student_deleted_at IS NULL", user.UserID).
			Limit(1).
			Scan(&id).Error; err == nil && id != uuid.Nil {
			refs.StudentID = &id
		}
	}
	return refs
}

// BuildAccessClaims arma los claims del access token.
func BuildAccessClaims(user *userModel.UserModel, refs ProfileRefs, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"typ":              "access",
		"sub":              user.UserID.String(),
		"id":               user.UserID.String(),
		"user_name":        user.UserName,
		"user_role":        user.UserRole,
		"user_institution": user.UserInstitution,
		"iat":              now.Unix(),
		"exp":              now.Add(accessTTLDefault).Unix(),
	}
	if refs.TeacherID != nil {
		claims["teacher_id"] = refs.TeacherID.String()
	}
	if refs.StudentID != nil {
		claims["student_id"] = refs.StudentID.String()
	}
	return claims
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"id":  userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

// issueTokens firma access + refresh, persiste el hash del refresh y deja
// ambos en cookies HTTPOnly. Devuelve la respuesta de login estándar.
func issueTokens(c *fiber.Ctx, db *gorm.DB, user *userModel.UserModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()
	refs := lookupProfileRefs(db, user)

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, BuildAccessClaims(user, refs, now)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo generar el access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.UserID, now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo generar el refresh token")
	}

	ua, ip := c.Get("User-Agent"), c.IP()
	rt := authModel.RefreshTokenModel{
		RefreshTokenUserID:    user.UserID,
		RefreshTokenToken:     ComputeRefreshHash(refreshToken, refreshSecret),
		RefreshTokenExpiresAt: now.Add(refreshTTLDefault),
		RefreshTokenUserAgent: strPtr(ua),
		RefreshTokenIP:        strPtr(ip),
	}
	if err := authRepo.CreateRefreshToken(db, &rt); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo guardar el refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	resp := fiber.Map{
		"user": fiber.Map{
			"user_id":          user.UserID,
			"user_name":        user.UserName,
			"user_email":       user.UserEmail,
			"user_role":        user.UserRole,
			"user_institution": user.UserInstitution,
		},
		"access_token": accessToken,
	}
	if refs.TeacherID != nil {
		resp["teacher_id"] = refs.TeacherID
	}
	if refs.StudentID != nil {
		resp["student_id"] = refs.StudentID
	}
	return helper.Success(c, "Inicio de sesión exitoso", resp)
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
