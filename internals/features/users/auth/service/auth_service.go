package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusaber_backend/internals/configs"
	"edusaber_backend/internals/constants"
	studentModel "edusaber_backend/internals/features/academics/students/model"
	teacherModel "edusaber_backend/internals/features/academics/teachers/model"
	authRepo "edusaber_backend/internals/features/users/auth/repository"
	userModel "edusaber_backend/internals/features/users/users/model"
	helper "edusaber_backend/internals/helpers"
)

// CreateProfileRow crea la fila de perfil según el rol del usuario nuevo.
func CreateProfileRow(tx *gorm.DB, user *userModel.UserModel, subject, grade string) error {
	switch user.UserRole {
	case constants.RoleDocente:
		return tx.Create(&teacherModel.TeacherModel{
			TeacherUserID:      user.UserID,
			TeacherSubject:     strings.TrimSpace(subject),
			TeacherInstitution: user.UserInstitution,
		}).Error
	case constants.RoleEstudiante:
		return tx.Create(&studentModel.StudentModel{
			StudentUserID:      user.UserID,
			StudentGrade:       strings.TrimSpace(grade),
			StudentInstitution: user.UserInstitution,
		}).Error
	}
	return nil
}

/* ==========================
   REGISTER
========================== */

type registerInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	Institution string `json:"institution"`
	Subject     string `json:"subject"` // docente
	Grade       string `json:"grade"`   // estudiante
}

// Register crea una cuenta de estudiante o docente. Los roles administrativos
// solo se crean desde el panel de administración.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	if input.Role == "" {
		input.Role = constants.RoleEstudiante
	}

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Nombre, correo y contraseña son obligatorios")
	}
	if len(input.Password) < 8 {
		return helper.Error(c, fiber.StatusBadRequest, "La contraseña debe tener al menos 8 caracteres")
	}
	if input.Role != constants.RoleEstudiante && input.Role != constants.RoleDocente {
		return helper.Error(c, fiber.StatusBadRequest, "Rol no permitido en el registro público")
	}

	passwordHash, err := HashPassword(input.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	user := userModel.UserModel{
		UserName:        input.Name,
		UserEmail:       input.Email,
		UserPhone:       strPtr(strings.TrimSpace(input.Phone)),
		UserPassword:    passwordHash,
		UserRole:        input.Role,
		UserInstitution: strings.TrimSpace(input.Institution),
		UserIsActive:    true,
	}
	// El usuario y su perfil (docente o estudiante) nacen juntos; los
	// claims del token dependen de que el perfil exista.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := authRepo.CreateUser(tx, &user); err != nil {
			return err
		}
		return CreateProfileRow(tx, &user, input.Subject, input.Grade)
	})
	if err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.Error(c, fiber.StatusBadRequest, "El correo ya está registrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el usuario")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registro exitoso", fiber.Map{
		"user_id": user.UserID,
	})
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Correo y contraseña son obligatorios")
	}

	user, err := authRepo.FindUserByEmail(db, input.Email)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Correo o contraseña incorrectos")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, constants.MsgCuentaDesactivada)
	}
	if err := CheckPasswordHash(user.UserPassword, input.Password); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Correo o contraseña incorrectos")
	}

	return issueTokens(c, db, user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Token de Google inválido")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo decodificar el token de Google")
	}

	user, err := authRepo.FindUserByEmail(db, claimSet.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar el usuario")
		}
		// Primera vez con Google: cuenta de estudiante con contraseña aleatoria.
		dummy, herr := HashPassword(uuid.NewString())
		if herr != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el usuario de Google")
		}
		newUser := userModel.UserModel{
			UserName:     claimSet.Name,
			UserEmail:    strings.ToLower(claimSet.Email),
			UserPassword: dummy,
			UserRole:     constants.RoleEstudiante,
			UserIsActive: true,
		}
		cerr := db.Transaction(func(tx *gorm.DB) error {
			if err := authRepo.CreateUser(tx, &newUser); err != nil {
				return err
			}
			return CreateProfileRow(tx, &newUser, "", "")
		})
		if cerr != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el usuario de Google")
		}
		user = &newUser
	}

	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, constants.MsgCuentaDesactivada)
	}
	return issueTokens(c, db, user)
}

/* ==========================
   REFRESH
========================== */

// RefreshToken rota el refresh token: valida firma + hash persistido, revoca
// el anterior y emite el par nuevo.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Cookies("refresh_token"))
	if raw == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		raw = strings.TrimSpace(body.RefreshToken)
	}
	if raw == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token no proporcionado")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Método de firma inesperado")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !token.Valid {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token inválido o vencido")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != "refresh" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}

	tokenHash := ComputeRefreshHash(raw, refreshSecret)
	if _, err := authRepo.FindActiveRefreshToken(db, tokenHash); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token revocado o desconocido")
	}
	if err := authRepo.RevokeRefreshToken(db, tokenHash); err != nil {
		log.Printf("[WARN] No se pudo revocar el refresh token: %v", err)
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Usuario no encontrado")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, constants.MsgCuentaDesactivada)
	}

	return issueTokens(c, db, user)
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	accessToken := extractRawAccessToken(c)
	if accessToken != "" {
		if err := authRepo.BlacklistToken(db, accessToken, resolveBlacklistTTL(accessToken)); err != nil {
			log.Printf("[WARN] No se pudo poner el token en lista negra: %v", err)
		}
	}

	if raw := strings.TrimSpace(c.Cookies("refresh_token")); raw != "" {
		if secret, err := getRefreshSecret(); err == nil {
			_ = authRepo.RevokeRefreshToken(db, ComputeRefreshHash(raw, secret))
		}
	}

	clearAuthCookies(c)
	return helper.Success(c, "Sesión cerrada", nil)
}

func extractRawAccessToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

// resolveBlacklistTTL calcula cuánto conservar el token en lista negra:
// hasta su exp real más un margen, o 2 minutos si no se puede leer.
func resolveBlacklistTTL(accessToken string) time.Duration {
	fallback := 2 * time.Minute
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" || accessToken == "" {
		return fallback
	}
	tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return fallback
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return fallback
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return fallback
	}
	until := time.Until(time.Unix(int64(exp), 0))
	if until <= 0 {
		return time.Minute
	}
	return until + time.Minute
}

/* ==========================
   CHANGE PASSWORD
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, constants.MsgNoAutorizado)
	}

	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if len(input.NewPassword) < 8 {
		return helper.Error(c, fiber.StatusBadRequest, "La nueva contraseña debe tener al menos 8 caracteres")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, constants.MsgUsuarioNoEncontrado)
	}
	if err := CheckPasswordHash(user.UserPassword, input.CurrentPassword); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "La contraseña actual no coincide")
	}

	newHash, err := HashPassword(input.NewPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}
	if err := db.Model(user).Update("user_password", newHash).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la contraseña")
	}

	return helper.Success(c, "Contraseña actualizada", nil)
}
