package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusaber_backend/internals/constants"
	"edusaber_backend/internals/features/users/users/dto"
	"edusaber_backend/internals/features/users/users/model"
	authService "edusaber_backend/internals/features/users/auth/service"
	helper "edusaber_backend/internals/helpers"
	helperAuth "edusaber_backend/internals/helpers/auth"
	"edusaber_backend/internals/helpers/storage"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validator: validator.New()}
}

// GET /a/users?role=&q=&page=&per_page=
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(user_email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron contar los usuarios")
	}

	var users []model.UserModel
	if err := q.Order("user_created_at DESC").
		Offset(p.Offset).Limit(p.PerPage).
		Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron listar los usuarios")
	}

	return helper.Success(c, "Usuarios obtenidos", fiber.Map{
		"users":      users,
		"pagination": helper.BuildPagination(total, len(users), p),
	})
}

// GET /a/users/:id
func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de usuario inválido")
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, constants.MsgUsuarioNoEncontrado)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar el usuario")
	}
	return helper.Success(c, "Usuario obtenido", user)
}

// POST /a/users
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Solo el super administrador puede crear otros super administradores.
	if req.Role == constants.RoleSuperAdministrador &&
		!helperAuth.HasRole(c, constants.RoleSuperAdministrador) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorSuperAdmin("la creación de super administradores"))
	}

	passwordHash, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	user := model.UserModel{
		UserName:        strings.TrimSpace(req.Name),
		UserEmail:       strings.ToLower(strings.TrimSpace(req.Email)),
		UserPhone:       helper.TrimPtr(req.Phone),
		UserPassword:    passwordHash,
		UserRole:        req.Role,
		UserInstitution: strings.TrimSpace(req.Institution),
		UserIsActive:    true,
	}
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return authService.CreateProfileRow(tx, &user, "", "")
	})
	if err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.Error(c, fiber.StatusBadRequest, "El correo ya está registrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el usuario")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Usuario creado", user)
}

// PATCH /a/users/:id
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de usuario inválido")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nada que actualizar")
	}

	if role, ok := updates["user_role"].(string); ok {
		if role == constants.RoleSuperAdministrador &&
			!helperAuth.HasRole(c, constants.RoleSuperAdministrador) {
			return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorSuperAdmin("la asignación de ese rol"))
		}
	}

	res := ctrl.DB.Model(&model.UserModel{}).Where("user_id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el usuario")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, constants.MsgUsuarioNoEncontrado)
	}
	return helper.Success(c, "Usuario actualizado", nil)
}

// DELETE /a/users/:id
//
// Un super administrador no puede borrar su propia cuenta; el rechazo es del
// servidor, no solo del botón deshabilitado en el panel.
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de usuario inválido")
	}

	requesterID, err := helperAuth.GetUserIDFromToken(c)
	if err == nil && requesterID == id {
		return helper.Error(c, fiber.StatusForbidden, "No puedes eliminar tu propia cuenta")
	}

	res := ctrl.DB.Where("user_id = ?", id).Delete(&model.UserModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el usuario")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, constants.MsgUsuarioNoEncontrado)
	}
	return helper.Success(c, "Usuario eliminado", nil)
}

// GET /u/users/me
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, constants.MsgUsuarioNoEncontrado)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar el usuario")
	}
	return helper.Success(c, "Perfil obtenido", user)
}

// POST /u/users/me/photo  (multipart: file)
func (ctrl *UserController) UploadProfilePhoto(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Archivo 'file' no proporcionado")
	}

	client, err := storage.NewClientFromEnv()
	if err != nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Almacenamiento de archivos no disponible")
	}
	url, err := client.UploadImageAsWebP("profile-photos", fh)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_photo_url", url).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo guardar la foto de perfil")
	}
	return helper.Success(c, "Foto de perfil actualizada", fiber.Map{"photo_url": url})
}
