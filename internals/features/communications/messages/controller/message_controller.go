package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusaber_backend/internals/features/communications/messages/model"
	helper "edusaber_backend/internals/helpers"
	helperAuth "edusaber_backend/internals/helpers/auth"
)

type MessageController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{DB: db, Validator: validator.New()}
}

type sendMessageRequest struct {
	RecipientID uuid.UUID `json:"recipient_id" validate:"required"`
	Subject     string    `json:"subject"      validate:"required,min=1,max=200"`
	Body        string    `json:"body"         validate:"required,min=1"`
}

// POST /u/messages
func (ctrl *MessageController) SendMessage(c *fiber.Ctx) error {
	senderID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.RecipientID == senderID {
		return helper.Error(c, fiber.StatusBadRequest, "No puedes enviarte mensajes a ti mismo")
	}

	msg := model.MessageModel{
		MessageSenderID:    senderID,
		MessageRecipientID: req.RecipientID,
		MessageSubject:     strings.TrimSpace(req.Subject),
		MessageBody:        req.Body,
	}
	if err := ctrl.DB.Create(&msg).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo enviar el mensaje")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Mensaje enviado", msg)
}

// GET /u/messages/inbox?unread=true
func (ctrl *MessageController) GetInbox(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.MessageModel{}).
		Where("message_recipient_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("message_is_read = false")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron contar los mensajes")
	}

	var messages []model.MessageModel
	if err := q.Order("message_created_at DESC").
		Offset(p.Offset).Limit(p.PerPage).
		Find(&messages).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar la bandeja de entrada")
	}

	return helper.Success(c, "Bandeja de entrada", fiber.Map{
		"messages":   messages,
		"pagination": helper.BuildPagination(total, len(messages), p),
	})
}

// GET /u/messages/sent
func (ctrl *MessageController) GetSent(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.MessageModel{}).
		Where("message_sender_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron contar los mensajes")
	}

	var messages []model.MessageModel
	if err := q.Order("message_created_at DESC").
		Offset(p.Offset).Limit(p.PerPage).
		Find(&messages).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron consultar los enviados")
	}

	return helper.Success(c, "Mensajes enviados", fiber.Map{
		"messages":   messages,
		"pagination": helper.BuildPagination(total, len(messages), p),
	})
}

// PATCH /u/messages/:id/read — solo el destinatario puede marcar como leído.
func (ctrl *MessageController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de mensaje inválido")
	}

	res := ctrl.DB.Model(&model.MessageModel{}).
		Where("message_id = ? AND message_recipient_id = ?", id, userID).
		Update("message_is_read", true)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo marcar el mensaje")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Mensaje no encontrado")
	}
	return helper.Success(c, "Mensaje marcado como leído", nil)
}

// DELETE /u/messages/:id — el remitente o el destinatario pueden borrarlo.
func (ctrl *MessageController) DeleteMessage(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de mensaje inválido")
	}

	var msg model.MessageModel
	if err := ctrl.DB.Where("message_id = ?", id).First(&msg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Mensaje no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar el mensaje")
	}
	if msg.MessageSenderID != userID && msg.MessageRecipientID != userID {
		return helper.Error(c, fiber.StatusForbidden, "No tienes permiso sobre este mensaje")
	}

	if err := ctrl.DB.Delete(&msg).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el mensaje")
	}
	return helper.Success(c, "Mensaje eliminado", nil)
}
