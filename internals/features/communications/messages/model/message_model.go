package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageModel struct {
	MessageID uuid.UUID `gorm:"column:message_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"message_id"`

	MessageSenderID    uuid.UUID `gorm:"column:message_sender_id;type:uuid;not null;index"    json:"message_sender_id"`
	MessageRecipientID uuid.UUID `gorm:"column:message_recipient_id;type:uuid;not null;index" json:"message_recipient_id"`

	MessageSubject string `gorm:"column:message_subject;type:varchar(200);not null" json:"message_subject"`
	MessageBody    string `gorm:"column:message_body;not null"                      json:"message_body"`
	MessageIsRead  bool   `gorm:"column:message_is_read;not null;default:false"     json:"message_is_read"`

	MessageCreatedAt time.Time      `gorm:"column:message_created_at;not null;autoCreateTime" json:"message_created_at"`
	MessageDeletedAt gorm.DeletedAt `gorm:"column:message_deleted_at;index"                   json:"message_deleted_at,omitempty"`
}

func (MessageModel) TableName() string { return "messages" }
