package models

import "time"

// Telegram message types as persisted in message_type.
const (
	MessageTypeText     = "text"
	MessageTypePhoto    = "photo"
	MessageTypeVideo    = "video"
	MessageTypeDocument = "document"
)

// TelegramMessage is an inbound webhook message. Processed and ProductID are
// set only when a product is derived from the message.
type TelegramMessage struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	TelegramUserID int64     `gorm:"column:telegram_user_id;not null"`
	PhoneNumber    *string   `gorm:"column:phone_number"`
	MessageType    string    `gorm:"column:message_type;not null"`
	MessageText    string    `gorm:"column:message_text;not null;default:''"`
	FileURL        *string   `gorm:"column:file_url"`
	FileID         *string   `gorm:"column:file_id"`
	Processed      bool      `gorm:"column:processed;not null;default:false"`
	ProductID      *int64    `gorm:"column:product_id"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (TelegramMessage) TableName() string { return "telegram_messages" }
