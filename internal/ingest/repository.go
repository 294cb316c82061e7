package ingest

import (
	"context"

	"gorm.io/gorm"

	"github.com/glowdecor/backend/pkg/db/models"
)

// Repository persists inbound Telegram messages.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// SaveMessage inserts a message row and fills in its generated id.
func (r *Repository) SaveMessage(ctx context.Context, msg *models.TelegramMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// HasAuthorizedMessage reports whether the user has a persisted message
// carrying the allow-listed phone. Authorization is re-derived from history on
// every call; nothing is cached.
func (r *Repository) HasAuthorizedMessage(ctx context.Context, telegramUserID int64, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.TelegramMessage{}).
		Where("telegram_user_id = ? AND phone_number = ?", telegramUserID, phone).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkProcessed records the product derived from a message.
func (r *Repository) MarkProcessed(ctx context.Context, messageID, productID int64) error {
	res := r.db.WithContext(ctx).
		Model(&models.TelegramMessage{}).
		Where("id = ?", messageID).
		Updates(map[string]any{"processed": true, "product_id": productID})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
