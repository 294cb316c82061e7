package ingest

import (
	"context"
	"fmt"
	"strings"

	tgmodels "github.com/go-telegram/bot/models"
	"gorm.io/gorm"

	"github.com/glowdecor/backend/internal/products"
	"github.com/glowdecor/backend/pkg/db"
	"github.com/glowdecor/backend/pkg/db/models"
	pkgerrors "github.com/glowdecor/backend/pkg/errors"
	"github.com/glowdecor/backend/pkg/logger"
)

// PlaceholderImageURL backs products derived from messages without a file.
const PlaceholderImageURL = "https://placehold.co/400x300"

// Reply texts sent back into the chat. The feedback channel is the chat
// itself; the webhook HTTP status never carries outcomes.
const (
	replyAccessGranted = "✅ <b>Доступ разрешен!</b>\n\nТеперь вы можете публиковать товары.\n\n" +
		"<b>Как добавить товар:</b>\n" +
		"1. Отправьте фото товара\n" +
		"2. В описании укажите:\n" +
		"   • Название (первая строка)\n" +
		"   • Цена: 15000\n" +
		"   • Категория: интерьер/ландшафт\n" +
		"   • Описание товара"
	replyAccessDenied = "❌ <b>Доступ запрещен</b>\n\nВаш номер телефона не авторизован."
	replyShareContact = "❌ <b>Доступ запрещен</b>\n\nОтправьте ваш контакт для авторизации.\nРазрешенный номер: %s"
	replyMessageSaved = "📝 <b>Сообщение сохранено</b>\n\nЧтобы создать товар, отправьте фото с описанием."
	replyProductAdded = "✅ <b>Товар добавлен!</b>\n\nID: %d\nНазвание: %s\n\nТовар опубликован на сайте."
)

// Messenger is the Telegram API surface the ingestion flow uses.
type Messenger interface {
	SendHTML(ctx context.Context, chatID int64, text string) error
	FileURL(fileID string) string
}

// Service turns inbound webhook updates into persisted messages and, for
// photo/video messages from the allow-listed operator, into product listings.
type Service interface {
	HandleUpdate(ctx context.Context, update *tgmodels.Update) error
}

type service struct {
	conn         *gorm.DB
	messages     *Repository
	products     *products.Repository
	tg           Messenger
	allowedPhone string
	logg         *logger.Logger
}

func NewService(conn *gorm.DB, tg Messenger, allowedPhone string, logg *logger.Logger) Service {
	return &service{
		conn:         conn,
		messages:     NewRepository(conn),
		products:     products.NewRepository(conn),
		tg:           tg,
		allowedPhone: allowedPhone,
		logg:         logg,
	}
}

func (s *service) HandleUpdate(ctx context.Context, update *tgmodels.Update) error {
	if update == nil || update.Message == nil || update.Message.From == nil {
		return nil
	}

	msg := update.Message
	chatID := msg.Chat.ID
	userID := msg.From.ID

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"telegram_user_id": userID,
			"chat_id":          chatID,
		})
	}

	if msg.Contact != nil {
		return s.handleContact(ctx, chatID, userID, msg.Contact.PhoneNumber)
	}

	authorized, err := s.messages.HasAuthorizedMessage(ctx, userID, s.allowedPhone)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking authorization")
	}
	if !authorized {
		return s.tg.SendHTML(ctx, chatID, fmt.Sprintf(replyShareContact, s.allowedPhone))
	}

	return s.handleAuthorizedMessage(ctx, chatID, userID, msg)
}

// handleContact persists the contact share unconditionally; that persisted
// row is what later authorization lookups match against.
func (s *service) handleContact(ctx context.Context, chatID, userID int64, phone string) error {
	if !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}

	// Matching contacts are stored under the canonical allow-listed number so
	// the equality lookup in HasAuthorizedMessage finds them regardless of how
	// the client formatted the share.
	granted := normalizePhone(phone) == normalizePhone(s.allowedPhone)
	if granted {
		phone = s.allowedPhone
	}

	row := models.TelegramMessage{
		TelegramUserID: userID,
		PhoneNumber:    &phone,
		MessageType:    models.MessageTypeText,
		MessageText:    "Shared contact",
	}
	if err := s.messages.SaveMessage(ctx, &row); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving contact message")
	}

	if granted {
		return s.tg.SendHTML(ctx, chatID, replyAccessGranted)
	}
	return s.tg.SendHTML(ctx, chatID, replyAccessDenied)
}

func (s *service) handleAuthorizedMessage(ctx context.Context, chatID, userID int64, msg *tgmodels.Message) error {
	text := msg.Text
	if text == "" {
		text = msg.Caption
	}

	row := models.TelegramMessage{
		TelegramUserID: userID,
		PhoneNumber:    &s.allowedPhone,
		MessageType:    models.MessageTypeText,
		MessageText:    text,
	}

	// Type inference by payload presence: photo wins over video over document;
	// anything else stays text. Photos use the largest variant.
	switch {
	case len(msg.Photo) > 0:
		largest := msg.Photo[0]
		for _, p := range msg.Photo[1:] {
			if p.FileSize > largest.FileSize {
				largest = p
			}
		}
		row.MessageType = models.MessageTypePhoto
		s.attachFile(&row, largest.FileID)
	case msg.Video != nil:
		row.MessageType = models.MessageTypeVideo
		s.attachFile(&row, msg.Video.FileID)
	case msg.Document != nil:
		row.MessageType = models.MessageTypeDocument
		s.attachFile(&row, msg.Document.FileID)
	}

	if err := s.messages.SaveMessage(ctx, &row); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving message")
	}

	if row.MessageType != models.MessageTypePhoto && row.MessageType != models.MessageTypeVideo {
		return s.tg.SendHTML(ctx, chatID, replyMessageSaved)
	}

	productID, err := s.deriveProduct(ctx, &row)
	if err != nil {
		return err
	}

	name := DefaultProductName
	if first := strings.TrimSpace(strings.Split(text, "\n")[0]); first != "" {
		name = first
	}
	return s.tg.SendHTML(ctx, chatID, fmt.Sprintf(replyProductAdded, productID, name))
}

func (s *service) attachFile(row *models.TelegramMessage, fileID string) {
	url := s.tg.FileURL(fileID)
	row.FileID = &fileID
	row.FileURL = &url
}

// deriveProduct creates the product and marks the source message processed in
// one transaction. A failure leaves the message unprocessed and no product
// behind.
func (s *service) deriveProduct(ctx context.Context, row *models.TelegramMessage) (int64, error) {
	parsed := ParseCaption(row.MessageText)

	imageURL := PlaceholderImageURL
	if row.FileURL != nil && *row.FileURL != "" {
		imageURL = *row.FileURL
	}

	product := models.Product{
		Name:        parsed.Name,
		Category:    parsed.Category,
		Price:       parsed.Price,
		ImageURL:    imageURL,
		GlowColor:   products.DefaultGlowColor,
		Description: parsed.Description,
	}

	err := db.WithTx(ctx, s.conn, func(tx *gorm.DB) error {
		if err := s.products.WithTx(tx).Create(ctx, &product); err != nil {
			return err
		}
		return s.messages.WithTx(tx).MarkProcessed(ctx, row.ID, product.ID)
	})
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deriving product from message")
	}
	return product.ID, nil
}

// normalizePhone strips the separators Telegram clients insert into shared
// contact numbers.
func normalizePhone(phone string) string {
	phone = strings.ReplaceAll(phone, "-", "")
	return strings.ReplaceAll(phone, " ", "")
}
