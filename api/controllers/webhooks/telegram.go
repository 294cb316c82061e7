package webhooks

import (
	"encoding/json"
	"net/http"

	tgmodels "github.com/go-telegram/bot/models"

	"github.com/glowdecor/backend/api/responses"
	"github.com/glowdecor/backend/internal/ingest"
	"github.com/glowdecor/backend/pkg/logger"
)

type statusResponse struct {
	Status       string `json:"status"`
	Bot          string `json:"bot"`
	AllowedPhone string `json:"allowed_phone"`
}

// TelegramStatus is a liveness probe for the webhook endpoint.
func TelegramStatus(allowedPhone string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, statusResponse{
			Status:       "ok",
			Bot:          "Telegram Bot Active",
			AllowedPhone: allowedPhone,
		})
	}
}

// TelegramWebhook receives bot updates. It always answers 200 so Telegram
// never retries a delivered update; failures are logged and reported to the
// operator inside the chat instead.
func TelegramWebhook(svc ingest.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var update tgmodels.Update
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			logg.Warn(logg.WithField(ctx, "error", err.Error()), "telegram.webhook.decode_failed")
			responses.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
			return
		}

		if err := svc.HandleUpdate(ctx, &update); err != nil {
			logg.Error(ctx, "telegram.webhook.handle_failed", err)
		}

		responses.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
