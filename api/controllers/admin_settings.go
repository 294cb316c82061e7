package controllers

import (
	"net/http"

	"github.com/glowdecor/backend/api/responses"
	"github.com/glowdecor/backend/api/validators"
	settingsvc "github.com/glowdecor/backend/internal/settings"
	"github.com/glowdecor/backend/pkg/logger"
)

type settingsResponse struct {
	Success  bool           `json:"success"`
	Settings map[string]any `json:"settings,omitempty"`
	Message  string         `json:"message,omitempty"`
}

// GetSettings returns the full settings snapshot.
func GetSettings(svc settingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := svc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, settingsResponse{Success: true, Settings: values})
	}
}

type saveSettingsRequest struct {
	Settings map[string]any `json:"settings"`
}

// SaveSettings upserts the provided settings map atomically.
func SaveSettings(svc settingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload saveSettingsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Save(r.Context(), payload.Settings); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, settingsResponse{Success: true, Message: "Settings saved"})
	}
}
