package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/glowdecor/backend/pkg/errors"
	"github.com/glowdecor/backend/pkg/logger"
)

// ErrorBody matches the wire shape the admin frontend already consumes.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}

// WriteError maps a typed error to its HTTP status and body. Unexpected errors
// become 500s with the raw message in the body; this API backs an internal
// admin tool, so the message is surfaced as-is.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	var body ErrorBody
	switch typed.Code() {
	case pkgerrors.CodeUnauthorized:
		body = ErrorBody{Error: "Unauthorized", Message: typed.Message()}
	case pkgerrors.CodeValidation, pkgerrors.CodeNotFound:
		body = ErrorBody{Error: typed.Message()}
	default:
		// 5xx bodies carry the raw underlying message, without the code or
		// wrap-context prefixes.
		msg := typed.Message()
		if cause := typed.Unwrap(); cause != nil {
			msg = cause.Error()
		}
		body = ErrorBody{Error: msg}
	}

	if logg != nil && meta.HTTPStatus >= http.StatusInternalServerError {
		ctx = logg.WithFields(ctx, map[string]any{"error_code": string(typed.Code())})
		logg.Error(ctx, "request.error", err)
	}

	WriteJSON(w, meta.HTTPStatus, body)
}
