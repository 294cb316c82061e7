package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/glowdecor/backend/pkg/errors"
)

// ParseQueryID reads a positive integer id from the query string. An absent or
// malformed value is a validation failure with the given message.
func ParseQueryID(r *http.Request, key, missingMsg string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, missingMsg)
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, missingMsg)
	}
	return value, nil
}
