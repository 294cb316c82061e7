package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/glowdecor/backend/api/responses"
	pkgerrors "github.com/glowdecor/backend/pkg/errors"
	"github.com/glowdecor/backend/pkg/logger"
)

const adminTokenHeader = "X-Admin-Token"

// AdminToken gates a route group on the static admin secret. An empty
// configured secret fails closed. The comparison is constant-time.
func AdminToken(secret string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid or missing admin token"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
