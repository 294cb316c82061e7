package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS applies the wide-open policy the storefront and admin SPA rely on.
// Method lists vary per route group, mirroring the per-handler preflight sets.
func CORS(methods ...string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: append(methods, http.MethodOptions),
		AllowedHeaders: []string{"Content-Type", "X-Admin-Token"},
		MaxAge:         86400,
	}).Handler
}
