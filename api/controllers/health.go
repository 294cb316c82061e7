package controllers

import (
	"context"
	"net/http"

	"github.com/glowdecor/backend/api/responses"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports liveness plus the state of the database and media storage.
func Health(db, storage Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		code := http.StatusOK

		check := func(p Pinger) string {
			if p == nil {
				return "unconfigured"
			}
			if err := p.Ping(r.Context()); err != nil {
				status = "degraded"
				code = http.StatusServiceUnavailable
				return "unreachable"
			}
			return "ok"
		}

		body := map[string]string{
			"database": check(db),
			"storage":  check(storage),
		}
		body["status"] = status

		responses.WriteJSON(w, code, body)
	}
}
