package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/glowdecor/backend/api/controllers"
	"github.com/glowdecor/backend/api/controllers/webhooks"
	"github.com/glowdecor/backend/api/middleware"
	"github.com/glowdecor/backend/internal/ingest"
	"github.com/glowdecor/backend/internal/media"
	"github.com/glowdecor/backend/internal/products"
	"github.com/glowdecor/backend/internal/settings"
	"github.com/glowdecor/backend/pkg/config"
	"github.com/glowdecor/backend/pkg/logger"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Config     *config.Config
	Logger     *logger.Logger
	DB         controllers.Pinger
	MediaStore controllers.Pinger
	Products   products.Service
	Settings   settings.Service
	Media      media.Service
	Ingest     ingest.Service
}

// NewRouter assembles the full route tree. CORS is scoped per group so each
// surface only advertises the methods it serves.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer(deps.Logger))
	r.Use(middleware.RequestID(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))
	r.Use(middleware.Metrics())

	r.Get("/health", controllers.Health(deps.DB, deps.MediaStore))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.CORS(http.MethodGet))
			r.Get("/products", controllers.ListProducts(deps.Products, deps.Logger))
			r.Get("/media", controllers.ListMedia(deps.Media, deps.Logger))
		})

		// CORS sits in front of the token check so preflight requests,
		// which carry no admin header, still succeed.
		r.Route("/admin", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.CORS(http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete))
				r.Use(middleware.AdminToken(deps.Config.Admin.Token, deps.Logger))
				r.Post("/products", controllers.CreateProduct(deps.Products, deps.Logger))
				r.Put("/products", controllers.UpdateProduct(deps.Products, deps.Logger))
				r.Delete("/products", controllers.DeleteProduct(deps.Products, deps.Logger))
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.CORS(http.MethodGet, http.MethodPost))
				r.Use(middleware.AdminToken(deps.Config.Admin.Token, deps.Logger))
				r.Get("/settings", controllers.GetSettings(deps.Settings, deps.Logger))
				r.Post("/settings", controllers.SaveSettings(deps.Settings, deps.Logger))
			})
		})

		r.Route("/webhooks/telegram", func(r chi.Router) {
			r.Use(middleware.CORS(http.MethodGet, http.MethodPost))
			r.Get("/", webhooks.TelegramStatus(deps.Config.Telegram.AllowedPhone))
			r.Post("/", webhooks.TelegramWebhook(deps.Ingest, deps.Logger))
		})
	})

	return r
}
