package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/glowdecor/backend/api/routes"
	"github.com/glowdecor/backend/internal/ingest"
	"github.com/glowdecor/backend/internal/media"
	"github.com/glowdecor/backend/internal/products"
	"github.com/glowdecor/backend/internal/settings"
	"github.com/glowdecor/backend/pkg/config"
	"github.com/glowdecor/backend/pkg/db"
	"github.com/glowdecor/backend/pkg/logger"
	"github.com/glowdecor/backend/pkg/migrate"
	miniostore "github.com/glowdecor/backend/pkg/storage/minio"
	"github.com/glowdecor/backend/pkg/telegram"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	mediaStore, err := miniostore.New(context.Background(), cfg.Media, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap media storage", err)
		os.Exit(1)
	}

	tgClient, err := telegram.New(cfg.Telegram)
	if err != nil {
		logg.Error(context.Background(), "failed to create telegram client", err)
		os.Exit(1)
	}

	deps := routes.Deps{
		Config:     cfg,
		Logger:     logg,
		DB:         dbClient,
		MediaStore: mediaStore,
		Products:   products.NewService(products.NewRepository(dbClient.DB())),
		Settings:   settings.NewService(dbClient.DB()),
		Media:      media.NewService(mediaStore),
		Ingest:     ingest.NewService(dbClient.DB(), tgClient, cfg.Telegram.AllowedPhone, logg),
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(deps),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
