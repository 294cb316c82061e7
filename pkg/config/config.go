package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Admin    AdminConfig
	Telegram TelegramConfig
	Media    MediaConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Telegram.AllowedPhone = strings.TrimSpace(cfg.Telegram.AllowedPhone)
	return &cfg, nil
}

type AppConfig struct {
	Env      string `envconfig:"APP_ENV" default:"dev"`
	Port     string `envconfig:"APP_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, "dev")
}

type DBConfig struct {
	DSN             string        `envconfig:"DATABASE_URL" required:"true"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"DB_CONN_MAX_IDLE_TIME" default:"10m"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type AdminConfig struct {
	Token string `envconfig:"ADMIN_TOKEN" required:"true"`
}

type TelegramConfig struct {
	BotToken     string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	AllowedPhone string `envconfig:"TELEGRAM_ALLOWED_PHONE" required:"true"`
}

type MediaConfig struct {
	Endpoint      string `envconfig:"MEDIA_ENDPOINT" required:"true"`
	AccessKey     string `envconfig:"MEDIA_ACCESS_KEY" required:"true"`
	SecretKey     string `envconfig:"MEDIA_SECRET_KEY" required:"true"`
	Bucket        string `envconfig:"MEDIA_BUCKET" default:"files"`
	PublicBaseURL string `envconfig:"MEDIA_PUBLIC_BASE_URL" required:"true"`
	UseSSL        bool   `envconfig:"MEDIA_USE_SSL" default:"true"`
}
