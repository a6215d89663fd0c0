package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DatabaseHost     string `envconfig:"DB_HOST" required:"true"`
	DatabasePort     string `envconfig:"DB_PORT" default:"5432"`
	DatabaseUser     string `envconfig:"DB_USER" required:"true"`
	DatabasePassword string `envconfig:"DB_PASSWORD" required:"true"`
	DatabaseName     string `envconfig:"DB_NAME" required:"true"`
	DatabaseSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	MigrationsPath   string `envconfig:"MIGRATIONS_PATH" default:"file://migrations"`

	RedisURL      string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	NotifyChannel string `envconfig:"NOTIFY_CHANNEL" default:"itesa-notifications"`

	AdminEmail        string        `envconfig:"ADMIN_EMAIL" required:"true"`
	AdminPasswordHash string        `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
	JWTSecret         string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL            time.Duration `envconfig:"JWT_TTL" default:"12h"`

	SessionTTL      time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	EventDuration   time.Duration `envconfig:"EVENT_DURATION" default:"3h"`
	EventTimezone   string        `envconfig:"EVENT_TIMEZONE" default:"UTC"`
	SiteContentPath string        `envconfig:"SITE_CONTENT_PATH" default:"config/site.yaml"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load загружает конфигурацию из .env (если есть) и переменных окружения
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.EventDuration <= 0 {
		return fmt.Errorf("EVENT_DURATION must be positive, got %s", c.EventDuration)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.JWTTTL)
	}
	if _, err := time.LoadLocation(c.EventTimezone); err != nil {
		return fmt.Errorf("invalid EVENT_TIMEZONE %q: %w", c.EventTimezone, err)
	}
	return nil
}

// EventLocation возвращает часовой пояс, в котором вводятся даты мероприятий
func (c *Config) EventLocation() *time.Location {
	loc, err := time.LoadLocation(c.EventTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GetDSN возвращает строку подключения к базе данных
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}
