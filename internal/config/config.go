package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Housing Support"`
		Port int    `envconfig:"PORT" default:"8080"`
		// EditWindowDays is how long after month end a month stays open.
		EditWindowDays int `envconfig:"EDIT_WINDOW_DAYS" default:"30"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"housingsupport"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		// AllowedOrigins is a comma separated CORS list.
		AllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}

	Auth struct {
		JWTSecret string        `envconfig:"AUTH_JWT_SECRET"`
		TokenTTL  time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"24h"`
	}

	AMQP struct {
		// URL empty disables publishing month changes.
		URL      string `envconfig:"AMQP_URL"`
		Exchange string `envconfig:"AMQP_EXCHANGE" default:"housingsupport"`
		Queue    string `envconfig:"AMQP_QUEUE" default:"poolfund_refresh"`
	}

	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"text"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

func (c *Config) EditWindow() time.Duration {
	return time.Duration(c.App.EditWindowDays) * 24 * time.Hour
}

func (c *Config) Origins() []string {
	var out []string

	for _, o := range strings.Split(c.Server.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}

	return out
}

func (c *Config) EventsEnabled() bool {
	return c.AMQP.URL != ""
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.App.Port))
	}

	if c.App.EditWindowDays <= 0 {
		errs = append(errs, fmt.Errorf("EDIT_WINDOW_DAYS must be positive, got %d", c.App.EditWindowDays))
	}

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, errors.New("AUTH_JWT_SECRET must be at least 32 characters"))
	}

	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("AUTH_TOKEN_TTL must be positive"))
	}

	if c.DB.Name == "" {
		errs = append(errs, errors.New("DB_NAME is required"))
	}

	if c.EventsEnabled() && c.AMQP.Queue == "" {
		errs = append(errs, errors.New("AMQP_QUEUE is required when AMQP_URL is set"))
	}

	return errors.Join(errs...)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
