package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	insecureSecretPlaceholder = "change_me_in_production"
	minSecretKeyLength        = 32
)

var (
	ErrSecretKeyMissing  = errors.New("SECRET_KEY is required")
	ErrSecretKeyInsecure = errors.New("SECRET_KEY uses the insecure placeholder")
	ErrSecretKeyTooShort = fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	ErrInvalidPort       = errors.New("PORT must be between 1 and 65535")
)

type Config struct {
	Port            int    `env:"PORT" envDefault:"8080"`
	DBPath          string `env:"DB_PATH" envDefault:"data/clinicmatch.db"`
	SecretKey       string `env:"SECRET_KEY"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	Timezone        string `env:"TZ" envDefault:"UTC"`
	CookieSecure    bool   `env:"COOKIE_SECURE" envDefault:"false"`
	TemplatesDir    string `env:"TEMPLATES_DIR" envDefault:"internal/templates"`
	LocalesDir      string `env:"LOCALES_DIR" envDefault:"internal/i18n/locales"`
	StaticDir       string `env:"STATIC_DIR" envDefault:"web/static"`
}

// Load reads the process environment. Secrets are validated separately by
// Validate so tests can build a Config without one.
func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.SecretKey = strings.TrimSpace(cfg.SecretKey)
	cfg.DefaultLanguage = strings.ToLower(strings.TrimSpace(cfg.DefaultLanguage))
	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return ErrInvalidPort
	}
	switch {
	case cfg.SecretKey == "":
		return ErrSecretKeyMissing
	case cfg.SecretKey == insecureSecretPlaceholder:
		return ErrSecretKeyInsecure
	case len(cfg.SecretKey) < minSecretKeyLength:
		return ErrSecretKeyTooShort
	}
	return nil
}

func (cfg Config) ListenAddress() string {
	return fmt.Sprintf(":%d", cfg.Port)
}

func (cfg Config) Location() (*time.Location, error) {
	location, err := time.LoadLocation(strings.TrimSpace(cfg.Timezone))
	if err != nil {
		return time.UTC, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	return location, nil
}
