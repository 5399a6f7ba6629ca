package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	Log       Log       `envPrefix:"LOG_"`
	Firestore Firestore `envPrefix:"FIRESTORE_"`
	Admin     Admin     `envPrefix:"ADMIN_"`
	Redis     Redis     ``
	Storage   Storage   `envPrefix:"S3_"`
	Purchase  Purchase  `envPrefix:"PURCHASE_"`
}

type Log struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"console"`
}

type Firestore struct {
	ProjectID       string `env:"PROJECT_ID"`
	CredentialsFile string `env:"CREDENTIALS_FILE"`
}

type Admin struct {
	// PINHash is the argon2id PHC hash of the owner PIN. PIN (plaintext) is a
	// development fallback only.
	PINHash       string        `env:"PIN_HASH"`
	PIN           string        `env:"PIN"`
	MaxAttempts   int           `env:"MAX_ATTEMPTS" envDefault:"10"`
	AttemptWindow time.Duration `env:"ATTEMPT_WINDOW" envDefault:"5m"`
}

type Redis struct {
	// URL like rediss://default:<token>@host:port. Empty disables the
	// login attempt limiter.
	URL string `env:"REDIS_URL"`
}

type Storage struct {
	Endpoint        string `env:"ENDPOINT"`
	Region          string `env:"REGION"`
	Bucket          string `env:"BUCKET"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	PublicBaseURL   string `env:"PUBLIC_BASE_URL"`
}

// Enabled reports whether artifact storage is configured.
func (s Storage) Enabled() bool { return s.Bucket != "" }

type Purchase struct {
	ProcessingDelay time.Duration `env:"PROCESSING_DELAY" envDefault:"2s"`
	SuccessDelay    time.Duration `env:"SUCCESS_DELAY" envDefault:"3s"`
}

// Load reads .env (if present) and the process environment, then fail-fasts
// on configuration the app cannot run without.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Firestore.ProjectID == "" {
		return errors.New("FIRESTORE_PROJECT_ID is required")
	}
	if c.production() && c.Admin.PINHash == "" && c.Admin.PIN != "" {
		return errors.New("ADMIN_PIN (plaintext) is not allowed in production; set ADMIN_PIN_HASH")
	}
	return nil
}

// Warnings returns non-fatal nudges worth logging on startup.
func (c *Config) Warnings() []string {
	var warns []string
	if c.Admin.PINHash == "" && c.Admin.PIN == "" {
		warns = append(warns, "no owner PIN configured; the admin surface will be unreachable")
	}
	if c.Admin.PIN != "" && c.Admin.PINHash == "" {
		warns = append(warns, "ADMIN_PIN is plaintext; derive ADMIN_PIN_HASH for anything beyond local development")
	}
	if c.production() && c.Redis.URL == "" {
		warns = append(warns, "REDIS_URL unset; owner login attempts are not throttled")
	}
	if u := c.Redis.URL; u != "" && strings.HasPrefix(u, "redis://") && c.production() {
		warns = append(warns, "REDIS_URL uses redis:// (no TLS). Prefer rediss:// for TLS")
	}
	return warns
}

func (c *Config) production() bool {
	return strings.EqualFold(c.Env, "production")
}
