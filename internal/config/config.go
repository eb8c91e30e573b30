package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv  string `envconfig:"APP_ENV" default:"development"`
	AppPort string `envconfig:"APP_PORT" default:"8080"`

	// CORSOrigin is the dashboard origin allowed to call the API.
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"http://localhost:3000"`

	// DBURL selects the Postgres product source. Empty means the seeded
	// in-memory catalogue.
	DBURL string `envconfig:"DB_URL"`

	// RedisAddr selects the Redis session store. Empty falls back to SessionFile.
	RedisAddr   string `envconfig:"REDIS_ADDR"`
	SessionFile string `envconfig:"SESSION_FILE" default:".stockview_user.json"`
	SessionKey  string `envconfig:"SESSION_KEY" default:"stockview_user"`

	JWTSecret         string `envconfig:"JWT_SECRET" default:"stockview-dev-secret"`
	InternalSecretKey string `envconfig:"INTERNAL_SECRET_KEY"`

	PageSize  int           `envconfig:"PAGE_SIZE" default:"5"`
	MockDelay time.Duration `envconfig:"MOCK_DELAY" default:"1s"`
	MockFail  bool          `envconfig:"MOCK_FAIL" default:"false"`
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.PageSize <= 0 {
		return nil, errors.New("PAGE_SIZE must be positive")
	}
	if cfg.MockDelay < 0 {
		return nil, errors.New("MOCK_DELAY cannot be negative")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be provided")
	}

	return &cfg, nil
}

// IsProduction reports whether the app runs with production logging.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
