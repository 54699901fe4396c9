package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/Simplici0/kalkulator/internal/catalog"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env      string `env:"ENV" env-default:"local" env-description:"local, dev or prod"`
	DBPath   string `env:"DB_PATH" env-default:"./kalkulator.db"`
	ErrorLog string `env:"ERROR_LOG" env-description:"optional file receiving error level logs"`
	HTTPServer

	SelectionCascade string `env:"SELECTION_CASCADE" env-default:"clear" env-description:"clear or keep"`
	ProductMatch     string `env:"PRODUCT_MATCH" env-default:"unique" env-description:"unique or first"`
	SeedCatalog      bool   `env:"SEED_CATALOG" env-default:"true"`
}

type HTTPServer struct {
	Address     string        `env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	CORSOrigins []string      `env:"CORS_ORIGINS" env-separator:","`
}

// Load reads envFile (if present) into the process environment and returns a
// populated Config. Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	// Best-effort: the file is a local dev convenience, production injects env.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	switch cfg.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return Config{}, fmt.Errorf("ENV: unknown environment %q", cfg.Env)
	}
	if _, err := cfg.Cascade(); err != nil {
		return Config{}, fmt.Errorf("SELECTION_CASCADE: %w", err)
	}
	if _, err := cfg.Match(); err != nil {
		return Config{}, fmt.Errorf("PRODUCT_MATCH: %w", err)
	}

	return cfg, nil
}

// IsDev reports whether the app runs outside production.
func (c Config) IsDev() bool {
	return c.Env != EnvProd
}

// Cascade returns the configured downstream clearing policy.
func (c Config) Cascade() (catalog.CascadePolicy, error) {
	return catalog.ParseCascadePolicy(c.SelectionCascade)
}

// Match returns the configured product resolution policy.
func (c Config) Match() (catalog.MatchPolicy, error) {
	return catalog.ParseMatchPolicy(c.ProductMatch)
}

// Usage describes every supported environment variable.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
