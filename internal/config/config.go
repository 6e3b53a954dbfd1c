package config

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env           string
	LogLevel      string
	Addr          string
	StorageType   string
	PostgresDSN   string
	DataDir       string
	SessionSecret string
	SessionTTL    time.Duration
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:           getEnv("APP_ENV", "development"),
			LogLevel:      getEnv("LOG_LEVEL", "info"),
			Addr:          getEnv("HTTP_ADDR", ":8080"),
			StorageType:   getEnv("STORAGE_BACKEND", "file"),
			PostgresDSN:   getEnv("POSTGRES_DSN", ""),
			DataDir:       getEnv("DATA_DIR", "data"),
			SessionSecret: getEnv("SESSION_SECRET", ""),
			SessionTTL:    getDuration("SESSION_TTL", 72*time.Hour),
		}
		if cfg.SessionSecret == "" && cfg.Env == "development" {
			cfg.SessionSecret = "dev-only-secret"
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	if c.StorageType != "postgres" && c.StorageType != "file" {
		return errors.New("STORAGE_BACKEND must be one of: postgres, file")
	}
	if c.StorageType == "postgres" && c.PostgresDSN == "" {
		return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
	}
	if c.StorageType == "file" && c.DataDir == "" {
		return errors.New("File storage requires DATA_DIR to be set")
	}
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required outside development")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
