package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StrategyUniform  = "uniform"
	StrategyWeighted = "weighted"
)

type Config struct {
	Port string
	Env  string

	Storage StorageConfig

	CatalogPath string
	Identify    IdentifyConfig

	LogLevel       string
	LogFormat      string
	MetricsEnabled bool
}

type StorageConfig struct {
	Driver        string
	DatabaseURL   string
	SQLitePath    string
	CollectionDir string
	CollectionKey string
}

type IdentifyConfig struct {
	Strategy string
	Timeout  time.Duration
	Endpoint string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("IDENTIFY_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		metricsEnabled = true
	}

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		Storage: StorageConfig{
			Driver:        getEnv("STORAGE_DRIVER", "sqlite"),
			DatabaseURL:   getEnv("DATABASE_URL", ""),
			SQLitePath:    getEnv("SQLITE_PATH", "data/critterdex.db"),
			CollectionDir: getEnv("COLLECTION_DIR", "data"),
			CollectionKey: getEnv("COLLECTION_KEY", "animal-pokedex-collection"),
		},

		CatalogPath: getEnv("CATALOG_PATH", ""),
		Identify: IdentifyConfig{
			Strategy: getEnv("IDENTIFY_STRATEGY", StrategyUniform),
			Timeout:  timeout,
			Endpoint: getEnv("IDENTIFY_ENDPOINT", ""),
		},

		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		MetricsEnabled: metricsEnabled,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "postgres":
		if c.Storage.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres storage driver")
		}
	case "sqlite":
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite storage driver")
		}
	case "file":
		if c.Storage.CollectionDir == "" {
			return fmt.Errorf("COLLECTION_DIR is required for the file storage driver")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.Storage.CollectionKey == "" {
		return fmt.Errorf("COLLECTION_KEY must not be empty")
	}

	switch c.Identify.Strategy {
	case StrategyUniform, StrategyWeighted:
	default:
		return fmt.Errorf("unknown IDENTIFY_STRATEGY %q", c.Identify.Strategy)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
