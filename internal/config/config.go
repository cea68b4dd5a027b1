package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"

	MatchJitterRandom = "random"
	MatchJitterNone   = "none"
)

type Config struct {
	Port              string
	DBUrl             string
	StoreBackend      string
	JWTSecret         string
	AppEnv            string
	EnableDocs        bool
	MatchJitter       string
	StrictTransitions bool
	CORSAllowOrigins  string
	AutoMigrate       bool
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret, exists := os.LookupEnv("JWT_SECRET")
	if !exists || jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DBUrl:             getEnv("DB_URL", ""),
		StoreBackend:      strings.ToLower(strings.TrimSpace(getEnv("STORE_BACKEND", StoreBackendPostgres))),
		JWTSecret:         jwtSecret,
		AppEnv:            normalizeEnv(getEnv("APP_ENV", "production")),
		EnableDocs:        getEnvBool("ENABLE_API_DOCS", false),
		MatchJitter:       strings.ToLower(strings.TrimSpace(getEnv("MATCH_JITTER", MatchJitterRandom))),
		StrictTransitions: getEnvBool("STRICT_STATUS_TRANSITIONS", true),
		CORSAllowOrigins:  getEnv("CORS_ALLOW_ORIGINS", "*"),
		AutoMigrate:       getEnvBool("AUTO_MIGRATE", false),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case StoreBackendPostgres:
		if c.DBUrl == "" {
			return fmt.Errorf("DB_URL is required when STORE_BACKEND is %s", StoreBackendPostgres)
		}
	case StoreBackendMemory:
	default:
		return fmt.Errorf("STORE_BACKEND must be %s or %s, got %q", StoreBackendPostgres, StoreBackendMemory, c.StoreBackend)
	}

	switch c.MatchJitter {
	case MatchJitterRandom, MatchJitterNone:
	default:
		return fmt.Errorf("MATCH_JITTER must be %s or %s, got %q", MatchJitterRandom, MatchJitterNone, c.MatchJitter)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func (c *Config) DocsEnabled() bool {
	return c != nil && c.EnableDocs && c.AppEnv == "development"
}
