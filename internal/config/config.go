package config

import (
	"os"
	"strings"
)

type Config struct {
	Port        string
	Environment string
	// Database
	DatabaseDriver string // "postgres" or "sqlite"
	DatabaseURL    string
	TablePrefix    string
	// CMS clients
	ClientsFile   string
	DefaultLocale string
	// HTTP
	CORSOrigins string
	JWKSURL     string // empty disables bearer auth
	// Logging
	LogDir string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    env,
		DatabaseDriver: strings.ToLower(getEnv("DATABASE_DRIVER", "sqlite")),
		DatabaseURL:    getEnv("DATABASE_URL", "cms.db"),
		TablePrefix:    getEnv("TABLE_PREFIX", "con_"),
		ClientsFile:    getEnv("CLIENTS_FILE", "clients.yaml"),
		DefaultLocale:  getEnv("DEFAULT_LOCALE", "en"),
		CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:3000"),
		JWKSURL:        getEnv("JWKS_URL", ""),
		LogDir:         getEnv("LOG_DIR", ""),
		// Debug defaults to true outside production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// Origins splits CORSOrigins on commas.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
