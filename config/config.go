// config/config.go
package config

import (
	"log"
	"os"
	"strconv"
)

// Config carries everything the app reads from the environment. It is
// built once in main and passed to handler constructors; nothing else
// reads os.Getenv after startup.
type Config struct {
	Port        string
	JWTSecret   string
	CORSOrigins string

	// Blob storage (avatars, medical certificates)
	UploadDir string
	BaseURL   string

	// Defaults applied to new profiles until they save preferences.
	DefaultLanguage string
	DefaultTheme    string

	BodyLimitMB int
}

// Load reads the environment into a Config. JWT_SECRET is required;
// everything else has a sane default for local development.
func Load() *Config {
	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "http://localhost:3000"),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:3000"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "es"),
		DefaultTheme:    getEnv("DEFAULT_THEME", "light"),
		BodyLimitMB:     getEnvInt("BODY_LIMIT_MB", 8),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable is required")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
