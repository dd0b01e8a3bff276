package config

import (
	"os"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Server
	Port           string
	AllowedOrigins string

	// Deployment environment; "production" enables strict identity checks
	// on write routes.
	Env string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "user_service_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		Port:           getEnv("PORT", "3002"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),

		Env: getEnv("APP_ENV", "development"),
	}
}

// StrictIdentity reports whether write routes must reject requests that
// arrive without an asserted caller identity.
func (c *Config) StrictIdentity() bool {
	return c.Env == "production"
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
