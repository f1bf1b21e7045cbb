package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string

	// Database. Driver is "mysql" or "sqlite"; sqlite keeps the whole store in
	// a local file so the service runs without an external database.
	DBDriver   string
	MySQLDSN   string
	SQLitePath string

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret string

	// External identity provider (Supabase-compatible auth REST API).
	AuthBaseURL    string
	AuthServiceKey string

	// Public base URL of the application, used for OAuth redirects.
	AppURL string

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/alphabet?charset=utf8mb4&parseTime=True&loc=Local"),
		SQLitePath:     getEnv("SQLITE_PATH", "alphabet.db"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      getEnv("JWT_SECRET", "change-me"),
		AuthBaseURL:    os.Getenv("AUTH_BASE_URL"),
		AuthServiceKey: os.Getenv("AUTH_SERVICE_KEY"),
		AppURL:         getEnv("APP_URL", "http://localhost:3000"),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
	}
}

// ProviderConfigured reports whether the external identity provider can be used.
func (c *Config) ProviderConfigured() bool {
	return c.AuthBaseURL != "" && c.AuthServiceKey != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
