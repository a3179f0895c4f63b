package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds service configuration.
type Config struct {
	DatabaseURL         string
	ServerAddr          string
	MigrationsDir       string
	SessionCookieName   string
	SessionCookieSecure bool
}

// Load reads configuration from the environment, with an optional .env
// file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		user := getenv("POSTGRES_USER", "forum")
		pass := getenv("POSTGRES_PASSWORD", "forum_pass")
		db := getenv("POSTGRES_DB", "forum")
		host := getenv("POSTGRES_HOST", "localhost")
		port := getenv("POSTGRES_PORT", "5432")
		sslmode := getenv("DATABASE_SSLMODE", "disable")
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, port, db, sslmode)
	}

	return &Config{
		DatabaseURL:         dsn,
		ServerAddr:          getenv("SERVER_ADDR", "0.0.0.0:8080"),
		MigrationsDir:       getenv("MIGRATIONS_DIR", "internal/migrations"),
		SessionCookieName:   getenv("SESSION_COOKIE_NAME", "forum_session"),
		SessionCookieSecure: parseBool(getenv("SESSION_COOKIE_SECURE", "false"), false),
	}, nil
}

func getenv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func parseBool(val string, def bool) bool {
	b, err := strconv.ParseBool(val)
	if err != nil {
		return def
	}
	return b
}
