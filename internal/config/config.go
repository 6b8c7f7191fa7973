package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	AuthSchemePlain = "plain"
	AuthSchemeJWT   = "jwt"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Auth
	// AuthScheme selects how bearer tokens are issued and resolved:
	// "plain" uses the numeric user id as the token (legacy scheme),
	// "jwt" issues signed expiring tokens.
	AuthScheme string
	JWTSecret  string
	JWTExpiry  time.Duration

	// Rate limiting for auth endpoints
	AuthRateLimit  int
	AuthRateWindow time.Duration

	// CORS (the React frontend is served separately)
	CORSAllowOrigin string

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		AppName: envString("APP_NAME", "FocusFlow"),
		AppEnv:  envString("APP_ENV", "development"),
		Port:    envString("PORT", "5000"),

		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/focusflow.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		AuthScheme: envString("AUTH_SCHEME", AuthSchemePlain),
		JWTSecret:  envString("JWT_SECRET", ""),
		JWTExpiry:  envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days

		AuthRateLimit:  envInt("AUTH_RATE_LIMIT", 10),
		AuthRateWindow: envDuration("AUTH_RATE_WINDOW", 15*time.Minute),

		CORSAllowOrigin: envString("CORS_ALLOW_ORIGIN", "*"),

		SentryDSN: envString("SENTRY_DSN", ""),
	}

	// The jwt scheme cannot run without a signing secret
	if cfg.AuthScheme == AuthSchemeJWT && cfg.JWTSecret == "" {
		slog.Error("config AUTH_SCHEME=jwt requires JWT_SECRET")
		os.Exit(1)
	}

	return cfg
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
