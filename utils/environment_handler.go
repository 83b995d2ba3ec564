package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	ENV              = "ENV"
	PORT             = "PORT"
	MONGODB_URI      = "MONGODB_URI"
	MONGODB_DATABASE = "MONGODB_DATABASE"
	REDIS_URI        = "REDIS_URI"
	JWT_SECRET       = "JWT_SECRET"

	SENDGRID_API_KEY   = "SENDGRID_API_KEY"
	EMAIL_FROM         = "EMAIL_FROM"
	EMAIL_FROM_NAME    = "EMAIL_FROM_NAME"
	ADMIN_NOTIFY_EMAIL = "ADMIN_NOTIFY_EMAIL"

	ADMIN_USERNAME = "ADMIN_USERNAME"
	ADMIN_PASSWORD = "ADMIN_PASSWORD"
	ADMIN_EMAIL    = "ADMIN_EMAIL"

	RATE_LIMIT_WINDOW_MINUTES = "RATE_LIMIT_WINDOW_MINUTES"
	RATE_LIMIT_MAX_REQUESTS   = "RATE_LIMIT_MAX_REQUESTS"

	ENV_DEVELOPMENT = "development"
	ENV_RELEASE     = "production"
)

// Config holds every environment-supplied setting. It is built once at
// startup and passed down; nothing reads os.Getenv after that.
type Config struct {
	Env      string
	Port     string
	MongoURI string
	MongoDB  string
	RedisURI string

	JWTSecret   []byte
	TokenExpiry time.Duration

	SendGridAPIKey   string
	EmailFrom        string
	EmailFromName    string
	AdminNotifyEmail string

	RateLimitWindow time.Duration
	RateLimitMax    int64
}

// LoadConfig loads .env (if present) and validates required settings.
// A missing JWT_SECRET is a hard failure: substituting a hardcoded
// fallback would make every issued token forgeable.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		Logger.Warn("No .env file found, relying on process environment")
	}

	cfg := &Config{
		Env:              getEnv(ENV, ENV_DEVELOPMENT),
		Port:             getEnv(PORT, "5000"),
		MongoURI:         os.Getenv(MONGODB_URI),
		MongoDB:          getEnv(MONGODB_DATABASE, "uscashbuyers"),
		RedisURI:         os.Getenv(REDIS_URI),
		JWTSecret:        []byte(os.Getenv(JWT_SECRET)),
		TokenExpiry:      8 * time.Hour,
		SendGridAPIKey:   os.Getenv(SENDGRID_API_KEY),
		EmailFrom:        getEnv(EMAIL_FROM, "info@uscashbuyers.com"),
		EmailFromName:    getEnv(EMAIL_FROM_NAME, "US Cash Buyers"),
		AdminNotifyEmail: os.Getenv(ADMIN_NOTIFY_EMAIL),
		RateLimitWindow:  time.Duration(getEnvInt(RATE_LIMIT_WINDOW_MINUTES, 15)) * time.Minute,
		RateLimitMax:     getEnvInt(RATE_LIMIT_MAX_REQUESTS, 100),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGODB_URI is not set")
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("JWT_SECRET is not set; refusing to start with an unsigned-token fallback")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		Logger.Warnf("Invalid %s value '%s', using default %d", key, v, fallback)
		return fallback
	}
	return n
}
