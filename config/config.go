package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EmailConfig holds configuration for the announcement mailer.
type EmailConfig struct {
	Provider           string // "ses" or "noop"
	FromAddress        string
	FromName           string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string
	SESInsecureTLS     bool
}

// Config holds all configuration for the application
type Config struct {
	Environment        string
	Port               string
	DBUrl              string
	JWTSecret          string
	CORSAllowedOrigins []string
	Email              EmailConfig
	// AnnounceRecipients is the list of addresses that receive an
	// announcement email when an event is created. Empty disables
	// announcements.
	AnnounceRecipients []string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               os.Getenv("PORT"),
		DBUrl:              os.Getenv("DATABASE_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		AnnounceRecipients: splitList(os.Getenv("ANNOUNCE_RECIPIENTS")),
		Email: EmailConfig{
			Provider:           os.Getenv("EMAIL_PROVIDER"),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           os.Getenv("EMAIL_FROM_NAME"),
			SESRegion:          os.Getenv("AWS_SES_REGION"),
			SESAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SESSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SESInsecureTLS:     os.Getenv("AWS_SES_INSECURE_TLS") == "true",
		},
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "5000"
	}

	// DATABASE_URL wins; otherwise the DSN is assembled from the
	// discrete DB_* variables the deployment environment provides.
	if cfg.DBUrl == "" {
		cfg.DBUrl = dsnFromParts()
	}

	if cfg.JWTSecret == "" {
		if env == "production" {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Printf("Warning: JWT_SECRET not set, using development default")
		cfg.JWTSecret = "campuscal-dev-secret"
	}

	return cfg, nil
}

func dsnFromParts() string {
	host := envOr("DB_HOST", "localhost")
	user := envOr("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	name := envOr("DB_NAME", "campuscal")

	userInfo := url.User(user)
	if password != "" {
		userInfo = url.UserPassword(user, password)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     host,
		Path:     "/" + name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
