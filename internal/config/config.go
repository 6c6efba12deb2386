package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server configuration
	Port string
	Mode string

	// Database configuration (optional audit log)
	DatabaseURL string

	// Redis configuration (optional rate limiting)
	RedisURL string

	// Razorpay configuration
	RazorpayKeyID     string
	RazorpayKeySecret string

	// SMTP configuration
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// Brevo API configuration (alternative mail transport)
	BrevoAPIKey string

	// Google service account configuration
	GoogleServiceAccountEmail string
	GoogleServiceAccountKey   string

	// Spreadsheet targets
	SubscribersSpreadsheetID string
	SubscribersSheet         string
	PaymentsSpreadsheetID    string
	PaymentsSheet            string

	// Notification configuration
	AdminEmail             string
	SiteURL                string
	SubscribeWebhookURL    string
	SubscribeWebhookSecret string

	// Lead-capture rate limit
	RateLimitMinutes int
}

var AppConfig *Config

func InitConfig() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		// Ignore error if .env file doesn't exist
	}

	AppConfig = &Config{
		Port:        getEnv("PORT", "8080"),
		Mode:        getEnv("GIN_MODE", "debug"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),

		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),

		SMTPHost: getEnv("SMTP_HOST", ""),
		SMTPPort: getEnv("SMTP_PORT", ""),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASS", ""),
		SMTPFrom: getEnv("SMTP_FROM", "Feedlooply <no-reply@feedlooply.com>"),

		BrevoAPIKey: getEnv("BREVO_API_KEY", ""),

		GoogleServiceAccountEmail: getEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
		GoogleServiceAccountKey:   getEnv("GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY", ""),

		SubscribersSpreadsheetID: getEnv("GOOGLE_SHEETS_SUBSCRIBERS_ID", ""),
		SubscribersSheet:         getEnv("GOOGLE_SHEETS_SUBSCRIBERS_SHEET", "Subscribers"),
		PaymentsSpreadsheetID:    getEnv("GOOGLE_SHEETS_PAYMENTS_ID", ""),
		PaymentsSheet:            getEnv("GOOGLE_SHEETS_PAYMENTS_SHEET", "Payments"),

		AdminEmail:             getEnvFallback("ADMIN_NOTIFICATIONS_EMAIL", "ADMIN_EMAIL", "srinithinoffl@gmail.com"),
		SiteURL:                getEnv("SITE_URL", "https://feedlooply.com"),
		SubscribeWebhookURL:    getEnv("SUBSCRIBE_WEBHOOK_URL", ""),
		SubscribeWebhookSecret: getEnv("SUBSCRIBE_WEBHOOK_SECRET", ""),

		RateLimitMinutes: getEnvInt("RATE_LIMIT_MINUTES", 1),
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFallback(key, fallbackKey, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return getEnv(fallbackKey, defaultValue)
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
