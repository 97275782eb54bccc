package config

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

// Config returns the raw value of an environment variable, reading .env once.
func Config(key string) string {
	loadEnv.Do(func() {
		// a missing .env is fine, the process environment is used as is
		_ = godotenv.Load()
	})
	return os.Getenv(key)
}

// Settings holds the typed configuration of the service
type Settings struct {
	Port        string
	CORSOrigins string

	// Postgres
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	// Redis, empty address disables the payment lock and live messages
	RedisAddr     string
	RedisPassword string

	JWTSecret     string
	AdminUsername string
	AdminPassword string

	// Square
	SquareAccessToken   string
	SquareApplicationID string
	SquareLocationID    string
	SquareEnvironment   string

	// SMTP
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	ContactEmail string

	// Cloudinary
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Pricing
	ClubCardCatalog         string
	PrivateOnlyDestinations []string
	CharterBasePassengers   int

	PaymentPendingTTLMinutes int
}

func Load() *Settings {
	return &Settings{
		Port:        getEnv("PORT", "8002"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:8081"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvAsInt("DB_PORT", 5432),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "sognudimare"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		SquareAccessToken:   getEnv("SQUARE_ACCESS_TOKEN", ""),
		SquareApplicationID: getEnv("SQUARE_APPLICATION_ID", ""),
		SquareLocationID:    getEnv("SQUARE_LOCATION_ID", ""),
		SquareEnvironment:   getEnv("SQUARE_ENVIRONMENT", "sandbox"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", ""),
		ContactEmail: getEnv("CONTACT_EMAIL", ""),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),

		ClubCardCatalog:         getEnv("CLUB_CARD_CATALOG", ""),
		PrivateOnlyDestinations: getEnvAsList("PRIVATE_ONLY_DESTINATIONS", []string{"greece", "caribbean"}),
		CharterBasePassengers:   getEnvAsInt("CHARTER_BASE_PASSENGERS", 8),

		PaymentPendingTTLMinutes: getEnvAsInt("PAYMENT_PENDING_TTL_MINUTES", 30),
	}
}

func getEnv(key, defaultValue string) string {
	value := Config(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
