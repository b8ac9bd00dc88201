package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBUrl   string
	BaseURL string
	// Company identity (rendered on every page, injected into structured data)
	CompanyNameAr  string
	CompanyNameEn  string
	Phone          string
	WhatsAppHandle string
	LicenseNumber  string
	// SMTP Configuration (submission forwarding)
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string
	ContactEmailTo string
	// Redis Configuration (contact rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	ContactRateLimit         int
	ContactRateWindowSeconds int
	// Admin API
	AdminJWTSecret string
}

func LoadConfig() (*Config, error) {
	// .env only exists locally; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		DBUrl:   getEnv("DATABASE_URL", ""),
		BaseURL: strings.TrimRight(getEnv("SITE_BASE_URL", "https://alameen-pest.com"), "/"),

		CompanyNameAr:  getEnv("COMPANY_NAME_AR", "شركة الأمين لمكافحة الحشرات"),
		CompanyNameEn:  getEnv("COMPANY_NAME_EN", "Al-Ameen Pest Control"),
		Phone:          getEnv("COMPANY_PHONE", "+966555301460"),
		WhatsAppHandle: getEnv("WHATSAPP_HANDLE", "+966 55 530 1460"),
		LicenseNumber:  getEnv("LICENSE_NUMBER", "FL-7723941"),

		SMTPHost:       getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", "noreply@alameen-pest.com"),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "info@alameen-pest.com"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		ContactRateLimit:         getEnvInt("CONTACT_RATE_LIMIT", 5),
		ContactRateWindowSeconds: getEnvInt("CONTACT_RATE_WINDOW_SECONDS", 300),

		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Submissions will not be persisted.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}
	if cfg.AdminJWTSecret == "" {
		log.Println("WARNING: ADMIN_JWT_SECRET is missing. Admin endpoints will reject all tokens.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
