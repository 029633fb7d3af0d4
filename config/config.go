package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	FrontendURL string
	// Resend Configuration
	ResendAPIKey     string
	ContactEmailFrom string // Verified sender, shown as the studio identity
	ContactEmailTo   string // Studio inbox receiving the internal notification
	// reCAPTCHA v2 Configuration
	RecaptchaSecretKey string // Server-side secret; empty disables the captcha gate
	RecaptchaSiteKey   string // Public site key; empty hides the client widget
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
}

// LoadConfig builds the configuration once at startup. It is passed by
// reference into the router and usecases instead of reading the environment
// at request time, so a missing credential is trivially reproducible in tests
// by handing over an empty Config.
func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Resend Configuration
		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		ContactEmailFrom: getEnv("CONTACT_EMAIL_FROM", "ZentheraSoft <contacto@zentherasoft.com>"),
		ContactEmailTo:   getEnv("CONTACT_EMAIL_TO", "contacto@zentherasoft.com"),
		// reCAPTCHA Configuration
		RecaptchaSecretKey: getEnv("RECAPTCHA_SECRET_KEY", ""),
		RecaptchaSiteKey:   getEnv("RECAPTCHA_SITE_KEY", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),   // 1 minute window
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5), // 5 submissions per window
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY is missing. Contact submissions will be rejected.")
	}
	if cfg.RecaptchaSecretKey == "" {
		log.Println("WARNING: RECAPTCHA_SECRET_KEY not configured. Captcha gate is disabled.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
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
