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
	FrontendURL string
	// Greenhouse (ATS) Configuration
	GreenhouseAPIURL   string
	GreenhouseAPIKey   string
	GreenhouseUserID   string // On-Behalf-Of actor for outbound requests
	GreenhouseTimeout  int    // Outbound request timeout in seconds
	DefaultCandidateID int64  // Candidate record the portal submits on behalf of
	// Draft persistence
	DraftStorePath string
	// Session Configuration
	SessionSecret   string
	SessionTTLHours int
	// SMTP Configuration (support form)
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SupportEmailTo string
	// Redis Configuration (rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	UploadsPerMinute         int
	UploadsPerDay            int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Greenhouse Harvest API
		GreenhouseAPIURL:   strings.TrimRight(getEnv("GREENHOUSE_API_URL", "https://harvest.greenhouse.io/v1"), "/"),
		GreenhouseAPIKey:   getEnv("GREENHOUSE_API_KEY", ""),
		GreenhouseUserID:   getEnv("GREENHOUSE_USER_ID", ""),
		GreenhouseTimeout:  getEnvInt("GREENHOUSE_TIMEOUT_SECONDS", 30),
		DefaultCandidateID: int64(getEnvInt("GREENHOUSE_CANDIDATE_ID", 34555007007)),
		// Draft persistence
		DraftStorePath: getEnv("DRAFT_STORE_PATH", "data/applications.json"),
		// Session Configuration
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 24),
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SupportEmailTo: getEnv("SUPPORT_EMAIL_TO", "fellows@kleinerperkins.com"),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		UploadsPerMinute:         getEnvInt("UPLOADS_PER_MINUTE", 10),
		UploadsPerDay:            getEnvInt("UPLOADS_PER_DAY", 50),
	}

	// Basic validation so misconfiguration shows up at startup, not mid-submit
	if cfg.GreenhouseAPIKey == "" {
		log.Println("WARNING: GREENHOUSE_API_KEY is missing. Application submission will fail.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
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
