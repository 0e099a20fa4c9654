package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	Port        string
	DBUrl       string
	FrontendURL string
	// Session cookie
	SessionSecret   string
	SessionTTLHours int
	CookieSecure    bool
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitAuthThreshold   int
	RateLimitGlobalThreshold int
	// Database
	RunMigrations bool
	// Recommendations shown on the dashboard
	RecommendationLimit int
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; ignored when missing
	_ = godotenv.Load()

	cfg := &Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Session
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 24),
		CookieSecure:    getEnvBool("COOKIE_SECURE", false),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitAuthThreshold:   getEnvInt("RATE_LIMIT_AUTH_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		// Database
		RunMigrations: getEnvBool("RUN_MIGRATIONS", true),
		// Dashboard
		RecommendationLimit: getEnvInt("RECOMMENDATION_LIMIT", 5),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}

	if cfg.SessionSecret == "" {
		if cfg.Env == "production" {
			return nil, errMissingSessionSecret
		}
		log.Println("WARNING: SESSION_SECRET not set. Using an insecure development secret.")
		cfg.SessionSecret = "dev-session-secret-change-me"
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	if cfg.RecommendationLimit <= 0 {
		cfg.RecommendationLimit = 5
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

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
