package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr             string
	MongoURI         string
	MongoDatabase    string
	SurveyCollection string
	UserCollection   string
	Timeout          time.Duration
	Timezone         string
	ServerLog        *log.Logger
	JWTSecret        []byte
	JWTIssuer        string
	JWTAudience      string
	SessionTTL       time.Duration
	RememberTTL      time.Duration
	RecentAuthWindow time.Duration
	AllowedOrigins   []string
	Stores           []string
}

// DefaultStores is the fixed catalogue of store slugs surveys are tagged with.
var DefaultStores = []string{"fontanar", "andino", "unicentro", "calle90"}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	secret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))
	if secret == "" {
		log.Fatal("AUTH_JWT_SECRET must be configured")
	}

	cfg := Config{
		Addr:             envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:         envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:    envOrDefault("MONGO_DB", "rewax"),
		SurveyCollection: envOrDefault("SURVEY_COLLECTION", "surveys"),
		UserCollection:   envOrDefault("USER_COLLECTION", "users"),
		Timeout:          timeout,
		Timezone:         envOrDefault("TIMEZONE", "America/Bogota"),
		ServerLog:        log.New(os.Stdout, "[rewax-api] ", log.LstdFlags|log.Lshortfile),
		JWTSecret:        []byte(secret),
		JWTIssuer:        envOrDefault("AUTH_JWT_ISSUER", "rewax-auth"),
		JWTAudience:      strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE")),
		SessionTTL:       envDuration("AUTH_SESSION_TTL", 12*time.Hour),
		RememberTTL:      envDuration("AUTH_REMEMBER_TTL", 30*24*time.Hour),
		RecentAuthWindow: envDuration("AUTH_RECENT_WINDOW", 30*time.Minute),
		AllowedOrigins:   parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		Stores:           parseList("SURVEY_STORES", DefaultStores),
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
