package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	DatabaseURL     string
	GeminiAPIKey    string
	LLMModel        string
	CORSAllowOrigin []string
	MaxUploadBytes  int64
}

const defaultMaxUploadBytes = 5 << 20

// Load reads configuration from the environment, loading .env first if present.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: no .env file loaded")
	}

	env := normalizeEnv(getEnv("ENV", "development"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Fatal("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		DatabaseURL:     dbURL,
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		LLMModel:        getEnv("LLM_MODEL", "gemini-1.5-flash"),
		CORSAllowOrigin: splitList(getEnv("CORS_ALLOW_ORIGIN", "http://localhost:3000")),
		MaxUploadBytes:  getEnvInt64("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || val <= 0 {
		log.Printf("config: %s invalid int64 %q, using default", key, raw)
		return def
	}
	return val
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "development"
	}
}
