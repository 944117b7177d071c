package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	AIProvider       string // "gemini" or "local"
	GeminiAPIKey     string
	GeminiModel      string
	InferenceBaseURL string
	InferenceModel   string
	AITimeout        time.Duration
	AllowedOrigins   []string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	aiTimeout := 30 * time.Second
	if raw := os.Getenv("AI_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			aiTimeout = parsed
		}
	}

	origins := []string{"http://localhost:5173"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		AIProvider:       getEnv("AI_PROVIDER", "gemini"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		InferenceBaseURL: getEnv("INFERENCE_BASE_URL", "http://localhost:8090"),
		InferenceModel:   getEnv("INFERENCE_MODEL", ""),
		AITimeout:        aiTimeout,
		AllowedOrigins:   origins,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
