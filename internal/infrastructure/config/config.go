package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Storage
	DBPath string

	// LLM scoring and case generation
	LLMURL      string // OpenAI-compatible endpoint, e.g. "http://localhost:1234"
	LLMModel    string // model name, e.g. "qwen3-8b"
	LLMAPIKey   string // optional bearer token
	LLMTimeout  time.Duration
	Temperature float64

	// External auth service
	AuthServiceURL string
	AppName        string

	// Rubric override; empty means the built-in rubric
	RubricPath string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBPath:          getenvDefault("DB_PATH", "sca-trainer.db"),
		LLMURL:          getenvDefault("LLM_URL", "http://localhost:1234"),
		LLMModel:        getenvDefault("LLM_MODEL", "qwen3-8b"),
		LLMAPIKey:       os.Getenv("LLM_API_KEY"),
		LLMTimeout:      getDurationDefault("LLM_TIMEOUT", 60*time.Second),
		Temperature:     0.7,
		AuthServiceURL:  mustGetenv("AUTH_SERVICE_URL"),
		AppName:         getenvDefault("APP_NAME", "sca-trainer"),
		RubricPath:      os.Getenv("RUBRIC_PATH"),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return parseDuration(k, v)
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	return parseDuration(k, v)
}

func parseDuration(k, v string) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
