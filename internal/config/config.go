package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the pipeline and servers read from the environment.
type Config struct {
	Environment string
	LogLevel    string
	Port        string

	// Model server. Empty URL means every ML-backed path is unavailable and
	// components run on their rule-based fallbacks.
	ModelServerURL string
	UseMockModels  bool
	ModelTimeout   time.Duration

	OutputDir        string
	MaxKeywords      int
	SummarySentences int
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Environment:      envOr("ENVIRONMENT", "local"),
		LogLevel:         envOr("LOG_LEVEL", "info"),
		Port:             envOr("PORT", "8080"),
		ModelServerURL:   os.Getenv("MODEL_SERVER_URL"),
		UseMockModels:    os.Getenv("USE_MOCK_MODELS") == "true",
		ModelTimeout:     time.Duration(envIntOr("MODEL_TIMEOUT_SEC", 25)) * time.Second,
		OutputDir:        envOr("OUTPUT_DIR", "outputs"),
		MaxKeywords:      envIntOr("MAX_KEYWORDS", 15),
		SummarySentences: envIntOr("SUMMARY_SENTENCES", 3),
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envIntOr(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
