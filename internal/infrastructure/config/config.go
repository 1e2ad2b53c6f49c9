package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Mode selects the persistence backend. It is fixed for the life of the
// process.
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeRemote Mode = "remote"
)

// ParseMode maps APP_MODE to a Mode. Anything other than "prod" is local.
func ParseMode(appMode string) Mode {
	if appMode == "prod" {
		return ModeRemote
	}
	return ModeLocal
}

type Config struct {
	Mode            Mode
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Persistence
	LocalDBPath string // SQLite file behind the local backend
	DocStore    string // "postgres" or "memory"
	DatabaseURL string

	// Identity
	JWTSecret string

	// Sharing
	ShareBaseURL string

	// LLM extraction and grading
	LLMProvider     string // "openai" or "anthropic"
	LLMURL          string // OpenAI-compatible endpoint, e.g. "http://localhost:1234"
	LLMModel        string // model name, e.g. "qwen3-8b"
	LLMExtractModel string
	AnthropicAPIKey string
	LLMTimeout      time.Duration
	GradeWorkers    int

	// Logging
	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	mode := ParseMode(getenvDefault("APP_MODE", "dev"))
	cfg := &Config{
		Mode:            mode,
		ServerAddress:   getenvDefault("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout: getDurationDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		LocalDBPath:     getenvDefault("LOCAL_DB_PATH", "pytutor.db"),
		DocStore:        getenvDefault("DOCSTORE", "postgres"),
		ShareBaseURL:    getenvDefault("SHARE_BASE_URL", "http://localhost:8080/"),
		LLMProvider:     getenvDefault("LLM_PROVIDER", "openai"),
		LLMURL:          getenvDefault("LLM_URL", "http://localhost:1234"),
		LLMModel:        getenvDefault("LLM_MODEL", "qwen3-8b"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		LLMTimeout:      getDurationDefault("LLM_TIMEOUT", 120*time.Second),
		GradeWorkers:    getIntDefault("GRADE_WORKERS", 4),
		LogLevel:        getenvDefault("LOG_LEVEL", "info"),
		LogFile:         os.Getenv("LOG_FILE"),
		LogMaxSizeMB:    getIntDefault("LOG_MAX_SIZE_MB", 50),
		LogMaxBackups:   getIntDefault("LOG_MAX_BACKUPS", 3),
	}
	cfg.LLMExtractModel = getenvDefault("LLM_EXTRACT_MODEL", cfg.LLMModel)

	if mode == ModeRemote {
		cfg.JWTSecret = mustGetenv("JWT_SECRET")
		if cfg.DocStore == "postgres" {
			cfg.DatabaseURL = mustGetenv("DATABASE_URL")
		}
	}
	if cfg.LLMProvider == "anthropic" {
		cfg.AnthropicAPIKey = mustGetenv("ANTHROPIC_API_KEY")
	}
	return cfg
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getIntDefault(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Fatalf("config: %s=%q is not a positive integer", k, v)
	}
	return n
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
