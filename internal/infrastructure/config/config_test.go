package config_test

import (
	"testing"
	"time"

	"github.com/pytutor-ai/backend/internal/infrastructure/config"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want config.Mode
	}{
		{"prod", config.ModeRemote},
		{"dev", config.ModeLocal},
		{"", config.ModeLocal},
		{"PROD", config.ModeLocal},
	}
	for _, tt := range tests {
		if got := config.ParseMode(tt.in); got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoad_DevDefaults(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MODEL", "tiny")
	t.Setenv("LLM_EXTRACT_MODEL", "")
	t.Setenv("GRADE_WORKERS", "7")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := config.Load()

	if cfg.Mode != config.ModeLocal {
		t.Errorf("expected local mode, got %q", cfg.Mode)
	}
	if cfg.ServerAddress != ":8080" {
		t.Errorf("expected default address, got %q", cfg.ServerAddress)
	}
	if cfg.LLMExtractModel != "tiny" {
		t.Errorf("expected extract model to fall back to LLM_MODEL, got %q", cfg.LLMExtractModel)
	}
	if cfg.GradeWorkers != 7 {
		t.Errorf("expected 7 workers, got %d", cfg.GradeWorkers)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected 3s, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoad_ProdMemoryDocStore(t *testing.T) {
	t.Setenv("APP_MODE", "prod")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DOCSTORE", "memory")
	t.Setenv("LLM_PROVIDER", "openai")

	cfg := config.Load()

	if cfg.Mode != config.ModeRemote {
		t.Errorf("expected remote mode, got %q", cfg.Mode)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Errorf("expected JWT secret to be read, got %q", cfg.JWTSecret)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("expected no database url for memory store, got %q", cfg.DatabaseURL)
	}
}
