package app_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/pytutor-ai/backend/internal/app"
	"github.com/pytutor-ai/backend/internal/auth"
	"github.com/pytutor-ai/backend/internal/grader"
	"github.com/pytutor-ai/backend/internal/infrastructure/config"
)

func testConfig(t *testing.T, mode config.Mode) *config.Config {
	t.Helper()
	return &config.Config{
		Mode:         mode,
		LocalDBPath:  filepath.Join(t.TempDir(), "app.db"),
		DocStore:     "memory",
		JWTSecret:    "secret",
		ShareBaseURL: "http://localhost:8080/",
		LLMProvider:  "openai",
		LLMURL:       "http://127.0.0.1:1",
		LLMModel:     "m",
		LLMTimeout:   time.Second,
		GradeWorkers: 2,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpen_Local(t *testing.T) {
	session := auth.NewSession()
	a, err := app.Open(testConfig(t, config.ModeLocal), discardLogger(), session, session)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()

	if a.Library.Mode() != config.ModeLocal {
		t.Errorf("expected local mode, got %q", a.Library.Mode())
	}
	folders, err := a.Library.ListFolders(context.Background())
	if err != nil {
		t.Fatalf("ListFolders: %v", err)
	}
	if len(folders) != 3 {
		t.Errorf("expected seeded folders, got %d", len(folders))
	}
}

func TestOpen_RemoteMemory(t *testing.T) {
	a, err := app.Open(testConfig(t, config.ModeRemote), discardLogger(), auth.NewSession(), auth.ContextResolver{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()

	srv := httptest.NewServer(a.HTTPHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/folders")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", resp.StatusCode)
	}

	token, err := a.Verifier.Sign(auth.Identity{UID: "u1"}, time.Minute)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/folders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 with a token, got %d", resp.StatusCode)
	}
}

func TestOpen_UnknownDocStore(t *testing.T) {
	cfg := testConfig(t, config.ModeRemote)
	cfg.DocStore = "cassandra"

	if _, err := app.Open(cfg, discardLogger(), auth.NewSession(), auth.ContextResolver{}); err == nil {
		t.Error("expected an error for an unknown document store")
	}
}

func TestNewAI(t *testing.T) {
	cfg := testConfig(t, config.ModeLocal)

	g, e, err := app.NewAI(cfg)
	if err != nil {
		t.Fatalf("NewAI: %v", err)
	}
	if _, ok := g.(*grader.OpenAIClient); !ok {
		t.Errorf("expected OpenAI client, got %T", g)
	}
	if _, ok := e.(*grader.OpenAIClient); !ok {
		t.Errorf("expected OpenAI extractor, got %T", e)
	}

	cfg.LLMProvider = "anthropic"
	cfg.AnthropicAPIKey = "key"
	g, _, err = app.NewAI(cfg)
	if err != nil {
		t.Fatalf("NewAI: %v", err)
	}
	if _, ok := g.(*grader.AnthropicClient); !ok {
		t.Errorf("expected Anthropic client, got %T", g)
	}

	cfg.LLMProvider = "gemini"
	if _, _, err := app.NewAI(cfg); err == nil {
		t.Error("expected an error for an unknown provider")
	}
}
