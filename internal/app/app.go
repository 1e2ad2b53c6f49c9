// Package app wires configuration into the persistence, AI and service
// layers. The HTTP server and the CLI share it so both run the same stack.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/pytutor-ai/backend/internal/api"
	"github.com/pytutor-ai/backend/internal/auth"
	"github.com/pytutor-ai/backend/internal/grader"
	"github.com/pytutor-ai/backend/internal/infrastructure/config"
	"github.com/pytutor-ai/backend/internal/library"
	"github.com/pytutor-ai/backend/internal/service"
	"github.com/pytutor-ai/backend/internal/store"
	"github.com/pytutor-ai/backend/internal/store/local"
	"github.com/pytutor-ai/backend/internal/store/remote"
)

// App is a fully wired application.
type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	Session    *auth.Session
	Resolver   auth.Resolver
	Verifier   *auth.Verifier
	Library    *library.Library
	Importer   *library.Importer
	Grading    *service.GradingService
	Extraction *service.ExtractionService

	closers []func() error
}

// Open builds the application for cfg. Remote backends resolve the user
// through resolver; local mode ignores it. Call Close when done.
func Open(cfg *config.Config, logger *slog.Logger, session *auth.Session, resolver auth.Resolver) (*App, error) {
	a := &App{
		Config:   cfg,
		Logger:   logger,
		Session:  session,
		Resolver: resolver,
	}
	if cfg.JWTSecret != "" {
		a.Verifier = auth.NewVerifier(cfg.JWTSecret)
	}

	backend, err := a.openBackend()
	if err != nil {
		a.Close()
		return nil, err
	}

	g, e, err := NewAI(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Library = library.New(cfg.Mode, backend, logger)
	a.Importer = library.NewImporter(a.Library, logger)
	a.Grading = service.NewGradingService(a.Library, g, cfg.GradeWorkers, logger)
	a.Extraction = service.NewExtractionService(a.Library, e, logger)

	logger.Info("application ready",
		"mode", cfg.Mode,
		"docstore", docstoreName(cfg),
		"llm_provider", cfg.LLMProvider,
	)
	return a, nil
}

// openBackend selects the persistence backend once, from the mode.
func (a *App) openBackend() (store.Backend, error) {
	switch a.Config.Mode {
	case config.ModeLocal:
		kv, err := store.NewSQLite(a.Config.LocalDBPath)
		if err != nil {
			return nil, fmt.Errorf("open local store: %w", err)
		}
		a.closers = append(a.closers, kv.Close)
		return local.New(kv), nil

	case config.ModeRemote:
		var docs remote.DocumentStore
		switch a.Config.DocStore {
		case "memory":
			docs = remote.NewMemory()
		case "postgres":
			pg, err := remote.OpenPostgres(a.Config.DatabaseURL)
			if err != nil {
				return nil, fmt.Errorf("open document store: %w", err)
			}
			a.closers = append(a.closers, pg.Close)
			docs = pg
		default:
			return nil, fmt.Errorf("unknown DOCSTORE %q", a.Config.DocStore)
		}
		return remote.New(docs, a.Resolver), nil
	}
	return nil, fmt.Errorf("unknown mode %q", a.Config.Mode)
}

// NewAI builds the grading and extraction collaborators for the configured
// provider.
func NewAI(cfg *config.Config) (grader.Grader, grader.Extractor, error) {
	switch cfg.LLMProvider {
	case "openai", "":
		c := grader.NewOpenAIClient(cfg.LLMURL, cfg.LLMModel, cfg.LLMExtractModel, cfg.LLMTimeout)
		return c, c, nil
	case "anthropic":
		c := grader.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.LLMModel, cfg.LLMExtractModel,
			option.WithRequestTimeout(cfg.LLMTimeout),
		)
		return c, c, nil
	}
	return nil, nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
}

// HTTPHandler returns the API with its middleware chain.
func (a *App) HTTPHandler() http.Handler {
	h := api.NewHandler(api.Dependencies{
		Library:      a.Library,
		Importer:     a.Importer,
		Grading:      a.Grading,
		Extraction:   a.Extraction,
		Session:      a.Session,
		Resolver:     a.Resolver,
		Verifier:     a.Verifier,
		ShareBaseURL: a.Config.ShareBaseURL,
	}, a.Logger)
	return api.NewRouter(h, a.Logger)
}

// Close releases the stores in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func docstoreName(cfg *config.Config) string {
	if cfg.Mode == config.ModeLocal {
		return "sqlite"
	}
	return cfg.DocStore
}
