package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pytutor-ai/backend/internal/app"
	"github.com/pytutor-ai/backend/internal/auth"
	"github.com/pytutor-ai/backend/internal/infrastructure/config"
	"github.com/pytutor-ai/backend/internal/infrastructure/logging"

	_ "github.com/pytutor-ai/backend/docs" // generated swagger docs
)

// @title           PyTutor API
// @version         1.0
// @description     Python practice companion: extract problems from PDFs, organize them into shareable question banks, and let AI grade submissions.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger, logCloser := logging.New(logging.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
	defer logCloser.Close()

	// ── Identity ────────────────────────────────────────────────────
	// Local mode runs as the development user. Remote mode takes the user
	// from each request's bearer token; the process session stays empty.
	session := auth.NewSession()
	var resolver auth.Resolver = session
	if cfg.Mode == config.ModeLocal {
		session.SignIn(auth.MockIdentity)
	} else {
		resolver = auth.ContextResolver{}
	}

	// ── Dependencies ────────────────────────────────────────────────
	application, err := app.Open(cfg, logger, session, resolver)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           application.HTTPHandler(),
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.LLMTimeout + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "mode", cfg.Mode)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
