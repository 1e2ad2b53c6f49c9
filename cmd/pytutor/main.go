// Command pytutor drives the question bank library from the terminal. It
// opens the same stack as the HTTP server.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pytutor-ai/backend/internal/app"
	"github.com/pytutor-ai/backend/internal/auth"
	"github.com/pytutor-ai/backend/internal/infrastructure/config"
	"github.com/pytutor-ai/backend/internal/infrastructure/logging"
)

var (
	tokenFlag  string
	jsonOutput bool

	application *app.App
	logCloser   io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "pytutor",
	Short: "Manage PyTutor folders and question banks",
	Long: `pytutor works on the same library as the PyTutor server.

APP_MODE=dev (the default) keeps everything in a local SQLite file and signs
in the development user. APP_MODE=prod talks to the per-user document store
and needs a signed token, passed with --token or PYTUTOR_TOKEN.`,
	SilenceUsage:      true,
	PersistentPreRunE: openApp,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeApp()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "Bearer token for prod mode (default $PYTUTOR_TOKEN)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	rootCmd.AddGroup(
		&cobra.Group{ID: "library", Title: "Library:"},
		&cobra.Group{ID: "ai", Title: "AI:"},
	)
}

func main() {
	err := rootCmd.Execute()
	closeApp()
	if err != nil {
		os.Exit(1)
	}
}

// openApp loads the configuration, signs the process session in and opens
// the application. Commands that need no stack set the "standalone"
// annotation.
func openApp(cmd *cobra.Command, args []string) error {
	if cmd.Annotations["standalone"] == "true" {
		return nil
	}
	// PersistentPostRunE is skipped when a command fails.
	closeApp()

	cfg := config.Load()

	logger, closer := logging.NewWithWriter(cmd.ErrOrStderr(), logging.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
	logCloser = closer

	session := auth.NewSession()
	switch cfg.Mode {
	case config.ModeLocal:
		session.SignIn(auth.MockIdentity)
	case config.ModeRemote:
		token := tokenFlag
		if token == "" {
			token = os.Getenv("PYTUTOR_TOKEN")
		}
		if token == "" {
			return fmt.Errorf("prod mode needs --token or PYTUTOR_TOKEN: %w", auth.ErrUnauthorized)
		}
		id, err := auth.NewVerifier(cfg.JWTSecret).Parse(token)
		if err != nil {
			return err
		}
		session.SignIn(id)
	}

	a, err := app.Open(cfg, logger, session, session)
	if err != nil {
		return err
	}
	application = a
	return nil
}

func closeApp() error {
	var err error
	if application != nil {
		err = application.Close()
		application = nil
	}
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
	return err
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
