// Package library is the single entry point the rest of the application uses
// for persistence. A Library is bound to one backend for its whole life.
package library

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pytutor-ai/backend/internal/domain/folder"
	"github.com/pytutor-ai/backend/internal/domain/questionbank"
	"github.com/pytutor-ai/backend/internal/infrastructure/config"
	"github.com/pytutor-ai/backend/internal/store"
)

// Library forwards every call to the backend selected at startup.
type Library struct {
	mode    config.Mode
	backend store.Backend
	logger  *slog.Logger
}

// New binds a Library to backend. mode is recorded for diagnostics only.
func New(mode config.Mode, backend store.Backend, logger *slog.Logger) *Library {
	return &Library{mode: mode, backend: backend, logger: logger}
}

// Mode reports which backend the Library was bound to.
func (l *Library) Mode() config.Mode {
	return l.mode
}

func (l *Library) ListFolders(ctx context.Context) ([]*folder.Folder, error) {
	folders, err := l.backend.ListFolders(ctx)
	if err != nil {
		l.fail("list folders", err)
	}
	return folders, err
}

func (l *Library) CreateFolder(ctx context.Context, name, description string) (*folder.Folder, error) {
	f, err := l.backend.CreateFolder(ctx, name, description)
	if err != nil {
		l.fail("create folder", err)
		return nil, err
	}
	l.logger.Info("folder created", "folder_id", f.ID, "mode", l.mode)
	return f, nil
}

func (l *Library) EnsureImportFolder(ctx context.Context) (*folder.Folder, error) {
	f, err := l.backend.EnsureImportFolder(ctx)
	if err != nil {
		l.fail("ensure import folder", err)
	}
	return f, err
}

func (l *Library) ListBanksByFolder(ctx context.Context, folderID string) ([]*questionbank.QuestionBank, error) {
	banks, err := l.backend.ListBanksByFolder(ctx, folderID)
	if err != nil {
		l.fail("list banks", err, "folder_id", folderID)
	}
	return banks, err
}

func (l *Library) GetBank(ctx context.Context, bankID string) (*questionbank.QuestionBank, error) {
	bank, err := l.backend.GetBank(ctx, bankID)
	if err != nil {
		l.fail("get bank", err, "bank_id", bankID)
	}
	return bank, err
}

func (l *Library) CreateBank(ctx context.Context, folderID, title string, problems []questionbank.Problem) (*questionbank.QuestionBank, error) {
	bank, err := l.backend.CreateBank(ctx, folderID, title, problems)
	if err != nil {
		l.fail("create bank", err, "folder_id", folderID)
		return nil, err
	}
	l.logger.Info("bank created",
		"bank_id", bank.ID,
		"folder_id", folderID,
		"problems", len(bank.Problems),
	)
	return bank, nil
}

func (l *Library) SaveImportedBank(ctx context.Context, bank *questionbank.QuestionBank) (*questionbank.QuestionBank, error) {
	saved, err := l.backend.SaveImportedBank(ctx, bank)
	if err != nil {
		l.fail("save imported bank", err, "bank_id", bank.ID)
	}
	return saved, err
}

func (l *Library) DeleteBank(ctx context.Context, bankID string) error {
	if err := l.backend.DeleteBank(ctx, bankID); err != nil {
		l.fail("delete bank", err, "bank_id", bankID)
		return err
	}
	l.logger.Info("bank deleted", "bank_id", bankID)
	return nil
}

// fail logs a backend failure. Missing entities are routine and stay at
// debug level.
func (l *Library) fail(op string, err error, attrs ...any) {
	attrs = append(attrs, "op", op, "mode", l.mode, "error", err)
	if errors.Is(err, store.ErrNotFound) {
		l.logger.Debug("backend lookup missed", attrs...)
		return
	}
	l.logger.Warn("backend operation failed", attrs...)
}
