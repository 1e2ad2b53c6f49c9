package library

import (
	"context"
	"log/slog"

	"github.com/pytutor-ai/backend/internal/domain/folder"
	"github.com/pytutor-ai/backend/internal/domain/questionbank"
	"github.com/pytutor-ai/backend/internal/share"
)

// ImportResult is what the caller needs to show the imported bank.
type ImportResult struct {
	Bank    *questionbank.QuestionBank `json:"bank"`
	Folders []*folder.Folder           `json:"folders"`
}

// Importer turns a share token into a bank in the imported folder.
type Importer struct {
	library *Library
	logger  *slog.Logger
}

func NewImporter(library *Library, logger *slog.Logger) *Importer {
	return &Importer{library: library, logger: logger}
}

// Import decodes token and stores the bank it carries. An undecodable token
// yields ErrInvalidLink and writes nothing. Persistence failures yield an
// *ImportError. Importing the same token twice leaves a single bank.
func (im *Importer) Import(ctx context.Context, token string) (*ImportResult, error) {
	bank := share.Decode(token)
	if bank == nil {
		im.logger.Info("share link rejected", "token_length", len(token))
		return nil, ErrInvalidLink
	}

	saved, err := im.library.SaveImportedBank(ctx, bank)
	if err != nil {
		return nil, &ImportError{Step: "save bank", Err: err}
	}

	if _, err := im.library.EnsureImportFolder(ctx); err != nil {
		return nil, &ImportError{Step: "ensure folder", Err: err}
	}

	folders, err := im.library.ListFolders(ctx)
	if err != nil {
		return nil, &ImportError{Step: "refresh folders", Err: err}
	}

	im.logger.Info("bank imported",
		"bank_id", saved.ID,
		"title", saved.Title,
		"problems", len(saved.Problems),
	)
	return &ImportResult{Bank: saved, Folders: folders}, nil
}
