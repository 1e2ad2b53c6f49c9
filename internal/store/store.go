package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/pytutor-ai/backend/internal/domain/folder"
	"github.com/pytutor-ai/backend/internal/domain/questionbank"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrUnavailable is the single category callers see for network and
	// storage failures. Match it with errors.Is.
	ErrUnavailable = errors.New("storage unavailable")
)

// Backend is the persistence contract shared by the local and remote
// implementations.
type Backend interface {
	// ListFolders seeds the default folders into an empty store first.
	ListFolders(ctx context.Context) ([]*folder.Folder, error)
	CreateFolder(ctx context.Context, name, description string) (*folder.Folder, error)
	// EnsureImportFolder is idempotent: it never creates a second imported folder.
	EnsureImportFolder(ctx context.Context) (*folder.Folder, error)

	// ListBanksByFolder returns only banks of folderID, newest first.
	ListBanksByFolder(ctx context.Context, folderID string) ([]*questionbank.QuestionBank, error)
	GetBank(ctx context.Context, bankID string) (*questionbank.QuestionBank, error)
	CreateBank(ctx context.Context, folderID, title string, problems []questionbank.Problem) (*questionbank.QuestionBank, error)
	// SaveImportedBank moves bank into the imported folder and upserts it by id.
	SaveImportedBank(ctx context.Context, bank *questionbank.QuestionBank) (*questionbank.QuestionBank, error)
	// DeleteBank is a no-op for an unknown id.
	DeleteBank(ctx context.Context, bankID string) error
}

// KV is a durable string key/value store.
type KV interface {
	// Get reports ok=false when key has never been set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// BackendError wraps a failure of the underlying store. It matches
// ErrUnavailable.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrUnavailable, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func (e *BackendError) Is(target error) bool {
	return target == ErrUnavailable
}

// Unavailable wraps err in a BackendError for op. A nil err stays nil.
func Unavailable(op string, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Op: op, Err: err}
}
