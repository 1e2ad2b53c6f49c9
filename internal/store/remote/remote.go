// Package remote implements store.Backend on a per-user document store.
// Folders and banks are independent documents, so each operation touches
// only the documents it needs.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/pytutor-ai/backend/internal/auth"
	"github.com/pytutor-ai/backend/internal/domain/folder"
	"github.com/pytutor-ai/backend/internal/domain/questionbank"
	"github.com/pytutor-ai/backend/internal/store"
)

// folderField is the JSON field banks are filtered on.
const folderField = "folderId"

// Backend partitions all data by the identity its Resolver returns.
type Backend struct {
	docs     DocumentStore
	identity auth.Resolver
}

// Compile-time check: *Backend satisfies store.Backend.
var _ store.Backend = (*Backend)(nil)

// New returns a Backend storing documents in docs on behalf of the identity
// resolved for each call.
func New(docs DocumentStore, identity auth.Resolver) *Backend {
	return &Backend{docs: docs, identity: identity}
}

// partitions resolves the caller and returns its folder and bank partitions.
// It fails with auth.ErrUnauthorized before any store access.
func (b *Backend) partitions(ctx context.Context) (folders, banks Partition, err error) {
	id, err := b.identity.Identity(ctx)
	if err != nil {
		return Partition{}, Partition{}, err
	}
	if id.UID == "" {
		return Partition{}, Partition{}, auth.ErrUnauthorized
	}
	return Partition{UserID: id.UID, Collection: Folders},
		Partition{UserID: id.UID, Collection: Banks},
		nil
}

// ============================================================================
// Folders
// ============================================================================

// ListFolders seeds the defaults into an empty partition with a single
// atomic write, so an interrupted seed never leaves a partial default set.
func (b *Backend) ListFolders(ctx context.Context) ([]*folder.Folder, error) {
	fp, _, err := b.partitions(ctx)
	if err != nil {
		return nil, err
	}

	docs, err := b.docs.List(ctx, fp)
	if err != nil {
		return nil, store.Unavailable("list folders", err)
	}

	if len(docs) == 0 {
		defaults := folder.Defaults()
		seed := make([]Document, len(defaults))
		for i, f := range defaults {
			if seed[i], err = toDocument(f.ID, f); err != nil {
				return nil, err
			}
		}
		if err := b.docs.Put(ctx, fp, seed...); err != nil {
			return nil, store.Unavailable("seed folders", err)
		}
		return defaults, nil
	}

	folders := make([]*folder.Folder, 0, len(docs))
	for _, d := range docs {
		var f folder.Folder
		if err := fromDocument(d, &f); err != nil {
			return nil, err
		}
		folders = append(folders, &f)
	}
	sort.SliceStable(folders, func(i, j int) bool {
		return folders[i].CreatedAt.After(folders[j].CreatedAt)
	})
	return folders, nil
}

func (b *Backend) CreateFolder(ctx context.Context, name, description string) (*folder.Folder, error) {
	fp, _, err := b.partitions(ctx)
	if err != nil {
		return nil, err
	}

	f := folder.New(name, description)
	if err := b.put(ctx, fp, f.ID, f, "create folder"); err != nil {
		return nil, err
	}
	return f, nil
}

func (b *Backend) EnsureImportFolder(ctx context.Context) (*folder.Folder, error) {
	fp, _, err := b.partitions(ctx)
	if err != nil {
		return nil, err
	}
	return b.ensureImportFolder(ctx, fp)
}

func (b *Backend) ensureImportFolder(ctx context.Context, fp Partition) (*folder.Folder, error) {
	doc, err := b.docs.Get(ctx, fp, folder.ImportedID)
	if err == nil {
		var f folder.Folder
		if err := fromDocument(*doc, &f); err != nil {
			return nil, err
		}
		return &f, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, store.Unavailable("get import folder", err)
	}

	f := folder.NewImported()
	if err := b.put(ctx, fp, f.ID, f, "create import folder"); err != nil {
		return nil, err
	}
	return f, nil
}

// ============================================================================
// Banks
// ============================================================================

func (b *Backend) ListBanksByFolder(ctx context.Context, folderID string) ([]*questionbank.QuestionBank, error) {
	_, bp, err := b.partitions(ctx)
	if err != nil {
		return nil, err
	}

	docs, err := b.docs.Query(ctx, bp, folderField, folderID)
	if err != nil {
		return nil, store.Unavailable("list banks", err)
	}

	banks := make([]*questionbank.QuestionBank, 0, len(docs))
	for _, d := range docs {
		var bank questionbank.QuestionBank
		if err := fromDocument(d, &bank); err != nil {
			return nil, err
		}
		if bank.FolderID == folderID {
			banks = append(banks, &bank)
		}
	}
	questionbank.SortNewestFirst(banks)
	return banks, nil
}

func (b *Backend) GetBank(ctx context.Context, bankID string) (*questionbank.QuestionBank, error) {
	_, bp, err := b.partitions(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := b.docs.Get(ctx, bp, bankID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, store.Unavailable("get bank", err)
	}

	var bank questionbank.QuestionBank
	if err := fromDocument(*doc, &bank); err != nil {
		return nil, err
	}
	return &bank, nil
}

func (b *Backend) CreateBank(ctx context.Context, folderID, title string, problems []questionbank.Problem) (*questionbank.QuestionBank, error) {
	fp, bp, err := b.partitions(ctx)
	if err != nil {
		return nil, err
	}

	bank := questionbank.New(folderID, title, problems)
	if err := bank.Validate(); err != nil {
		return nil, err
	}

	if _, err := b.docs.Get(ctx, fp, folderID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("folder %q: %w", folderID, store.ErrNotFound)
		}
		return nil, store.Unavailable("get folder", err)
	}

	if err := b.put(ctx, bp, bank.ID, bank, "create bank"); err != nil {
		return nil, err
	}
	return bank, nil
}

// SaveImportedBank always upserts by the bank's own id.
func (b *Backend) SaveImportedBank(ctx context.Context, bank *questionbank.QuestionBank) (*questionbank.QuestionBank, error) {
	fp, bp, err := b.partitions(ctx)
	if err != nil {
		return nil, err
	}
	if err := bank.Validate(); err != nil {
		return nil, err
	}

	importFolder, err := b.ensureImportFolder(ctx, fp)
	if err != nil {
		return nil, err
	}

	imported := *bank
	imported.MoveTo(importFolder.ID)
	if err := b.put(ctx, bp, imported.ID, &imported, "save imported bank"); err != nil {
		return nil, err
	}
	return &imported, nil
}

func (b *Backend) DeleteBank(ctx context.Context, bankID string) error {
	_, bp, err := b.partitions(ctx)
	if err != nil {
		return err
	}
	if err := b.docs.Delete(ctx, bp, bankID); err != nil {
		return store.Unavailable("delete bank", err)
	}
	return nil
}

// ============================================================================
// Document helpers
// ============================================================================

func (b *Backend) put(ctx context.Context, p Partition, id string, v any, op string) error {
	doc, err := toDocument(id, v)
	if err != nil {
		return err
	}
	return store.Unavailable(op, b.docs.Put(ctx, p, doc))
}

func toDocument(id string, v any) (Document, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return Document{}, fmt.Errorf("encode document %s: %w", id, err)
	}
	return Document{ID: id, Body: body}, nil
}

func fromDocument(d Document, v any) error {
	if err := json.Unmarshal(d.Body, v); err != nil {
		return fmt.Errorf("decode document %s: %w", d.ID, err)
	}
	return nil
}
