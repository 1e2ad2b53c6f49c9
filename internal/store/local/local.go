// Package local implements store.Backend on a single-device key/value store.
// Folders and banks are each kept as one JSON blob; every mutation reads the
// whole collection, changes it and writes it back.
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pytutor-ai/backend/internal/domain/folder"
	"github.com/pytutor-ai/backend/internal/domain/questionbank"
	"github.com/pytutor-ai/backend/internal/store"
)

const (
	FoldersKey = "pytutor_folders"
	BanksKey   = "pytutor_banks"
)

// Backend stores folders and banks under FoldersKey and BanksKey.
type Backend struct {
	kv store.KV

	// mu serializes read-modify-write cycles within this process.
	mu sync.Mutex
}

// Compile-time check: *Backend satisfies store.Backend.
var _ store.Backend = (*Backend)(nil)

// New returns a Backend over kv.
func New(kv store.KV) *Backend {
	return &Backend{kv: kv}
}

// ============================================================================
// Folders
// ============================================================================

func (b *Backend) ListFolders(ctx context.Context) ([]*folder.Folder, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loadFolders(ctx)
}

func (b *Backend) CreateFolder(ctx context.Context, name, description string) (*folder.Folder, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	folders, err := b.loadFolders(ctx)
	if err != nil {
		return nil, err
	}

	f := folder.New(name, description)
	if err := b.saveFolders(ctx, append(folders, f)); err != nil {
		return nil, err
	}
	return f, nil
}

func (b *Backend) EnsureImportFolder(ctx context.Context) (*folder.Folder, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ensureImportFolder(ctx)
}

// ensureImportFolder prepends the imported folder so it lists first.
func (b *Backend) ensureImportFolder(ctx context.Context) (*folder.Folder, error) {
	folders, err := b.loadFolders(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range folders {
		if f.IsImported() {
			return f, nil
		}
	}

	f := folder.NewImported()
	if err := b.saveFolders(ctx, append([]*folder.Folder{f}, folders...)); err != nil {
		return nil, err
	}
	return f, nil
}

// loadFolders seeds the default folders the first time the store is read.
func (b *Backend) loadFolders(ctx context.Context) ([]*folder.Folder, error) {
	var folders []*folder.Folder
	ok, err := b.load(ctx, FoldersKey, &folders)
	if err != nil {
		return nil, err
	}
	if !ok {
		folders = folder.Defaults()
		if err := b.saveFolders(ctx, folders); err != nil {
			return nil, err
		}
	}
	if folders == nil {
		folders = []*folder.Folder{}
	}
	return folders, nil
}

func (b *Backend) saveFolders(ctx context.Context, folders []*folder.Folder) error {
	return b.save(ctx, FoldersKey, folders)
}

// ============================================================================
// Banks
// ============================================================================

func (b *Backend) ListBanksByFolder(ctx context.Context, folderID string) ([]*questionbank.QuestionBank, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	all, err := b.loadBanks(ctx)
	if err != nil {
		return nil, err
	}

	banks := make([]*questionbank.QuestionBank, 0)
	for _, bank := range all {
		if bank.FolderID == folderID {
			banks = append(banks, bank)
		}
	}
	questionbank.SortNewestFirst(banks)
	return banks, nil
}

func (b *Backend) GetBank(ctx context.Context, bankID string) (*questionbank.QuestionBank, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	all, err := b.loadBanks(ctx)
	if err != nil {
		return nil, err
	}
	for _, bank := range all {
		if bank.ID == bankID {
			return bank, nil
		}
	}
	return nil, store.ErrNotFound
}

func (b *Backend) CreateBank(ctx context.Context, folderID, title string, problems []questionbank.Problem) (*questionbank.QuestionBank, error) {
	bank := questionbank.New(folderID, title, problems)
	if err := bank.Validate(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	folders, err := b.loadFolders(ctx)
	if err != nil {
		return nil, err
	}
	if !containsFolder(folders, folderID) {
		return nil, fmt.Errorf("folder %q: %w", folderID, store.ErrNotFound)
	}

	all, err := b.loadBanks(ctx)
	if err != nil {
		return nil, err
	}
	if err := b.saveBanks(ctx, append(all, bank)); err != nil {
		return nil, err
	}
	return bank, nil
}

// SaveImportedBank overwrites a stored bank with the same id in place, or
// appends the bank when the id is new.
func (b *Backend) SaveImportedBank(ctx context.Context, bank *questionbank.QuestionBank) (*questionbank.QuestionBank, error) {
	if err := bank.Validate(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	importFolder, err := b.ensureImportFolder(ctx)
	if err != nil {
		return nil, err
	}

	imported := *bank
	imported.MoveTo(importFolder.ID)

	all, err := b.loadBanks(ctx)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i, existing := range all {
		if existing.ID == imported.ID {
			all[i] = &imported
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, &imported)
	}

	if err := b.saveBanks(ctx, all); err != nil {
		return nil, err
	}
	return &imported, nil
}

func (b *Backend) DeleteBank(ctx context.Context, bankID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	all, err := b.loadBanks(ctx)
	if err != nil {
		return err
	}

	kept := make([]*questionbank.QuestionBank, 0, len(all))
	for _, bank := range all {
		if bank.ID != bankID {
			kept = append(kept, bank)
		}
	}
	if len(kept) == len(all) {
		return nil
	}
	return b.saveBanks(ctx, kept)
}

func (b *Backend) loadBanks(ctx context.Context) ([]*questionbank.QuestionBank, error) {
	var banks []*questionbank.QuestionBank
	if _, err := b.load(ctx, BanksKey, &banks); err != nil {
		return nil, err
	}
	return banks, nil
}

func (b *Backend) saveBanks(ctx context.Context, banks []*questionbank.QuestionBank) error {
	return b.save(ctx, BanksKey, banks)
}

// ============================================================================
// Blob helpers
// ============================================================================

func (b *Backend) load(ctx context.Context, key string, v any) (bool, error) {
	data, ok, err := b.kv.Get(ctx, key)
	if err != nil {
		return false, store.Unavailable("read "+key, err)
	}
	if !ok || data == "" {
		return ok, nil
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (b *Backend) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := b.kv.Set(ctx, key, string(data)); err != nil {
		return store.Unavailable("write "+key, err)
	}
	return nil
}

func containsFolder(folders []*folder.Folder, folderID string) bool {
	for _, f := range folders {
		if f.ID == folderID {
			return true
		}
	}
	return false
}
