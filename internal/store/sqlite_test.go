package store_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/pytutor-ai/backend/internal/store"
)

func newKV(t *testing.T) *store.SQLiteKV {
	t.Helper()
	kv, err := store.NewSQLite(filepath.Join(t.TempDir(), "nested", "pytutor.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestSQLiteKV_GetMissing(t *testing.T) {
	kv := newKV(t)

	_, ok, err := kv.Get(context.Background(), "pytutor_folders")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected missing key")
	}
}

func TestSQLiteKV_SetOverwrites(t *testing.T) {
	kv := newKV(t)
	ctx := context.Background()

	if err := kv.Set(ctx, "k", "first"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set(ctx, "k", "第二"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || got != "第二" {
		t.Errorf("expected %q, got %q (ok=%v)", "第二", got, ok)
	}
}

func TestSQLiteKV_EmptyValueIsPresent(t *testing.T) {
	kv := newKV(t)
	ctx := context.Background()

	if err := kv.Set(ctx, "k", ""); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_, ok, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Error("expected empty value to count as present")
	}
}

func TestSQLiteKV_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pytutor.db")
	ctx := context.Background()

	kv, err := store.NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	if err := kv.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	reopened, err := store.NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get(ctx, "k")
	if err != nil || !ok || got != "v" {
		t.Errorf("expected persisted value, got %q ok=%v err=%v", got, ok, err)
	}
}

func TestBackendError(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := store.Unavailable("list folders", cause)

	if !errors.Is(err, store.ErrUnavailable) {
		t.Error("expected error to match ErrUnavailable")
	}
	if !errors.Is(err, cause) {
		t.Error("expected error to unwrap to its cause")
	}
	var be *store.BackendError
	if !errors.As(err, &be) || be.Op != "list folders" {
		t.Errorf("expected BackendError with op, got %#v", err)
	}

	if store.Unavailable("noop", nil) != nil {
		t.Error("expected nil for nil cause")
	}
}
