package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/pytutor-ai/backend/internal/store"
	"github.com/pytutor-ai/backend/internal/store/remote"
)

// openPostgres connects to DATABASE_URL and skips the test when it is unset.
// Each test works in partitions of a fresh user id.
func openPostgres(t *testing.T) (*remote.Postgres, string) {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	pg, err := remote.OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("OpenPostgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Close() })
	return pg, "test-" + uuid.NewString()
}

func cleanup(t *testing.T, docs remote.DocumentStore, p remote.Partition) {
	t.Cleanup(func() {
		ctx := context.Background()
		all, err := docs.List(ctx, p)
		if err != nil {
			return
		}
		for _, d := range all {
			_ = docs.Delete(ctx, p, d.ID)
		}
	})
}

func ids(docs []remote.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.ID
	}
	return out
}

func TestPostgres_PutUpsertsInOneCall(t *testing.T) {
	pg, user := openPostgres(t)
	ctx := context.Background()
	p := remote.Partition{UserID: user, Collection: remote.Folders}
	cleanup(t, pg, p)

	err := pg.Put(ctx, p,
		remote.Document{ID: "f1", Body: json.RawMessage(`{"name":"one"}`)},
		remote.Document{ID: "f2", Body: json.RawMessage(`{"name":"two"}`)},
	)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	put(t, pg, p, "f1", map[string]string{"name": "renamed"})

	all, err := pg.List(ctx, p)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if diff := cmp.Diff([]string{"f1", "f2"}, ids(all)); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}

	doc, err := pg.Get(ctx, p, "f1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	var body map[string]string
	if err := json.Unmarshal(doc.Body, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["name"] != "renamed" {
		t.Errorf("expected upserted body, got %s", doc.Body)
	}
}

func TestPostgres_QueryByField(t *testing.T) {
	pg, user := openPostgres(t)
	ctx := context.Background()
	p := remote.Partition{UserID: user, Collection: remote.Banks}
	cleanup(t, pg, p)

	put(t, pg, p, "b2", map[string]string{"folderId": "f1", "title": "B"})
	put(t, pg, p, "b1", map[string]string{"folderId": "f1", "title": "A"})
	put(t, pg, p, "b3", map[string]string{"folderId": "f2", "title": "C"})

	got, err := pg.Query(ctx, p, "folderId", "f1")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if diff := cmp.Diff([]string{"b1", "b2"}, ids(got)); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}

	none, err := pg.Query(ctx, p, "folderId", "missing")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no matches, got %v", ids(none))
	}
}

func TestPostgres_PartitionsAndDelete(t *testing.T) {
	pg, user := openPostgres(t)
	ctx := context.Background()
	mine := remote.Partition{UserID: user, Collection: remote.Banks}
	theirs := remote.Partition{UserID: user + "-other", Collection: remote.Banks}
	cleanup(t, pg, mine)
	cleanup(t, pg, theirs)

	put(t, pg, mine, "b1", map[string]string{"folderId": "f1"})

	if _, err := pg.Get(ctx, theirs, "b1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected other user to see nothing, got %v", err)
	}

	if err := pg.Delete(ctx, mine, "b1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := pg.Delete(ctx, mine, "b1"); err != nil {
		t.Errorf("expected deleting a missing document to succeed, got %v", err)
	}
	if _, err := pg.Get(ctx, mine, "b1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
