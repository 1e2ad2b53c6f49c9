package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/pytutor-ai/backend/internal/auth"
	"github.com/pytutor-ai/backend/internal/domain/folder"
	"github.com/pytutor-ai/backend/internal/domain/questionbank"
	"github.com/pytutor-ai/backend/internal/library"
)

func setDevEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_MODE", "dev")
	t.Setenv("LOCAL_DB_PATH", filepath.Join(t.TempDir(), "cli.db"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FILE", "")
	t.Setenv("LLM_PROVIDER", "openai")
}

// run executes the root command and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	tokenFlag = ""
	jsonOutput = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("pytutor %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func decode[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return v
}

func TestFoldersList_SeedsDefaults(t *testing.T) {
	setDevEnv(t)

	folders := decode[[]*folder.Folder](t, mustRun(t, "folders", "list", "--json"))
	if len(folders) != 3 {
		t.Fatalf("got %d folders, want 3", len(folders))
	}
}

func TestBankLifecycle(t *testing.T) {
	setDevEnv(t)

	f := decode[*folder.Folder](t, mustRun(t, "folders", "create", "Week 1", "--json"))

	problems := []questionbank.Problem{
		{ID: "1", Title: "Sum", Description: "Add two numbers"},
		{ID: "2", Title: "Max", Description: "Largest of three"},
	}
	data, _ := json.Marshal(problems)
	path := filepath.Join(t.TempDir(), "loops.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	bank := decode[*questionbank.QuestionBank](t,
		mustRun(t, "banks", "create", f.ID, "--problems", path, "--json"))
	if bank.Title != "loops" {
		t.Errorf("title = %q, want file name", bank.Title)
	}
	if diff := cmp.Diff(problems, bank.Problems); diff != "" {
		t.Errorf("problems mismatch (-want +got):\n%s", diff)
	}

	listed := decode[[]*questionbank.QuestionBank](t, mustRun(t, "banks", "list", f.ID, "--json"))
	if len(listed) != 1 || listed[0].ID != bank.ID {
		t.Fatalf("list = %+v, want the created bank", listed)
	}

	link := strings.TrimSpace(mustRun(t, "share", bank.ID))
	if !strings.Contains(link, "?share=") {
		t.Fatalf("link %q has no share parameter", link)
	}

	res := decode[*library.ImportResult](t, mustRun(t, "import", link, "--json"))
	if res.Bank.FolderID != folder.ImportedID {
		t.Errorf("imported into %q, want %q", res.Bank.FolderID, folder.ImportedID)
	}
	if res.Bank.ID != bank.ID {
		t.Errorf("imported id = %q, want %q", res.Bank.ID, bank.ID)
	}

	mustRun(t, "banks", "delete", bank.ID)
	if _, err := run(t, "banks", "show", bank.ID); err == nil {
		t.Error("show after delete succeeded")
	}
}

func TestBanksCreate_NeedsOneSource(t *testing.T) {
	setDevEnv(t)

	if _, err := run(t, "banks", "create", "f1", "--problems", "", "--pdf", ""); err == nil {
		t.Error("create with no source succeeded")
	}
}

func TestImport_InvalidLink(t *testing.T) {
	setDevEnv(t)

	_, err := run(t, "import", "http://localhost:8080/?share=!!not-a-bank!!")
	if !errors.Is(err, library.ErrInvalidLink) {
		t.Fatalf("err = %v, want ErrInvalidLink", err)
	}
}

func TestProdMode_RequiresToken(t *testing.T) {
	t.Setenv("APP_MODE", "prod")
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("DOCSTORE", "memory")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FILE", "")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("PYTUTOR_TOKEN", "")

	if _, err := run(t, "folders", "list"); !errors.Is(err, auth.ErrUnauthorized) {
		t.Fatalf("no token: err = %v, want ErrUnauthorized", err)
	}
	if _, err := run(t, "folders", "list", "--token", "garbage"); !errors.Is(err, auth.ErrUnauthorized) {
		t.Fatalf("bad token: err = %v, want ErrUnauthorized", err)
	}

	token := strings.TrimSpace(mustRun(t, "token", "student-42", "--ttl", time.Hour.String()))
	folders := decode[[]*folder.Folder](t, mustRun(t, "folders", "list", "--token", token, "--json"))
	if len(folders) != 3 {
		t.Fatalf("got %d folders, want 3", len(folders))
	}
}
