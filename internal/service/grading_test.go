package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/pytutor-ai/backend/internal/domain/questionbank"
	"github.com/pytutor-ai/backend/internal/grader"
	"github.com/pytutor-ai/backend/internal/infrastructure/config"
	"github.com/pytutor-ai/backend/internal/library"
	"github.com/pytutor-ai/backend/internal/service"
	"github.com/pytutor-ai/backend/internal/store"
	"github.com/pytutor-ai/backend/internal/store/local"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLibrary(t *testing.T) *library.Library {
	t.Helper()
	kv, err := store.NewSQLite(filepath.Join(t.TempDir(), "service.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return library.New(config.ModeLocal, local.New(kv), discardLogger())
}

// stubGrader scores code by length and fails on code containing "boom".
type stubGrader struct {
	mu    sync.Mutex
	calls []string
}

func (g *stubGrader) GradeCode(_ context.Context, problem questionbank.Problem, code string) (*grader.Result, error) {
	g.mu.Lock()
	g.calls = append(g.calls, problem.ID)
	g.mu.Unlock()

	if strings.Contains(code, "boom") {
		return nil, &grader.GradeError{Reason: "model unreachable"}
	}
	return &grader.Result{Score: len(code), IsCorrect: len(code) > 5, Feedback: "ok " + problem.Title}, nil
}

func seedBank(t *testing.T, lib *library.Library) *questionbank.QuestionBank {
	t.Helper()
	bank, err := lib.CreateBank(context.Background(), "f1", "Week1", []questionbank.Problem{
		{ID: "1", Title: "Sum", Description: "Add"},
		{ID: "2", Title: "Max", Description: "Largest"},
	})
	if err != nil {
		t.Fatalf("CreateBank: %v", err)
	}
	return bank
}

func TestGradeSubmission(t *testing.T) {
	lib := newLibrary(t)
	bank := seedBank(t, lib)
	g := &stubGrader{}
	svc := service.NewGradingService(lib, g, 2, discardLogger())
	ctx := context.Background()

	res, err := svc.GradeSubmission(ctx, bank.ID, "2", "print(max(xs))")
	if err != nil {
		t.Fatalf("GradeSubmission: %v", err)
	}
	if res.Feedback != "ok Max" || !res.IsCorrect {
		t.Errorf("unexpected result %+v", res)
	}

	if _, err := svc.GradeSubmission(ctx, bank.ID, "99", "x"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown problem: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GradeSubmission(ctx, "missing", "1", "x"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown bank: expected ErrNotFound, got %v", err)
	}

	var ge *grader.GradeError
	if _, err := svc.GradeSubmission(ctx, bank.ID, "1", "boom"); !errors.As(err, &ge) {
		t.Errorf("expected *GradeError, got %v", err)
	}
}

func TestGradeBatch_PerSubmissionOutcomes(t *testing.T) {
	lib := newLibrary(t)
	bank := seedBank(t, lib)
	g := &stubGrader{}
	svc := service.NewGradingService(lib, g, 3, discardLogger())

	subs := []service.Submission{
		{ProblemID: "1", Code: "print(a + b)"},
		{ProblemID: "2", Code: "boom"},
		{ProblemID: "nope", Code: "pass"},
		{ProblemID: "2", Code: "x"},
	}
	outcomes, err := svc.GradeBatch(context.Background(), bank.ID, subs)
	if err != nil {
		t.Fatalf("GradeBatch: %v", err)
	}
	if len(outcomes) != len(subs) {
		t.Fatalf("expected %d outcomes, got %d", len(subs), len(outcomes))
	}

	for i, sub := range subs {
		if outcomes[i].ProblemID != sub.ProblemID {
			t.Errorf("outcome %d: expected problem %q, got %q", i, sub.ProblemID, outcomes[i].ProblemID)
		}
	}
	if outcomes[0].Result == nil || outcomes[0].Result.Score != len("print(a + b)") {
		t.Errorf("outcome 0: unexpected %+v", outcomes[0])
	}
	if outcomes[1].Result != nil || !strings.Contains(outcomes[1].Error, "model unreachable") {
		t.Errorf("outcome 1: expected grading error, got %+v", outcomes[1])
	}
	if outcomes[2].Result != nil || !strings.Contains(outcomes[2].Error, "not found") {
		t.Errorf("outcome 2: expected not found, got %+v", outcomes[2])
	}
	if outcomes[3].Result == nil || outcomes[3].Result.IsCorrect {
		t.Errorf("outcome 3: unexpected %+v", outcomes[3])
	}

	if len(g.calls) != 3 {
		t.Errorf("expected 3 grader calls, got %d", len(g.calls))
	}
}

func TestGradeBatch_UnknownBank(t *testing.T) {
	svc := service.NewGradingService(newLibrary(t), &stubGrader{}, 1, discardLogger())

	_, err := svc.GradeBatch(context.Background(), "missing", []service.Submission{{ProblemID: "1", Code: "x"}})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGradeBatch_Empty(t *testing.T) {
	lib := newLibrary(t)
	bank := seedBank(t, lib)
	svc := service.NewGradingService(lib, &stubGrader{}, 2, discardLogger())

	outcomes, err := svc.GradeBatch(context.Background(), bank.ID, nil)
	if err != nil {
		t.Fatalf("GradeBatch: %v", err)
	}
	if len(outcomes) != 0 {
		t.Errorf("expected no outcomes, got %d", len(outcomes))
	}
}
