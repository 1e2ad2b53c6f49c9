package questionbank_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/pytutor-ai/backend/internal/domain/questionbank"
	"github.com/pytutor-ai/backend/internal/domain/timestamp"
)

func TestNewQuestionBank(t *testing.T) {
	bank := questionbank.New("f1", "Week1", nil)

	if bank.Title != "Week1" {
		t.Errorf("expected title %q, got %q", "Week1", bank.Title)
	}
	if bank.FolderID != "f1" {
		t.Errorf("expected folder %q, got %q", "f1", bank.FolderID)
	}
	if bank.Problems == nil || len(bank.Problems) != 0 {
		t.Errorf("expected empty non-nil problems, got %#v", bank.Problems)
	}
	if bank.ID == "" {
		t.Error("expected non-empty ID")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		problems []questionbank.Problem
		wantErr  error
	}{
		{"valid", "Week1", []questionbank.Problem{{ID: "1"}, {ID: "2"}}, nil},
		{"no problems", "Week1", nil, nil},
		{"empty title", "", nil, questionbank.ErrEmptyTitle},
		{"duplicate problem", "Week1", []questionbank.Problem{{ID: "1"}, {ID: "1"}}, questionbank.ErrDuplicateProblem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := questionbank.New("f1", tt.title, tt.problems).Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_BankID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"empty", "", true},
		{"at limit", strings.Repeat("a", questionbank.MaxIDLength), false},
		{"over limit", strings.Repeat("a", questionbank.MaxIDLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank := questionbank.New("f1", "Week1", nil)
			bank.ID = tt.id

			err := bank.Validate()
			if tt.wantErr && !errors.Is(err, questionbank.ErrInvalidID) {
				t.Errorf("expected ErrInvalidID, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestProblemLookup(t *testing.T) {
	bank := questionbank.New("f1", "Week1", []questionbank.Problem{
		{ID: "1", Title: "Sum"},
		{ID: "Q2", Title: "Reverse"},
	})

	p, ok := bank.Problem("Q2")
	if !ok {
		t.Fatal("expected problem Q2 to be found")
	}
	if p.Title != "Reverse" {
		t.Errorf("expected title %q, got %q", "Reverse", p.Title)
	}

	if _, ok := bank.Problem("missing"); ok {
		t.Error("expected missing problem not to be found")
	}
}

func TestMoveTo(t *testing.T) {
	bank := questionbank.New("f1", "Week1", nil)
	bank.MoveTo("f2")

	if bank.FolderID != "f2" {
		t.Errorf("expected folder %q, got %q", "f2", bank.FolderID)
	}
}

func TestSortNewestFirst(t *testing.T) {
	banks := []*questionbank.QuestionBank{
		{ID: "old", CreatedAt: timestamp.FromMillis(1000)},
		{ID: "new", CreatedAt: timestamp.FromMillis(3000)},
		{ID: "mid-a", CreatedAt: timestamp.FromMillis(2000)},
		{ID: "mid-b", CreatedAt: timestamp.FromMillis(2000)},
	}

	questionbank.SortNewestFirst(banks)

	want := []string{"new", "mid-a", "mid-b", "old"}
	for i, id := range want {
		if banks[i].ID != id {
			t.Errorf("position %d: expected %q, got %q", i, id, banks[i].ID)
		}
	}
}
