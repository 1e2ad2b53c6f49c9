package grader

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pytutor-ai/backend/internal/domain/questionbank"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"prose around", "Sure! {\"a\":{\"b\":2}} done", `{"a":{"b":2}}`},
		{"brace in string", `{"f":"use } here"}`, `{"f":"use } here"}`},
		{"escaped quote", `{"f":"say \"}\""}`, `{"f":"say \"}\""}`},
		{"none", "no json", ""},
		{"unterminated", `{"a":1`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.in); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	in := "```json\n[{\"id\":\"1\",\"title\":\"[x]\"}]\n```"
	want := `[{"id":"1","title":"[x]"}]`
	if got := extractJSONArray(in); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseResult(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *Result
		wantErr bool
	}{
		{
			name: "complete",
			raw:  `{"score": 85, "isCorrect": true, "feedback": "Good", "suggestedSolution": "print(1)"}`,
			want: &Result{Score: 85, IsCorrect: true, Feedback: "Good", SuggestedSolution: "print(1)"},
		},
		{
			name: "clamped high",
			raw:  `{"score": 140, "isCorrect": true, "feedback": "ok"}`,
			want: &Result{Score: 100, IsCorrect: true, Feedback: "ok"},
		},
		{
			name: "clamped low",
			raw:  `{"score": -3, "isCorrect": false, "feedback": "no"}`,
			want: &Result{Score: 0, IsCorrect: false, Feedback: "no"},
		},
		{
			name: "fractional",
			raw:  `{"score": 72.6, "isCorrect": false, "feedback": "close"}`,
			want: &Result{Score: 73, IsCorrect: false, Feedback: "close"},
		},
		{name: "missing feedback", raw: `{"score": 10, "isCorrect": false}`, wantErr: true},
		{name: "missing score", raw: `{"isCorrect": false, "feedback": "x"}`, wantErr: true},
		{name: "not json", raw: `I cannot grade this`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseResult(tt.raw)
			if tt.wantErr {
				var ge *GradeError
				if !errors.As(err, &ge) {
					t.Fatalf("expected *GradeError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseProblems(t *testing.T) {
	raw := `Here you go:
[
  {"id": "Q1", "title": " Sum ", "description": "Add two numbers"},
  {"id": "", "title": "Max", "description": "Largest"},
  {"id": "Q1", "title": "Dup", "description": "Repeated id"},
  {"id": "9", "title": "", "description": ""}
]`
	got, err := parseProblems(raw)
	if err != nil {
		t.Fatalf("parseProblems: %v", err)
	}
	want := []questionbank.Problem{
		{ID: "Q1", Title: "Sum", Description: "Add two numbers"},
		{ID: "2", Title: "Max", Description: "Largest"},
		{ID: "3", Title: "Dup", Description: "Repeated id"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("problems mismatch (-want +got):\n%s", diff)
	}
}

func TestParseProblems_Empty(t *testing.T) {
	for _, raw := range []string{"", "[]", "  "} {
		got, err := parseProblems(raw)
		if err != nil {
			t.Fatalf("parseProblems(%q): %v", raw, err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("parseProblems(%q): expected empty slice, got %#v", raw, got)
		}
	}

	if _, err := parseProblems("sorry, unreadable"); err == nil {
		t.Error("expected error for prose without an array")
	}
}

func TestFenced(t *testing.T) {
	got := fenced("x = '```'\n")
	want := "````python\nx = '```'\n````"
	if got != want {
		t.Errorf("fenced = %q, want %q", got, want)
	}
}
