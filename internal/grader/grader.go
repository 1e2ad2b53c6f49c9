package grader

import (
	"context"
	"fmt"

	"github.com/pytutor-ai/backend/internal/domain/questionbank"
)

// Extractor reads programming problems out of a PDF problem set.
// An empty slice means nothing was recognized.
type Extractor interface {
	ExtractProblems(ctx context.Context, pdf []byte) ([]questionbank.Problem, error)
}

// Grader evaluates a code submission for one problem.
// Implementations may call an LLM or return canned results (for tests).
type Grader interface {
	GradeCode(ctx context.Context, problem questionbank.Problem, code string) (*Result, error)
}

// Result is the verdict for one submission. Score is always within 0..100.
type Result struct {
	Score             int    `json:"score"`
	IsCorrect         bool   `json:"isCorrect"`
	Feedback          string `json:"feedback"`
	SuggestedSolution string `json:"suggestedSolution,omitempty"`
}

// GradeError is returned when grading fails so the caller can distinguish
// between "LLM returned a bad grade" and "LLM was unreachable."
type GradeError struct {
	Reason  string
	Wrapped error
}

func (e *GradeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("grading failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("grading failed: %s", e.Reason)
}

func (e *GradeError) Unwrap() error {
	return e.Wrapped
}

// ExtractError is returned when a PDF could not be turned into problems.
type ExtractError struct {
	Reason  string
	Wrapped error
}

func (e *ExtractError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("extraction failed: %s", e.Reason)
}

func (e *ExtractError) Unwrap() error {
	return e.Wrapped
}
