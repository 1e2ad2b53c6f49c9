package questionbank

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pytutor-ai/backend/internal/domain/timestamp"
	"github.com/pytutor-ai/backend/internal/id"
)

// MaxIDLength bounds a bank id. Ids from share tokens are untrusted and every
// store must accept what Validate accepts.
const MaxIDLength = 128

var (
	ErrEmptyTitle       = errors.New("bank title cannot be empty")
	ErrDuplicateProblem = errors.New("duplicate problem id")
	ErrInvalidID        = errors.New("invalid bank id")
)

// Problem is one extracted exercise. Its ID is a short label such as "1" or
// "Q2" and is only unique inside its bank.
type Problem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// QuestionBank is an ordered set of problems that belongs to exactly one folder.
type QuestionBank struct {
	ID        string         `json:"id" validate:"required"`
	FolderID  string         `json:"folderId"`
	Title     string         `json:"title" validate:"required"`
	CreatedAt timestamp.Time `json:"createdAt"`
	Problems  []Problem      `json:"problems" validate:"required"`
}

// New creates a QuestionBank with a generated ID in the given folder.
func New(folderID, title string, problems []Problem) *QuestionBank {
	if problems == nil {
		problems = []Problem{}
	}
	return &QuestionBank{
		ID:        id.New(),
		FolderID:  folderID,
		Title:     title,
		CreatedAt: timestamp.Now(),
		Problems:  problems,
	}
}

// Validate checks the bank id, the title and problem id uniqueness.
func (qb *QuestionBank) Validate() error {
	if qb.ID == "" || len(qb.ID) > MaxIDLength {
		return fmt.Errorf("%w: length %d", ErrInvalidID, len(qb.ID))
	}
	if qb.Title == "" {
		return ErrEmptyTitle
	}
	seen := make(map[string]struct{}, len(qb.Problems))
	for _, p := range qb.Problems {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateProblem, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// MoveTo changes the owning folder. Only import and move operations use it.
func (qb *QuestionBank) MoveTo(folderID string) {
	qb.FolderID = folderID
}

// Problem returns the problem with the given id.
func (qb *QuestionBank) Problem(problemID string) (Problem, bool) {
	for _, p := range qb.Problems {
		if p.ID == problemID {
			return p, true
		}
	}
	return Problem{}, false
}

// SortNewestFirst orders banks by creation time, newest first. Banks created
// in the same millisecond keep their relative order.
func SortNewestFirst(banks []*QuestionBank) {
	sort.SliceStable(banks, func(i, j int) bool {
		return banks[i].CreatedAt.After(banks[j].CreatedAt)
	})
}
