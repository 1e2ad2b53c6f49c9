// internal/service/grading.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/pytutor-ai/backend/internal/domain/questionbank"
	"github.com/pytutor-ai/backend/internal/grader"
	"github.com/pytutor-ai/backend/internal/library"
	"github.com/pytutor-ai/backend/internal/store"
	"github.com/pytutor-ai/backend/internal/worker"
)

// Submission is one piece of code handed in for a problem.
type Submission struct {
	ProblemID string `json:"problemId" validate:"required"`
	Code      string `json:"code" validate:"required"`
}

// Outcome is the per-submission result of a batch. Exactly one of Result
// and Error is set.
type Outcome struct {
	ProblemID string         `json:"problemId"`
	Result    *grader.Result `json:"result,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// GradingService grades submissions against the problems stored in a bank.
type GradingService struct {
	library *library.Library
	grader  grader.Grader
	workers int
	logger  *slog.Logger
}

// NewGradingService creates a GradingService. Batches run on at most
// workers concurrent LLM calls.
func NewGradingService(lib *library.Library, g grader.Grader, workers int, logger *slog.Logger) *GradingService {
	if workers < 1 {
		workers = 1
	}
	return &GradingService{
		library: lib,
		grader:  g,
		workers: workers,
		logger:  logger,
	}
}

// GradeSubmission grades code for one problem of a stored bank.
func (gs *GradingService) GradeSubmission(ctx context.Context, bankID, problemID, code string) (*grader.Result, error) {
	bank, err := gs.library.GetBank(ctx, bankID)
	if err != nil {
		return nil, err
	}
	problem, ok := bank.Problem(problemID)
	if !ok {
		return nil, fmt.Errorf("problem %q: %w", problemID, store.ErrNotFound)
	}
	return gs.grade(ctx, bank.ID, problem, code)
}

// GradeBatch grades every submission against the same bank. A failing
// submission does not fail the batch: its Outcome carries the error.
// Outcomes are returned in submission order.
func (gs *GradingService) GradeBatch(ctx context.Context, bankID string, submissions []Submission) ([]Outcome, error) {
	bank, err := gs.library.GetBank(ctx, bankID)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, len(submissions))
	pool := worker.NewPool[Outcome](gs.workers, len(submissions))

	for i, sub := range submissions {
		pool.Submit(strconv.Itoa(i), func() Outcome {
			out := Outcome{ProblemID: sub.ProblemID}
			problem, ok := bank.Problem(sub.ProblemID)
			if !ok {
				out.Error = fmt.Sprintf("problem %q: %v", sub.ProblemID, store.ErrNotFound)
				return out
			}
			res, err := gs.grade(ctx, bank.ID, problem, sub.Code)
			if err != nil {
				out.Error = err.Error()
				return out
			}
			out.Result = res
			return out
		})
	}
	pool.Close()

	for r := range pool.Results() {
		i, _ := strconv.Atoi(r.JobID)
		outcomes[i] = r.Output
	}
	return outcomes, nil
}

func (gs *GradingService) grade(ctx context.Context, bankID string, problem questionbank.Problem, code string) (*grader.Result, error) {
	res, err := gs.grader.GradeCode(ctx, problem, code)
	if err != nil {
		gs.logger.Error("grading error",
			"bank_id", bankID,
			"problem_id", problem.ID,
			"error", err,
		)
		return nil, err
	}
	gs.logger.Info("submission graded",
		"bank_id", bankID,
		"problem_id", problem.ID,
		"score", res.Score,
		"correct", res.IsCorrect,
	)
	return res, nil
}
