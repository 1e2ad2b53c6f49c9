package api

import (
	"net/http"

	"github.com/pytutor-ai/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type GradeRequest struct {
	Code string `json:"code" validate:"required" example:"a, b = map(int, input().split())\nprint(a + b)"`
}

type GradeBatchRequest struct {
	Submissions []service.Submission `json:"submissions" validate:"required,min=1,max=50,dive"`
}

type GradeBatchResponse struct {
	BankID   string            `json:"bankId"`
	Outcomes []service.Outcome `json:"outcomes"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// gradeProblem grades one submission.
// @Summary      Grade a submission
// @Description  Sends the code and the problem to the AI grader and returns its verdict.
// @Tags         Grading
// @Accept       json
// @Produce      json
// @Param        bankID     path      string        true  "Bank ID"
// @Param        problemID  path      string        true  "Problem ID"
// @Param        body       body      GradeRequest  true  "Submitted code"
// @Success      200        {object}  grader.Result
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      502        {object}  ErrorResponse  "grading failed"
// @Router       /banks/{bankID}/problems/{problemID}/grade [post]
func (h *Handler) gradeProblem(w http.ResponseWriter, r *http.Request) {
	var req GradeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.Grading.GradeSubmission(r.Context(), r.PathValue("bankID"), r.PathValue("problemID"), req.Code)
	if h.handleError(w, r, err, "bank") {
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// gradeBatch grades several submissions concurrently.
// @Summary      Grade a batch
// @Description  Grades every submission against the bank. Failures are reported per submission.
// @Tags         Grading
// @Accept       json
// @Produce      json
// @Param        bankID  path      string             true  "Bank ID"
// @Param        body    body      GradeBatchRequest  true  "Submissions"
// @Success      200     {object}  GradeBatchResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /banks/{bankID}/grade [post]
func (h *Handler) gradeBatch(w http.ResponseWriter, r *http.Request) {
	var req GradeBatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	bankID := r.PathValue("bankID")
	outcomes, err := h.Grading.GradeBatch(r.Context(), bankID, req.Submissions)
	if h.handleError(w, r, err, "bank") {
		return
	}
	respondJSON(w, http.StatusOK, GradeBatchResponse{BankID: bankID, Outcomes: outcomes})
}
