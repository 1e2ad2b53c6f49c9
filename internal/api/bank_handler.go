package api

import (
	"errors"
	"net/http"

	"github.com/pytutor-ai/backend/internal/domain/questionbank"
)

// ── Request / Response types ────────────────────────────────────────────────

type ProblemRequest struct {
	ID          string `json:"id" validate:"required" example:"1"`
	Title       string `json:"title" validate:"required" example:"兩數之和"`
	Description string `json:"description" example:"讀入兩個整數並輸出它們的和。"`
}

type CreateBankRequest struct {
	Title    string           `json:"title" validate:"required,max=200" example:"Week 1"`
	Problems []ProblemRequest `json:"problems" validate:"dive"`
}

func (r *CreateBankRequest) Validate() error {
	seen := make(map[string]bool, len(r.Problems))
	for _, p := range r.Problems {
		if seen[p.ID] {
			return errors.New("problem ids must be unique within a bank")
		}
		seen[p.ID] = true
	}
	return nil
}

func (r *CreateBankRequest) problems() []questionbank.Problem {
	problems := make([]questionbank.Problem, len(r.Problems))
	for i, p := range r.Problems {
		problems[i] = questionbank.Problem{ID: p.ID, Title: p.Title, Description: p.Description}
	}
	return problems
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listBanksByFolder returns the banks of a folder, newest first.
// @Summary      List banks in a folder
// @Description  Returns only the banks whose folderId matches, sorted by createdAt descending.
// @Tags         Banks
// @Produce      json
// @Param        folderID  path      string  true  "Folder ID"
// @Success      200       {array}   questionbank.QuestionBank
// @Failure      401       {object}  ErrorResponse
// @Failure      503       {object}  ErrorResponse
// @Router       /folders/{folderID}/banks [get]
func (h *Handler) listBanksByFolder(w http.ResponseWriter, r *http.Request) {
	banks, err := h.Library.ListBanksByFolder(r.Context(), r.PathValue("folderID"))
	if h.handleError(w, r, err, "folder") {
		return
	}
	respondJSON(w, http.StatusOK, banks)
}

// createBank creates a question bank in a folder.
// @Summary      Create a question bank
// @Description  Create a new question bank with its problems inside an existing folder.
// @Tags         Banks
// @Accept       json
// @Produce      json
// @Param        folderID  path      string             true  "Folder ID"
// @Param        body      body      CreateBankRequest  true  "Bank to create"
// @Success      201       {object}  questionbank.QuestionBank
// @Failure      400       {object}  ErrorResponse
// @Failure      401       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse  "folder not found"
// @Failure      503       {object}  ErrorResponse
// @Router       /folders/{folderID}/banks [post]
func (h *Handler) createBank(w http.ResponseWriter, r *http.Request) {
	var req CreateBankRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	bank, err := h.Library.CreateBank(r.Context(), r.PathValue("folderID"), req.Title, req.problems())
	if h.handleError(w, r, err, "folder") {
		return
	}
	respondJSON(w, http.StatusCreated, bank)
}

// getBank returns a single question bank.
// @Summary      Get a question bank
// @Description  Returns a question bank with all its problems.
// @Tags         Banks
// @Produce      json
// @Param        bankID  path      string  true  "Bank ID"
// @Success      200     {object}  questionbank.QuestionBank
// @Failure      401     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Failure      503     {object}  ErrorResponse
// @Router       /banks/{bankID} [get]
func (h *Handler) getBank(w http.ResponseWriter, r *http.Request) {
	bank, err := h.Library.GetBank(r.Context(), r.PathValue("bankID"))
	if h.handleError(w, r, err, "bank") {
		return
	}
	respondJSON(w, http.StatusOK, bank)
}

// deleteBank removes a question bank.
// @Summary      Delete a question bank
// @Description  Hard-deletes a bank. Deleting an unknown bank also succeeds.
// @Tags         Banks
// @Param        bankID  path  string  true  "Bank ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /banks/{bankID} [delete]
func (h *Handler) deleteBank(w http.ResponseWriter, r *http.Request) {
	if h.handleError(w, r, h.Library.DeleteBank(r.Context(), r.PathValue("bankID")), "bank") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
