// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pytutor-ai/backend/internal/auth"
	"github.com/pytutor-ai/backend/internal/domain/questionbank"
	"github.com/pytutor-ai/backend/internal/grader"
	"github.com/pytutor-ai/backend/internal/infrastructure/config"
	"github.com/pytutor-ai/backend/internal/library"
	"github.com/pytutor-ai/backend/internal/service"
	"github.com/pytutor-ai/backend/internal/store"
)

// maxBodyBytes bounds JSON request bodies. Share tokens carry whole banks.
const maxBodyBytes = 8 << 20

// Dependencies are the collaborators the HTTP handlers need.
type Dependencies struct {
	Library    *library.Library
	Importer   *library.Importer
	Grading    *service.GradingService
	Extraction *service.ExtractionService

	// Session is the process identity used by local mode sign-in.
	Session *auth.Session
	// Resolver answers /auth/me. In remote mode it reads the request context.
	Resolver auth.Resolver
	// Verifier checks bearer tokens in remote mode; nil disables them.
	Verifier *auth.Verifier

	ShareBaseURL string
}

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	Dependencies
	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(deps Dependencies, logger *slog.Logger) *Handler {
	return &Handler{
		Dependencies: deps,
		logger:       logger,
	}
}

func (h *Handler) mode() config.Mode {
	return h.Library.Mode()
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error" example:"bank not found"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// ============================================================================
// Request validation
// ============================================================================

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validatable is implemented by requests with rules struct tags cannot express.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON body into v and validates it. It writes
// a 400 and returns false when the request is unusable.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := validate.Struct(v); err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	if vv, ok := v.(validatable); ok {
		if err := vv.Validate(); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return false
		}
	}
	return true
}

// validationMessage turns the first validator failure into "field is rule".
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]

	// Drop the struct name: "CreateBankRequest.problems[0].id" -> "problems[0].id".
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min", "max":
		return fmt.Sprintf("%s must have %s %s", field, fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

// ============================================================================
// Error mapping
// ============================================================================

// handleError writes the response for err and returns true, or returns
// false when err is nil. entity names what was not found.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error, entity string) bool {
	if err == nil {
		return false
	}

	var (
		gradeErr   *grader.GradeError
		extractErr *grader.ExtractError
	)

	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, auth.ErrUnauthorized.Error())
	case errors.Is(err, library.ErrImportFailed):
		h.logError(r, "import failed", err)
		respondError(w, http.StatusBadGateway, library.ErrImportFailed.Error())
	case errors.Is(err, library.ErrInvalidLink):
		respondError(w, http.StatusBadRequest, library.ErrInvalidLink.Error())
	case errors.Is(err, questionbank.ErrEmptyTitle),
		errors.Is(err, questionbank.ErrDuplicateProblem),
		errors.Is(err, questionbank.ErrInvalidID),
		errors.Is(err, service.ErrNotPDF):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, entityNotFound(err, entity))
	case errors.Is(err, service.ErrNoProblems):
		respondError(w, http.StatusUnprocessableEntity, service.ErrNoProblems.Error())
	case errors.Is(err, store.ErrUnavailable):
		h.logError(r, "storage unavailable", err)
		respondError(w, http.StatusServiceUnavailable, "action failed")
	case errors.As(err, &gradeErr), errors.As(err, &extractErr):
		h.logError(r, "ai collaborator failed", err)
		respondError(w, http.StatusBadGateway, err.Error())
	default:
		h.logError(r, "unexpected error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

// entityNotFound prefers the wrapped message ("problem \"3\": not found")
// when err carries one.
func entityNotFound(err error, entity string) string {
	if err != store.ErrNotFound {
		return err.Error()
	}
	return entity + " not found"
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	h.logger.Error(msg,
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", RequestIDFrom(r.Context()),
	)
}
