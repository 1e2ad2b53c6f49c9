package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"

	"github.com/pytutor-ai/backend/internal/domain/questionbank"
	"github.com/pytutor-ai/backend/internal/grader"
	"github.com/pytutor-ai/backend/internal/library"
)

var (
	ErrNotPDF      = errors.New("file is not a PDF")
	ErrNoProblems  = errors.New("no problems found in PDF")
	pdfMagicPrefix = []byte("%PDF-")
)

// ExtractionService turns uploaded PDF problem sets into problems and banks.
type ExtractionService struct {
	library   *library.Library
	extractor grader.Extractor
	logger    *slog.Logger
}

func NewExtractionService(lib *library.Library, e grader.Extractor, logger *slog.Logger) *ExtractionService {
	return &ExtractionService{library: lib, extractor: e, logger: logger}
}

// Extract returns the problems found in pdf. An empty, non-nil slice means
// nothing was recognized.
func (es *ExtractionService) Extract(ctx context.Context, pdf []byte) ([]questionbank.Problem, error) {
	if !bytes.HasPrefix(pdf, pdfMagicPrefix) {
		return nil, ErrNotPDF
	}

	problems, err := es.extractor.ExtractProblems(ctx, pdf)
	if err != nil {
		es.logger.Error("extraction error", "size", len(pdf), "error", err)
		return nil, err
	}
	if problems == nil {
		problems = []questionbank.Problem{}
	}
	es.logger.Info("problems extracted", "size", len(pdf), "problems", len(problems))
	return problems, nil
}

// ExtractToBank extracts problems from pdf and stores them as a new bank in
// folderID. It returns ErrNoProblems rather than create an empty bank.
func (es *ExtractionService) ExtractToBank(ctx context.Context, folderID, title string, pdf []byte) (*questionbank.QuestionBank, error) {
	problems, err := es.Extract(ctx, pdf)
	if err != nil {
		return nil, err
	}
	if len(problems) == 0 {
		return nil, ErrNoProblems
	}
	return es.library.CreateBank(ctx, folderID, title, problems)
}
