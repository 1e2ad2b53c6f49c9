package api

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

const (
	maxPDFBytes    = 20 << 20
	pdfFormField   = "file"
	titleFormField = "title"
)

// readPDF reads the uploaded PDF and its filename from a multipart form.
func readPDF(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPDFBytes+1<<20)
	if err := r.ParseMultipartForm(maxPDFBytes); err != nil {
		respondError(w, http.StatusBadRequest, "expected a multipart form with a PDF file")
		return nil, "", false
	}

	file, header, err := r.FormFile(pdfFormField)
	if err != nil {
		respondError(w, http.StatusBadRequest, pdfFormField+" is required")
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPDFBytes+1))
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read upload")
		return nil, "", false
	}
	if len(data) > maxPDFBytes {
		respondError(w, http.StatusRequestEntityTooLarge, "PDF is too large")
		return nil, "", false
	}
	return data, header.Filename, true
}

// extractProblems reads problems out of an uploaded PDF.
// @Summary      Extract problems from a PDF
// @Description  Sends the PDF to the AI extractor and returns the problems it found. An empty list means nothing was recognized.
// @Tags         Extraction
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF problem set"
// @Success      200   {array}   questionbank.Problem
// @Failure      400   {object}  ErrorResponse
// @Failure      502   {object}  ErrorResponse  "extraction failed"
// @Router       /extract [post]
func (h *Handler) extractProblems(w http.ResponseWriter, r *http.Request) {
	pdf, _, ok := readPDF(w, r)
	if !ok {
		return
	}

	problems, err := h.Extraction.Extract(r.Context(), pdf)
	if h.handleError(w, r, err, "problem") {
		return
	}
	respondJSON(w, http.StatusOK, problems)
}

// extractBank creates a bank from an uploaded PDF.
// @Summary      Create a bank from a PDF
// @Description  Extracts the problems of the PDF and stores them as a new bank in the folder. The title defaults to the file name.
// @Tags         Extraction
// @Accept       multipart/form-data
// @Produce      json
// @Param        folderID  path      string  true   "Folder ID"
// @Param        file      formData  file    true   "PDF problem set"
// @Param        title     formData  string  false  "Bank title"
// @Success      201       {object}  questionbank.QuestionBank
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse  "folder not found"
// @Failure      422       {object}  ErrorResponse  "no problems found"
// @Failure      502       {object}  ErrorResponse  "extraction failed"
// @Router       /folders/{folderID}/banks/extract [post]
func (h *Handler) extractBank(w http.ResponseWriter, r *http.Request) {
	pdf, filename, ok := readPDF(w, r)
	if !ok {
		return
	}

	title := strings.TrimSpace(r.FormValue(titleFormField))
	if title == "" && filename != "" {
		title = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	bank, err := h.Extraction.ExtractToBank(r.Context(), r.PathValue("folderID"), title, pdf)
	if h.handleError(w, r, err, "folder") {
		return
	}
	respondJSON(w, http.StatusCreated, bank)
}
