package api

import (
	"net/http"
	"net/url"

	"github.com/pytutor-ai/backend/internal/share"
)

// ── Request / Response types ────────────────────────────────────────────────

type ShareResponse struct {
	Token string `json:"token" example:"eyJpZCI6ImIxIiwidGl0bGUiOiJXZWVrMSJ9"`
	URL   string `json:"url" example:"https://pytutor.example/?share=eyJpZCI6ImIxIiwidGl0bGUiOiJXZWVrMSJ9"`
}

type ImportRequest struct {
	// Token is either the bare token or a full share URL.
	Token string `json:"token" validate:"required"`
}

// IndexResponse is returned by the root route when no share link is given.
type IndexResponse struct {
	Service string `json:"service" example:"pytutor"`
	Mode    string `json:"mode" example:"local"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// shareBank encodes a bank into a share token and link.
// @Summary      Share a question bank
// @Description  Returns a self-contained token and the link that imports the bank when opened.
// @Tags         Sharing
// @Produce      json
// @Param        bankID  path      string  true  "Bank ID"
// @Success      200     {object}  ShareResponse
// @Failure      401     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse  "sharing unavailable"
// @Router       /banks/{bankID}/share [get]
func (h *Handler) shareBank(w http.ResponseWriter, r *http.Request) {
	bank, err := h.Library.GetBank(r.Context(), r.PathValue("bankID"))
	if h.handleError(w, r, err, "bank") {
		return
	}

	token := share.Encode(bank)
	if token == "" {
		respondError(w, http.StatusInternalServerError, "sharing unavailable")
		return
	}
	respondJSON(w, http.StatusOK, ShareResponse{
		Token: token,
		URL:   share.Link(h.ShareBaseURL, bank),
	})
}

// importBank imports a shared bank.
// @Summary      Import a shared bank
// @Description  Decodes a share token (or link) and stores the bank in the imported folder, replacing an earlier import of the same bank.
// @Tags         Sharing
// @Accept       json
// @Produce      json
// @Param        body  body      ImportRequest  true  "Token or share link"
// @Success      200   {object}  library.ImportResult
// @Failure      400   {object}  ErrorResponse  "invalid share link"
// @Failure      401   {object}  ErrorResponse
// @Failure      502   {object}  ErrorResponse  "import failed"
// @Router       /import [post]
func (h *Handler) importBank(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.Importer.Import(r.Context(), share.TokenFromURL(req.Token))
	if h.handleError(w, r, err, "bank") {
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// openShareLink handles a share link opened in the browser. On success it
// redirects to the imported bank, which also drops the token from the
// visible address.
// @Summary      Open a share link
// @Description  With ?share=<token>, imports the bank and redirects to it. Without it, describes the service.
// @Tags         Sharing
// @Produce      json
// @Param        share  query     string  false  "Share token"
// @Success      200    {object}  IndexResponse
// @Success      303
// @Failure      400    {object}  ErrorResponse  "invalid share link"
// @Failure      401    {object}  ErrorResponse
// @Failure      502    {object}  ErrorResponse  "import failed"
// @Router       / [get]
func (h *Handler) openShareLink(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get(share.QueryParam)
	if token == "" {
		respondJSON(w, http.StatusOK, IndexResponse{Service: "pytutor", Mode: string(h.mode())})
		return
	}

	res, err := h.Importer.Import(r.Context(), token)
	if err != nil {
		h.handleError(w, r, err, "bank")
		return
	}

	http.Redirect(w, r, "/banks/"+url.PathEscape(res.Bank.ID), http.StatusSeeOther)
}
