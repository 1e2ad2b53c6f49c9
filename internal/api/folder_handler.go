package api

import (
	"net/http"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateFolderRequest struct {
	Name        string `json:"name" validate:"required,max=100" example:"期中考題庫"`
	Description string `json:"description,omitempty" validate:"max=500" example:"學校期中考考古題"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listFolders lists all folders.
// @Summary      List folders
// @Description  Returns every folder. An empty store is seeded with the default folders first.
// @Tags         Folders
// @Produce      json
// @Success      200  {array}   folder.Folder
// @Failure      401  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /folders [get]
func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.Library.ListFolders(r.Context())
	if h.handleError(w, r, err, "folder") {
		return
	}
	respondJSON(w, http.StatusOK, folders)
}

// createFolder creates a new folder.
// @Summary      Create a folder
// @Description  Create a new folder for grouping question banks.
// @Tags         Folders
// @Accept       json
// @Produce      json
// @Param        body  body      CreateFolderRequest  true  "Folder to create"
// @Success      201   {object}  folder.Folder
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse
// @Router       /folders [post]
func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	var req CreateFolderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	f, err := h.Library.CreateFolder(r.Context(), req.Name, req.Description)
	if h.handleError(w, r, err, "folder") {
		return
	}
	respondJSON(w, http.StatusCreated, f)
}

// ensureImportFolder returns the imported folder, creating it if needed.
// @Summary      Ensure the imported folder
// @Description  Returns the folder that receives shared banks, creating it on first use. Idempotent.
// @Tags         Folders
// @Produce      json
// @Success      200  {object}  folder.Folder
// @Failure      401  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /folders/imported [post]
func (h *Handler) ensureImportFolder(w http.ResponseWriter, r *http.Request) {
	f, err := h.Library.EnsureImportFolder(r.Context())
	if h.handleError(w, r, err, "folder") {
		return
	}
	respondJSON(w, http.StatusOK, f)
}
