// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Share links land on the root: /?share=<token>
	mux.HandleFunc("GET /{$}", h.openShareLink)
	mux.HandleFunc("POST /import", h.importBank)

	// Identity
	mux.HandleFunc("GET /auth/me", h.me)
	mux.HandleFunc("POST /auth/signin", h.signIn)
	mux.HandleFunc("POST /auth/signout", h.signOut)

	// Folders
	mux.HandleFunc("GET /folders", h.listFolders)
	mux.HandleFunc("POST /folders", h.createFolder)
	mux.HandleFunc("POST /folders/imported", h.ensureImportFolder)
	mux.HandleFunc("GET /folders/{folderID}/banks", h.listBanksByFolder)
	mux.HandleFunc("POST /folders/{folderID}/banks", h.createBank)
	mux.HandleFunc("POST /folders/{folderID}/banks/extract", h.extractBank)

	// Banks
	mux.HandleFunc("GET /banks/{bankID}", h.getBank)
	mux.HandleFunc("DELETE /banks/{bankID}", h.deleteBank)
	mux.HandleFunc("GET /banks/{bankID}/share", h.shareBank)

	// Grading and extraction
	mux.HandleFunc("POST /banks/{bankID}/problems/{problemID}/grade", h.gradeProblem)
	mux.HandleFunc("POST /banks/{bankID}/grade", h.gradeBatch)
	mux.HandleFunc("POST /extract", h.extractProblems)
}

// NewRouter builds the full HTTP handler.
// Middleware chain: RequestID → Logging → CORS → Authenticate → mux.
func NewRouter(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	RegisterRoutes(mux, h)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return RequestID(Logging(logger)(CORS(Authenticate(h.Verifier)(mux))))
}
