package api

import (
	"net/http"

	"github.com/pytutor-ai/backend/internal/auth"
	"github.com/pytutor-ai/backend/internal/infrastructure/config"
)

// ── Request / Response types ────────────────────────────────────────────────

type SignInRequest struct {
	// Token is a bearer token issued by the identity provider. Local mode
	// ignores it and signs in the development user.
	Token string `json:"token,omitempty"`
}

type SignInResponse struct {
	Identity auth.Identity `json:"identity"`
	Token    string        `json:"token,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// me returns the signed-in identity.
// @Summary      Current identity
// @Description  Returns the identity requests run as, or 401 when nobody is signed in.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  auth.Identity
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/me [get]
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	id, err := h.Resolver.Identity(r.Context())
	if h.handleError(w, r, err, "identity") {
		return
	}
	respondJSON(w, http.StatusOK, id)
}

// signIn starts a session.
// @Summary      Sign in
// @Description  Local mode signs in the development user. Remote mode verifies the given token and returns its identity.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      SignInRequest  false  "Identity provider token (remote mode)"
// @Success      200   {object}  SignInResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /auth/signin [post]
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	if h.mode() == config.ModeLocal {
		h.Session.SignIn(auth.MockIdentity)
		h.logger.Info("signed in", "uid", auth.MockIdentity.UID, "mode", h.mode())
		respondJSON(w, http.StatusOK, SignInResponse{Identity: auth.MockIdentity})
		return
	}

	var req SignInRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.Token == "" || h.Verifier == nil {
		respondError(w, http.StatusUnauthorized, auth.ErrUnauthorized.Error())
		return
	}

	id, err := h.Verifier.Parse(req.Token)
	if h.handleError(w, r, err, "identity") {
		return
	}
	respondJSON(w, http.StatusOK, SignInResponse{Identity: id, Token: req.Token})
}

// signOut ends the session.
// @Summary      Sign out
// @Description  Clears the local session. Remote mode is stateless; clients drop their token.
// @Tags         Auth
// @Success      204
// @Router       /auth/signout [post]
func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	if h.mode() == config.ModeLocal {
		h.Session.SignOut()
		h.logger.Info("signed out", "mode", h.mode())
	}
	w.WriteHeader(http.StatusNoContent)
}
