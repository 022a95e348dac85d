package handler

import (
	"encoding/json"
	"net/http"

	"github.com/noirbureau/swanhunt/internal/api/middleware"
	"github.com/noirbureau/swanhunt/internal/api/request"
	"github.com/noirbureau/swanhunt/internal/api/response"
	"github.com/noirbureau/swanhunt/internal/services/auth"
	"github.com/noirbureau/swanhunt/internal/services/gamedata"
	"github.com/noirbureau/swanhunt/internal/services/session"
)

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	authService *auth.Service
	gameData    *gamedata.Service
	sessions    *session.Manager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service, gameData *gamedata.Service, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		gameData:    gameData,
		sessions:    sessions,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Email == "" {
		WriteError(w, NewInvalidRequestError("email is required"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}
	if req.Password != req.PasswordConfirm {
		WriteError(w, NewValidationError("passwords do not match"))
		return
	}

	profile, err := h.authService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	sess := h.sessions.Create(profile.Email, profile.Name)
	response.JSON(w, http.StatusCreated, response.AuthResponse{
		Token:   sess.Token,
		Profile: profile,
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Email == "" {
		WriteError(w, NewInvalidRequestError("email is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	profile, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	profile, err = h.gameData.LogLogin(r.Context(), profile.Email, profile.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	sess := h.sessions.Create(profile.Email, profile.Name)
	response.JSON(w, http.StatusOK, response.AuthResponse{
		Token:   sess.Token,
		Profile: profile,
	})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	h.sessions.Invalidate(sess.Token)

	if err := h.authService.Logout(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
