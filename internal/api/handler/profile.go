package handler

import (
	"net/http"

	"github.com/noirbureau/swanhunt/internal/api/middleware"
	"github.com/noirbureau/swanhunt/internal/api/response"
	"github.com/noirbureau/swanhunt/internal/services/gamedata"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	gameData *gamedata.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(gameData *gamedata.Service) *ProfileHandler {
	return &ProfileHandler{gameData: gameData}
}

// GetMe handles GET /api/v1/profiles/me
func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	profile, err := h.gameData.GetProfile(r.Context(), sess.Email)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, profile)
}

// List handles GET /api/v1/admin/profiles
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.gameData.ListProfiles(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, profiles)
}
