package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/noirbureau/swanhunt/internal/api/middleware"
	"github.com/noirbureau/swanhunt/internal/api/request"
	"github.com/noirbureau/swanhunt/internal/api/response"
	"github.com/noirbureau/swanhunt/internal/model"
	"github.com/noirbureau/swanhunt/internal/services/gamedata"
)

// ClueHandler handles clue endpoints
type ClueHandler struct {
	gameData *gamedata.Service
}

// NewClueHandler creates a new clue handler
func NewClueHandler(gameData *gamedata.Service) *ClueHandler {
	return &ClueHandler{gameData: gameData}
}

// ListVisible handles GET /api/v1/clues, returning the caller's board
func (h *ClueHandler) ListVisible(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	clues, err := h.gameData.ListVisibleClues(r.Context(), sess.Email)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, clues)
}

// Add handles POST /api/v1/clues. Player-added clues carry the caller as
// author; targeting other players is a staff capability.
func (h *ClueHandler) Add(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	var req request.AddClueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Title == "" {
		WriteError(w, NewInvalidRequestError("title is required"))
		return
	}

	clue, err := h.gameData.AddClue(r.Context(), gamedata.AddClueParams{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
		DateFound:   req.DateFound,
		AddedBy:     sess.Email,
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, clue)
}

// ListAll handles GET /api/v1/admin/clues
func (h *ClueHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	clues, err := h.gameData.ListClues(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, clues)
}

// AddAsChief handles POST /api/v1/admin/clues
func (h *ClueHandler) AddAsChief(w http.ResponseWriter, r *http.Request) {
	var req request.AddClueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Title == "" {
		WriteError(w, NewInvalidRequestError("title is required"))
		return
	}

	clue, err := h.gameData.AddClue(r.Context(), gamedata.AddClueParams{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Location:     req.Location,
		DateFound:    req.DateFound,
		AddedBy:      model.ChiefAuthor,
		TargetPlayer: req.TargetPlayer,
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, clue)
}

// Delete handles DELETE /api/v1/admin/clues/{id}
func (h *ClueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.gameData.DeleteClue(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
