package handler

import (
	"encoding/json"
	"net/http"

	"github.com/noirbureau/swanhunt/internal/api/request"
	"github.com/noirbureau/swanhunt/internal/api/response"
	"github.com/noirbureau/swanhunt/internal/services/gamedata"
)

// ContentHandler handles site content and rules endpoints
type ContentHandler struct {
	gameData *gamedata.Service
}

// NewContentHandler creates a new content handler
func NewContentHandler(gameData *gamedata.Service) *ContentHandler {
	return &ContentHandler{gameData: gameData}
}

// GetContent handles GET /api/v1/content
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	content, err := h.gameData.GetSiteContent(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, content)
}

// UpdateContent handles PUT /api/v1/admin/content
func (h *ContentHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if len(req.Content) == 0 {
		WriteError(w, NewInvalidRequestError("content is required"))
		return
	}

	if err := h.gameData.SetSiteContent(r.Context(), req.Content); err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, req.Content)
}

// GetRules handles GET /api/v1/rules
func (h *ContentHandler) GetRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.gameData.GetRules(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, rules)
}

// UpdateRules handles PUT /api/v1/admin/rules
func (h *ContentHandler) UpdateRules(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateRulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Content == "" {
		WriteError(w, NewInvalidRequestError("content is required"))
		return
	}

	rules, err := h.gameData.SetRules(r.Context(), req.Content)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, rules)
}
