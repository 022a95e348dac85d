package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/noirbureau/swanhunt/internal/api/request"
	"github.com/noirbureau/swanhunt/internal/api/response"
	"github.com/noirbureau/swanhunt/internal/narrator"
)

// NarrateHandler handles the monologue endpoint
type NarrateHandler struct {
	narrator *narrator.Client
	logger   *slog.Logger
}

// NewNarrateHandler creates a new narrate handler. narrator may be nil
// when no API key is configured; players then get the fallback line.
func NewNarrateHandler(client *narrator.Client, logger *slog.Logger) *NarrateHandler {
	return &NarrateHandler{
		narrator: client,
		logger:   logger,
	}
}

// Narrate handles POST /api/v1/narrate. Narration failures never surface
// as errors: the fallback line keeps the story moving.
func (h *NarrateHandler) Narrate(w http.ResponseWriter, r *http.Request) {
	var req request.NarrateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Context == "" {
		WriteError(w, NewInvalidRequestError("context is required"))
		return
	}

	line := narrator.DefaultLine
	if h.narrator != nil {
		generated, err := h.narrator.Narrate(r.Context(), req.Context)
		if err != nil {
			h.logger.Warn("narration failed", slog.String("error", err.Error()))
		} else {
			line = generated
		}
	}

	response.JSON(w, http.StatusOK, response.NarrateResponse{Line: line})
}
