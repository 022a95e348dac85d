package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/noirbureau/swanhunt/internal/api/middleware"
	"github.com/noirbureau/swanhunt/internal/api/request"
	"github.com/noirbureau/swanhunt/internal/api/response"
	"github.com/noirbureau/swanhunt/internal/services/gamedata"
)

// ReportHandler handles report endpoints
type ReportHandler struct {
	gameData *gamedata.Service
}

// NewReportHandler creates a new report handler
func NewReportHandler(gameData *gamedata.Service) *ReportHandler {
	return &ReportHandler{gameData: gameData}
}

// Add handles POST /api/v1/reports
func (h *ReportHandler) Add(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	var req request.AddReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Message == "" {
		WriteError(w, NewInvalidRequestError("message is required"))
		return
	}

	report, err := h.gameData.AddReport(r.Context(), sess.Email, sess.Name, req.Message)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, report)
}

// List handles GET /api/v1/admin/reports
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.gameData.ListReports(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, reports)
}

// MarkRead handles POST /api/v1/admin/reports/{id}/read
func (h *ReportHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.gameData.MarkReportRead(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
