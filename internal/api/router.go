package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/noirbureau/swanhunt/internal/api/handler"
	"github.com/noirbureau/swanhunt/internal/api/middleware"
	"github.com/noirbureau/swanhunt/internal/api/response"
	"github.com/noirbureau/swanhunt/internal/narrator"
	"github.com/noirbureau/swanhunt/internal/services/auth"
	"github.com/noirbureau/swanhunt/internal/services/gamedata"
	"github.com/noirbureau/swanhunt/internal/services/session"
	"github.com/noirbureau/swanhunt/internal/storage/failover"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	Sessions    *session.Manager
	AuthService *auth.Service
	GameData    *gamedata.Service
	Narrator    *narrator.Client
	Breaker     *failover.Breaker
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.GameData, cfg.Sessions)
	profileHandler := handler.NewProfileHandler(cfg.GameData)
	clueHandler := handler.NewClueHandler(cfg.GameData)
	reportHandler := handler.NewReportHandler(cfg.GameData)
	contentHandler := handler.NewContentHandler(cfg.GameData)
	narrateHandler := handler.NewNarrateHandler(cfg.Narrator, cfg.Logger)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.Sessions)
	adminMiddleware := middleware.RequireAdmin(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no session required)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Public content routes
	api.HandleFunc("/content", contentHandler.GetContent).Methods(http.MethodGet)
	api.HandleFunc("/rules", contentHandler.GetRules).Methods(http.MethodGet)

	// Player routes (session required)
	player := api.NewRoute().Subrouter()
	player.Use(authMiddleware)
	player.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	player.HandleFunc("/profiles/me", profileHandler.GetMe).Methods(http.MethodGet)
	player.HandleFunc("/clues", clueHandler.ListVisible).Methods(http.MethodGet)
	player.HandleFunc("/clues", clueHandler.Add).Methods(http.MethodPost)
	player.HandleFunc("/reports", reportHandler.Add).Methods(http.MethodPost)
	player.HandleFunc("/narrate", narrateHandler.Narrate).Methods(http.MethodPost)

	// Admin routes (session + chief account required)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware)
	admin.Use(adminMiddleware)
	admin.HandleFunc("/profiles", profileHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/clues", clueHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/clues", clueHandler.AddAsChief).Methods(http.MethodPost)
	admin.HandleFunc("/clues/{id}", clueHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/reports", reportHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/reports/{id}/read", reportHandler.MarkRead).Methods(http.MethodPost)
	admin.HandleFunc("/content", contentHandler.UpdateContent).Methods(http.MethodPut)
	admin.HandleFunc("/rules", contentHandler.UpdateRules).Methods(http.MethodPut)

	// Health check endpoint (no auth); reports which backend is serving
	api.HandleFunc("/health", healthHandler(cfg.Breaker)).Methods(http.MethodGet)

	return r
}

func healthHandler(breaker *failover.Breaker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode := "local"
		if breaker != nil && breaker.RemoteEligible() {
			mode = "remote"
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response.HealthResponse{Status: "ok", Mode: mode})
	}
}
