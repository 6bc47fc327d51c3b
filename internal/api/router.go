package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gridhunt/gridhunt/internal/api/handler"
	"github.com/gridhunt/gridhunt/internal/api/middleware"
	"github.com/gridhunt/gridhunt/internal/services/dictionary"
	"github.com/gridhunt/gridhunt/internal/services/solver"
	"github.com/gridhunt/gridhunt/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	DictionaryService *dictionary.Service
	SolverService     *solver.Service
	Storage           storage.Storage
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	solveHandler := handler.NewSolveHandler(cfg.SolverService, cfg.Storage)
	dictHandler := handler.NewDictionaryHandler(cfg.DictionaryService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Solve routes
	api.HandleFunc("/solves", solveHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/solves", solveHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/solves/{id}", solveHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/solves/{id}", solveHandler.Delete).Methods(http.MethodDelete)

	// Dictionary routes
	api.HandleFunc("/dictionary", dictHandler.Stats).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
