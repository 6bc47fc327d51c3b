package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/gridhunt/gridhunt/internal/api/apierr"
	"github.com/gridhunt/gridhunt/internal/api/response"
	"github.com/gridhunt/gridhunt/internal/model"
	"github.com/gridhunt/gridhunt/internal/services/solver"
	"github.com/gridhunt/gridhunt/internal/storage"
)

// SolveHandler handles solve requests and solve history
type SolveHandler struct {
	solver  *solver.Service
	storage storage.Storage
}

// NewSolveHandler creates a new SolveHandler
func NewSolveHandler(slv *solver.Service, store storage.Storage) *SolveHandler {
	return &SolveHandler{
		solver:  slv,
		storage: store,
	}
}

// CreateSolveRequest is the body for POST /solves
type CreateSolveRequest struct {
	Grid [][]string `json:"grid"`
}

// Create solves a letter grid and persists the result
func (h *SolveHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	grid, err := model.NewGrid(req.Grid)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	words := h.solver.FindAllWords(grid)

	record := &model.SolveRecord{
		ID:        model.SolveID(uuid.NewString()),
		CreatedAt: time.Now().UTC(),
		Grid:      req.Grid,
		Words:     words,
	}
	if err := h.storage.SaveSolve(r.Context(), record); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, record)
}

// Get returns a single solve record
func (h *SolveHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.SolveID(mux.Vars(r)["id"])

	record, err := h.storage.GetSolve(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, record)
}

// List returns all stored solve records, newest first
func (h *SolveHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.storage.ListSolves(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	if records == nil {
		records = []*model.SolveRecord{}
	}

	response.JSON(w, http.StatusOK, records)
}

// Delete removes a solve record
func (h *SolveHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.SolveID(mux.Vars(r)["id"])

	if err := h.storage.DeleteSolve(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
