package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pollamundial/backend/models"
	"github.com/pollamundial/backend/repositories"
	"github.com/pollamundial/backend/services"
)

type MatchHandler struct {
	matchService services.MatchService
	adminService services.AdminService
}

func NewMatchHandler(matchService services.MatchService, adminService services.AdminService) *MatchHandler {
	return &MatchHandler{matchService: matchService, adminService: adminService}
}

func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repositories.MatchFilter{}
	if raw := r.URL.Query().Get("phase"); raw != "" {
		phase := models.Phase(raw)
		filter.Phase = &phase
	}
	if raw := r.URL.Query().Get("group"); raw != "" {
		filter.Group = &raw
	}

	matches, err := h.matchService.List(r.Context(), filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) GroupStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.matchService.GroupStandings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) SeedFixtures(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Matches []models.Match `json:"matches"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.matchService.SeedFixtures(r.Context(), input.Matches); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"seeded": len(input.Matches)}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordResult stores an official result and immediately rescores the pool
// so rankings reflect it without waiting for the scheduler.
func (h *MatchHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "id")

	var input struct {
		Score1 int `json:"score1"`
		Score2 int `json:"score2"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.RecordResult(r.Context(), matchID, input.Score1, input.Score2)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := h.adminService.RecalculateAll(r.Context()); err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
