package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pollamundial/backend/middleware"
	"github.com/pollamundial/backend/models"
	"github.com/pollamundial/backend/services"
)

type PredictionHandler struct {
	predictionService services.PredictionService
}

func NewPredictionHandler(predictionService services.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

func (h *PredictionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	phase := models.Phase(chi.URLParam(r, "phase"))

	var input struct {
		Scores map[string]models.ScorePair `json:"scores"`
		Teams  []string                    `json:"teams"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	prediction, err := h.predictionService.Submit(r.Context(), userID, phase, input.Scores, input.Teams)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"prediction": prediction}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PredictionHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	phase := models.Phase(chi.URLParam(r, "phase"))

	prediction, err := h.predictionService.GetOwn(r.Context(), userID, phase)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"prediction": prediction}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PredictionHandler) Community(w http.ResponseWriter, r *http.Request) {
	phase := models.Phase(chi.URLParam(r, "phase"))

	predictions, err := h.predictionService.Community(r.Context(), phase)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"predictions": predictions}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
