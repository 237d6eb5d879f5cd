package goal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kaamkar-app/kaamkar-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service GoalService
}

func NewHandler(service GoalService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	g, err := h.service.Create(r.Context(), dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to create goal")
		return
	}

	config.JSON(w, http.StatusCreated, g)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	goals, err := h.service.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, log, err, "Failed to list goals")
		return
	}

	config.JSON(w, http.StatusOK, goals)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	g, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, log, err, "Failed to get goal")
		return
	}

	config.JSON(w, http.StatusOK, g)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	g, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to update goal")
		return
	}

	config.JSON(w, http.StatusOK, g)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, log, err, "Failed to delete goal")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto AddProgressDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.AddProgress(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to record progress")
		return
	}

	config.JSON(w, http.StatusCreated, result)
}

func (h *Handler) ListProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	updates, err := h.service.ListProgress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, log, err, "Failed to list progress updates")
		return
	}

	config.JSON(w, http.StatusOK, updates)
}

func writeServiceError(w http.ResponseWriter, log logrus.FieldLogger, err error, msg string) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrGoalNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrEmptyTitle),
		errors.Is(err, ErrInvalidTarget), errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidProgress):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
