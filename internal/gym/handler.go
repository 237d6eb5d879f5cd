package gym

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kaamkar-app/kaamkar-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service GymService
}

func NewHandler(service GymService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SeedExercises(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	result, err := h.service.SeedExercises(r.Context())
	if err != nil {
		writeServiceError(w, log, err, "Failed to seed exercises")
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateExerciseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	e, err := h.service.CreateExercise(r.Context(), dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to create exercise")
		return
	}

	config.JSON(w, http.StatusCreated, e)
}

func (h *Handler) ListExercises(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	exercises, err := h.service.ListExercises(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, log, err, "Failed to list exercises")
		return
	}

	config.JSON(w, http.StatusOK, exercises)
}

func (h *Handler) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteExercise(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, log, err, "Failed to delete exercise")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ExerciseProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	points, err := h.service.ExerciseProgress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, log, err, "Failed to build exercise progress")
		return
	}

	config.JSON(w, http.StatusOK, points)
}

func (h *Handler) CreateRoutine(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateRoutineDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	routine, err := h.service.CreateRoutine(r.Context(), dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to create workout routine")
		return
	}

	config.JSON(w, http.StatusCreated, routine)
}

func (h *Handler) ListRoutines(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	routines, err := h.service.ListRoutines(r.Context())
	if err != nil {
		writeServiceError(w, log, err, "Failed to list workout routines")
		return
	}

	config.JSON(w, http.StatusOK, routines)
}

func (h *Handler) UpdateRoutine(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateRoutineDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	routine, err := h.service.UpdateRoutine(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to update workout routine")
		return
	}

	config.JSON(w, http.StatusOK, routine)
}

func (h *Handler) DeleteRoutine(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteRoutine(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, log, err, "Failed to delete workout routine")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateTemplateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.CreateTemplate(r.Context(), dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to create workout template")
		return
	}

	config.JSON(w, http.StatusCreated, t)
}

func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	templates, err := h.service.ListTemplates(r.Context())
	if err != nil {
		writeServiceError(w, log, err, "Failed to list workout templates")
		return
	}

	config.JSON(w, http.StatusOK, templates)
}

func (h *Handler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateTemplateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.UpdateTemplate(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to update workout template")
		return
	}

	config.JSON(w, http.StatusOK, t)
}

func (h *Handler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteTemplate(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, log, err, "Failed to delete workout template")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DuplicateTemplate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	t, err := h.service.DuplicateTemplate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, log, err, "Failed to duplicate workout template")
		return
	}

	config.JSON(w, http.StatusCreated, t)
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateSessionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.service.CreateSession(r.Context(), dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to create workout session")
		return
	}

	config.JSON(w, http.StatusCreated, session)
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	sessions, err := h.service.ListSessions(r.Context(), limit)
	if err != nil {
		writeServiceError(w, log, err, "Failed to list workout sessions")
		return
	}

	config.JSON(w, http.StatusOK, sessions)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	session, err := h.service.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, log, err, "Failed to get workout session")
		return
	}

	config.JSON(w, http.StatusOK, session)
}

func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateSessionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.service.UpdateSession(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to update workout session")
		return
	}

	config.JSON(w, http.StatusOK, session)
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, log, err, "Failed to delete workout session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SessionStats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	stats, err := h.service.SessionStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, log, err, "Failed to compute session stats")
		return
	}

	config.JSON(w, http.StatusOK, stats)
}

func (h *Handler) AddSet(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateSetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	set, err := h.service.AddSet(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to record exercise set")
		return
	}

	config.JSON(w, http.StatusCreated, set)
}

func (h *Handler) ListSets(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sets, err := h.service.ListSets(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, log, err, "Failed to list exercise sets")
		return
	}

	config.JSON(w, http.StatusOK, sets)
}

func (h *Handler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteSet(r.Context(), chi.URLParam(r, "setId")); err != nil {
		writeServiceError(w, log, err, "Failed to delete exercise set")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateEquipmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	e, err := h.service.CreateEquipment(r.Context(), dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to create equipment")
		return
	}

	config.JSON(w, http.StatusCreated, e)
}

func (h *Handler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	equipment, err := h.service.ListEquipment(r.Context())
	if err != nil {
		writeServiceError(w, log, err, "Failed to list equipment")
		return
	}

	config.JSON(w, http.StatusOK, equipment)
}

func (h *Handler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateEquipmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	e, err := h.service.UpdateEquipment(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to update equipment")
		return
	}

	config.JSON(w, http.StatusOK, e)
}

func (h *Handler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteEquipment(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, log, err, "Failed to delete equipment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		writeServiceError(w, log, err, "Failed to compute workout stats")
		return
	}

	config.JSON(w, http.StatusOK, stats)
}

func writeServiceError(w http.ResponseWriter, log logrus.FieldLogger, err error, msg string) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrExerciseNotFound), errors.Is(err, ErrRoutineNotFound),
		errors.Is(err, ErrTemplateNotFound), errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrSetNotFound), errors.Is(err, ErrEquipmentNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrEmptyName),
		errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrInvalidEquipment),
		errors.Is(err, ErrInvalidFrequency), errors.Is(err, ErrInvalidSet):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
