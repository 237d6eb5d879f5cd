package assistant

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kaamkar-app/kaamkar-lambda/internal/config"
)

type Handler struct {
	service AssistantService
}

func NewHandler(service AssistantService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Handle(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAction), errors.Is(err, ErrPromptRequired),
			errors.Is(err, ErrTextRequired), errors.Is(err, ErrNoteRequired),
			errors.Is(err, ErrTodosRequired):
			config.ErrorJSON(w, http.StatusBadRequest, err.Error())
		default:
			log.WithError(err).WithField("action", dto.Action).Error("Assistant request failed")
			config.ErrorJSON(w, http.StatusInternalServerError, Remediation(err))
		}
		return
	}

	config.JSON(w, http.StatusOK, ResponseDTO{Result: result})
}
