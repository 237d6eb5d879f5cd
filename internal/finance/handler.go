package finance

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kaamkar-app/kaamkar-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service FinanceService
}

func NewHandler(service FinanceService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateTransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.CreateTransaction(r.Context(), dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to create transaction")
		return
	}

	config.JSON(w, http.StatusCreated, t)
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	category := r.URL.Query().Get("category")
	txType := TransactionType(r.URL.Query().Get("type"))

	transactions, err := h.service.ListTransactions(r.Context(), category, txType)
	if err != nil {
		writeServiceError(w, log, err, "Failed to list transactions")
		return
	}

	config.JSON(w, http.StatusOK, transactions)
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateTransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.UpdateTransaction(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to update transaction")
		return
	}

	config.JSON(w, http.StatusOK, t)
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteTransaction(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, log, err, "Failed to delete transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	b, err := h.service.CreateBudget(r.Context(), dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to create budget")
		return
	}

	config.JSON(w, http.StatusCreated, b)
}

func (h *Handler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	budgets, err := h.service.ListBudgets(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		writeServiceError(w, log, err, "Failed to list budgets")
		return
	}

	config.JSON(w, http.StatusOK, budgets)
}

func (h *Handler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	b, err := h.service.UpdateBudget(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeServiceError(w, log, err, "Failed to update budget")
		return
	}

	config.JSON(w, http.StatusOK, b)
}

func (h *Handler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteBudget(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, log, err, "Failed to delete budget")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	summary, err := h.service.MonthlySummary(r.Context(), month)
	if err != nil {
		writeServiceError(w, log, err, "Failed to build monthly summary")
		return
	}

	config.JSON(w, http.StatusOK, summary)
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Categories())
}

func writeServiceError(w http.ResponseWriter, log logrus.FieldLogger, err error, msg string) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrTransactionNotFound), errors.Is(err, ErrBudgetNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidType), errors.Is(err, ErrInvalidMonth),
		errors.Is(err, ErrEmptyDescription):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
