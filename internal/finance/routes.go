package finance

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/transactions", h.CreateTransaction)
	r.Get("/transactions", h.ListTransactions)
	r.Put("/transactions/{id}", h.UpdateTransaction)
	r.Delete("/transactions/{id}", h.DeleteTransaction)

	r.Post("/budgets", h.CreateBudget)
	r.Get("/budgets", h.ListBudgets)
	r.Put("/budgets/{id}", h.UpdateBudget)
	r.Delete("/budgets/{id}", h.DeleteBudget)

	r.Get("/summary", h.Summary)
	r.Get("/categories", h.Categories)

	return r
}
