package note

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	r.Post("/categories", h.CreateCategory)
	r.Get("/categories", h.ListCategories)
	r.Delete("/categories/{id}", h.DeleteCategory)

	return r
}
