package gym

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Route("/exercises", func(r chi.Router) {
		r.Post("/", h.CreateExercise)
		r.Get("/", h.ListExercises)
		r.Post("/seed", h.SeedExercises)
		r.Delete("/{id}", h.DeleteExercise)
		r.Get("/{id}/progress", h.ExerciseProgress)
	})

	r.Route("/routines", func(r chi.Router) {
		r.Post("/", h.CreateRoutine)
		r.Get("/", h.ListRoutines)
		r.Put("/{id}", h.UpdateRoutine)
		r.Delete("/{id}", h.DeleteRoutine)
	})

	r.Route("/templates", func(r chi.Router) {
		r.Post("/", h.CreateTemplate)
		r.Get("/", h.ListTemplates)
		r.Put("/{id}", h.UpdateTemplate)
		r.Delete("/{id}", h.DeleteTemplate)
		r.Post("/{id}/duplicate", h.DuplicateTemplate)
	})

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.CreateSession)
		r.Get("/", h.ListSessions)
		r.Get("/{id}", h.GetSession)
		r.Put("/{id}", h.UpdateSession)
		r.Delete("/{id}", h.DeleteSession)
		r.Get("/{id}/stats", h.SessionStats)
		r.Post("/{id}/sets", h.AddSet)
		r.Get("/{id}/sets", h.ListSets)
		r.Delete("/{id}/sets/{setId}", h.DeleteSet)
	})

	r.Route("/equipment", func(r chi.Router) {
		r.Post("/", h.CreateEquipment)
		r.Get("/", h.ListEquipment)
		r.Put("/{id}", h.UpdateEquipment)
		r.Delete("/{id}", h.DeleteEquipment)
	})

	r.Get("/stats", h.Stats)

	return r
}
