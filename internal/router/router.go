package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/kaamkar-app/kaamkar-lambda/internal/assistant"
	"github.com/kaamkar-app/kaamkar-lambda/internal/auth"
	"github.com/kaamkar-app/kaamkar-lambda/internal/diagnostics"
	"github.com/kaamkar-app/kaamkar-lambda/internal/finance"
	"github.com/kaamkar-app/kaamkar-lambda/internal/goal"
	"github.com/kaamkar-app/kaamkar-lambda/internal/gym"
	"github.com/kaamkar-app/kaamkar-lambda/internal/middlewares"
	"github.com/kaamkar-app/kaamkar-lambda/internal/note"
	"github.com/kaamkar-app/kaamkar-lambda/internal/planner"
	"github.com/kaamkar-app/kaamkar-lambda/internal/todo"
	"github.com/kaamkar-app/kaamkar-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler        *user.Handler
	NoteHandler        *note.Handler
	TodoHandler        *todo.Handler
	PlannerHandler     *planner.Handler
	FinanceHandler     *finance.Handler
	GoalHandler        *goal.Handler
	GymHandler         *gym.Handler
	AssistantHandler   *assistant.Handler
	DiagnosticsHandler *diagnostics.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/health", cfg.DiagnosticsHandler.Health)
	r.Get("/env-check", cfg.DiagnosticsHandler.EnvCheck)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/notes", note.Routes(cfg.NoteHandler))
		r.Mount("/todos", todo.Routes(cfg.TodoHandler))
		r.Mount("/planner", planner.Routes(cfg.PlannerHandler))
		r.Mount("/finance", finance.Routes(cfg.FinanceHandler))
		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
		r.Mount("/gym", gym.Routes(cfg.GymHandler))
		r.Mount("/assistant", assistant.Routes(cfg.AssistantHandler))
	})

	return r
}
