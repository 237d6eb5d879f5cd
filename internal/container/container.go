package container

import (
	"context"
	"log"
	"os"

	"github.com/kaamkar-app/kaamkar-lambda/internal/assistant"
	"github.com/kaamkar-app/kaamkar-lambda/internal/auth"
	"github.com/kaamkar-app/kaamkar-lambda/internal/config"
	"github.com/kaamkar-app/kaamkar-lambda/internal/diagnostics"
	"github.com/kaamkar-app/kaamkar-lambda/internal/finance"
	"github.com/kaamkar-app/kaamkar-lambda/internal/goal"
	"github.com/kaamkar-app/kaamkar-lambda/internal/gym"
	"github.com/kaamkar-app/kaamkar-lambda/internal/jobs"
	"github.com/kaamkar-app/kaamkar-lambda/internal/note"
	"github.com/kaamkar-app/kaamkar-lambda/internal/planner"
	"github.com/kaamkar-app/kaamkar-lambda/internal/todo"
	"github.com/kaamkar-app/kaamkar-lambda/internal/user"
)

type Container struct {
	UserContainer      *user.UserContainer
	NoteContainer      *note.NoteContainer
	TodoContainer      *todo.TodoContainer
	PlannerContainer   *planner.PlannerContainer
	FinanceContainer   *finance.FinanceContainer
	GoalContainer      *goal.GoalContainer
	GymContainer       *gym.GymContainer
	AssistantContainer *assistant.AssistantContainer
	DiagnosticsHandler *diagnostics.Handler
	Reconciler         *jobs.Reconciler
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	ctx := context.Background()
	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.Migrate(
		&user.User{},
		&note.Note{},
		&note.NoteCategory{},
		&todo.Todo{},
		&planner.Event{},
		&finance.Transaction{},
		&finance.Budget{},
		&goal.Goal{},
		&goal.ProgressUpdate{},
		&gym.Exercise{},
		&gym.WorkoutRoutine{},
		&gym.WorkoutTemplate{},
		&gym.WorkoutSession{},
		&gym.ExerciseSet{},
		&gym.Equipment{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	financeContainer := finance.NewFinanceContainer(config.DB)

	return &Container{
		UserContainer:      user.NewUserContainer(config.DB),
		NoteContainer:      note.NewNoteContainer(config.DB),
		TodoContainer:      todo.NewTodoContainer(config.DB),
		PlannerContainer:   planner.NewPlannerContainer(config.DB),
		FinanceContainer:   financeContainer,
		GoalContainer:      goal.NewGoalContainer(config.DB),
		GymContainer:       gym.NewGymContainer(config.DB),
		AssistantContainer: assistant.NewAssistantContainer(ctx),
		DiagnosticsHandler: diagnostics.NewHandler(),
		Reconciler:         jobs.NewReconciler(financeContainer.Service),
	}
}
