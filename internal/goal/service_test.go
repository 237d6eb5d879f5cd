package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/kaamkar-app/kaamkar-lambda/internal/auth"
)

type fakeRepo struct {
	goals    map[uuid.UUID]*Goal
	progress map[uuid.UUID]*ProgressUpdate

	failAddProgress bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		goals:    make(map[uuid.UUID]*Goal),
		progress: make(map[uuid.UUID]*ProgressUpdate),
	}
}

func (f *fakeRepo) Create(g *Goal) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	copied := *g
	f.goals[g.ID] = &copied
	return nil
}

func (f *fakeRepo) ListByUser(userID uuid.UUID, category string) ([]*Goal, error) {
	var out []*Goal
	for _, g := range f.goals {
		if g.UserID == userID && (category == "" || g.Category == category) {
			copied := *g
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindByIDAndUser(id, userID uuid.UUID) (*Goal, error) {
	g, ok := f.goals[id]
	if !ok || g.UserID != userID {
		return nil, ErrNotFound
	}
	copied := *g
	return &copied, nil
}

func (f *fakeRepo) Update(g *Goal) error {
	if _, ok := f.goals[g.ID]; !ok {
		return ErrNotFound
	}
	copied := *g
	f.goals[g.ID] = &copied
	return nil
}

func (f *fakeRepo) DeleteCascade(id, userID uuid.UUID) error {
	g, ok := f.goals[id]
	if !ok || g.UserID != userID {
		return ErrNotFound
	}
	delete(f.goals, id)
	for uid, u := range f.progress {
		if u.GoalID == id {
			delete(f.progress, uid)
		}
	}
	return nil
}

// AddProgress mimics the real repository's transaction: on failure neither
// the update row nor the increment is applied.
func (f *fakeRepo) AddProgress(u *ProgressUpdate) error {
	if f.failAddProgress {
		return errors.New("simulated write failure")
	}
	g, ok := f.goals[u.GoalID]
	if !ok || g.UserID != u.UserID {
		return ErrNotFound
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	copied := *u
	f.progress[u.ID] = &copied
	g.CurrentProgress += u.Value
	return nil
}

func (f *fakeRepo) ListProgressByGoal(goalID, userID uuid.UUID) ([]*ProgressUpdate, error) {
	var out []*ProgressUpdate
	for _, u := range f.progress {
		if u.GoalID == goalID && u.UserID == userID {
			copied := *u
			out = append(out, &copied)
		}
	}
	return out, nil
}

func authedContext(t *testing.T, userID uuid.UUID) context.Context {
	t.Helper()
	return auth.ContextWithClaims(t.Context(), &auth.UserClaims{UserID: userID.String(), Role: "user"})
}

func createGoal(t *testing.T, svc GoalService, ctx context.Context, target float64) *Goal {
	t.Helper()
	g, err := svc.Create(ctx, CreateGoalDTO{Title: "read pages", TargetValue: target, Unit: "pages"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.Status != StatusNotStarted || g.CurrentProgress != 0 {
		t.Fatalf("new goal should be not-started with zero progress: %+v", g)
	}
	return g
}

func TestAddProgressTransitions(t *testing.T) {
	t.Run("CompletesWhenTargetReached", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)
		ctx := authedContext(t, uuid.New())
		g := createGoal(t, svc, ctx, 50)

		if _, err := svc.AddProgress(ctx, g.ID.String(), AddProgressDTO{Value: 30}); err != nil {
			t.Fatalf("AddProgress failed: %v", err)
		}
		result, err := svc.AddProgress(ctx, g.ID.String(), AddProgressDTO{Value: 40})
		if err != nil {
			t.Fatalf("AddProgress failed: %v", err)
		}

		if result.Goal.CurrentProgress != 70 {
			t.Errorf("current progress: want 70, got %v", result.Goal.CurrentProgress)
		}
		if result.Goal.Status != StatusCompleted {
			t.Errorf("status: want completed, got %s", result.Goal.Status)
		}
	})

	t.Run("FirstProgressStartsGoal", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)
		ctx := authedContext(t, uuid.New())
		g := createGoal(t, svc, ctx, 50)

		result, err := svc.AddProgress(ctx, g.ID.String(), AddProgressDTO{Value: 10})
		if err != nil {
			t.Fatalf("AddProgress failed: %v", err)
		}
		if result.Goal.Status != StatusInProgress {
			t.Errorf("status: want in-progress, got %s", result.Goal.Status)
		}
	})

	t.Run("RejectsNonPositiveValue", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)
		ctx := authedContext(t, uuid.New())
		g := createGoal(t, svc, ctx, 50)

		if _, err := svc.AddProgress(ctx, g.ID.String(), AddProgressDTO{Value: 0}); !errors.Is(err, ErrInvalidProgress) {
			t.Errorf("expected ErrInvalidProgress, got %v", err)
		}
	})

	t.Run("FailedWriteLeavesGoalUntouched", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)
		ctx := authedContext(t, uuid.New())
		g := createGoal(t, svc, ctx, 50)

		repo.failAddProgress = true
		if _, err := svc.AddProgress(ctx, g.ID.String(), AddProgressDTO{Value: 10}); err == nil {
			t.Fatal("expected AddProgress to fail")
		}

		reloaded, err := svc.GetByID(ctx, g.ID.String())
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if reloaded.CurrentProgress != 0 || reloaded.Status != StatusNotStarted {
			t.Errorf("goal mutated despite failed write: %+v", reloaded)
		}
	})
}

func TestNextStatus(t *testing.T) {
	cases := []struct {
		name     string
		current  Status
		progress float64
		target   float64
		want     Status
	}{
		{"NotStartedZero", StatusNotStarted, 0, 50, StatusNotStarted},
		{"NotStartedSomeProgress", StatusNotStarted, 10, 50, StatusInProgress},
		{"ReachesTarget", StatusInProgress, 50, 50, StatusCompleted},
		{"ExceedsTarget", StatusNotStarted, 70, 50, StatusCompleted},
		{"CompletedSticky", StatusCompleted, 10, 50, StatusCompleted},
		{"AbandonedStays", StatusAbandoned, 10, 50, StatusAbandoned},
		{"AbandonedCanStillComplete", StatusAbandoned, 50, 50, StatusCompleted},
		{"InProgressStays", StatusInProgress, 20, 50, StatusInProgress},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextStatus(tc.current, tc.progress, tc.target); got != tc.want {
				t.Errorf("NextStatus(%s, %v, %v) = %s, want %s", tc.current, tc.progress, tc.target, got, tc.want)
			}
		})
	}
}

func TestDeleteCascades(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := authedContext(t, uuid.New())
	g := createGoal(t, svc, ctx, 100)

	for i := 0; i < 3; i++ {
		if _, err := svc.AddProgress(ctx, g.ID.String(), AddProgressDTO{Value: 5}); err != nil {
			t.Fatalf("AddProgress failed: %v", err)
		}
	}

	if err := svc.Delete(ctx, g.ID.String()); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := svc.GetByID(ctx, g.ID.String()); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("goal should be gone, got %v", err)
	}

	updates, err := svc.ListProgress(ctx, g.ID.String())
	if err != nil {
		t.Fatalf("ListProgress failed: %v", err)
	}
	if len(updates) != 0 {
		t.Errorf("progress updates should cascade on delete, %d remain", len(updates))
	}
}
