package todo

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/kaamkar-app/kaamkar-lambda/internal/auth"
)

type fakeRepo struct {
	todos map[uuid.UUID]*Todo
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{todos: make(map[uuid.UUID]*Todo)}
}

func (f *fakeRepo) Create(t *Todo) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	copied := *t
	f.todos[t.ID] = &copied
	return nil
}

func (f *fakeRepo) ListByUser(userID uuid.UUID) ([]*Todo, error) {
	var out []*Todo
	for _, t := range f.todos {
		if t.UserID == userID {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindByIDAndUser(id, userID uuid.UUID) (*Todo, error) {
	t, ok := f.todos[id]
	if !ok || t.UserID != userID {
		return nil, ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeRepo) Update(t *Todo) error {
	if _, ok := f.todos[t.ID]; !ok {
		return ErrNotFound
	}
	copied := *t
	f.todos[t.ID] = &copied
	return nil
}

func (f *fakeRepo) Delete(id, userID uuid.UUID) error {
	t, ok := f.todos[id]
	if !ok || t.UserID != userID {
		return ErrNotFound
	}
	delete(f.todos, id)
	return nil
}

func authedContext(t *testing.T, userID uuid.UUID) context.Context {
	t.Helper()
	return auth.ContextWithClaims(t.Context(), &auth.UserClaims{UserID: userID.String(), Role: "user"})
}

func TestCreateThenList(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	userID := uuid.New()
	ctx := authedContext(t, userID)

	before, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	created, err := svc.Create(ctx, CreateTodoDTO{Title: "buy groceries", Priority: PriorityHigh})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Completed {
		t.Error("new todo must start incomplete")
	}

	after, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("expected exactly one additional todo, had %d, now %d", len(before), len(after))
	}

	var found *Todo
	for _, item := range after {
		if item.ID == created.ID {
			found = item
		}
	}
	if found == nil {
		t.Fatal("created todo missing from list")
	}
	if found.Title != "buy groceries" || found.Priority != PriorityHigh || found.Completed {
		t.Errorf("listed todo does not match submitted values: %+v", found)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := authedContext(t, uuid.New())

	t.Run("EmptyTitle", func(t *testing.T) {
		if _, err := svc.Create(ctx, CreateTodoDTO{Title: "   "}); !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("DefaultPriority", func(t *testing.T) {
		created, err := svc.Create(ctx, CreateTodoDTO{Title: "walk"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if created.Priority != PriorityMedium {
			t.Errorf("expected default priority medium, got %s", created.Priority)
		}
	})

	t.Run("BogusPriority", func(t *testing.T) {
		if _, err := svc.Create(ctx, CreateTodoDTO{Title: "x", Priority: "urgent"}); !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		if _, err := svc.Create(t.Context(), CreateTodoDTO{Title: "x"}); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestToggle(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := authedContext(t, uuid.New())

	created, err := svc.Create(ctx, CreateTodoDTO{Title: "laundry"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	toggled, err := svc.Toggle(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !toggled.Completed {
		t.Error("first toggle should mark the todo completed")
	}

	toggled, err = svc.Toggle(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if toggled.Completed {
		t.Error("second toggle should mark the todo incomplete again")
	}
}

func TestOwnershipIsolation(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	owner := uuid.New()
	intruder := uuid.New()

	created, err := svc.Create(authedContext(t, owner), CreateTodoDTO{Title: "private"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(authedContext(t, intruder), created.ID.String()); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("another user's delete should see not-found, got %v", err)
	}

	listed, err := svc.List(authedContext(t, intruder))
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("another user should not see the todo, got %d items", len(listed))
	}
}
