package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kaamkar-app/kaamkar-lambda/internal/auth"
	util "github.com/kaamkar-app/kaamkar-lambda/internal/utils"
)

type fakeRepo struct {
	events map[uuid.UUID]*Event
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{events: make(map[uuid.UUID]*Event)}
}

func (f *fakeRepo) Create(e *Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	copied := *e
	f.events[e.ID] = &copied
	return nil
}

func (f *fakeRepo) ListByUser(userID uuid.UUID) ([]*Event, error) {
	var out []*Event
	for _, e := range f.events {
		if e.UserID == userID {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByUserInRange(userID uuid.UUID, from, to time.Time) ([]*Event, error) {
	var out []*Event
	for _, e := range f.events {
		if e.UserID != userID {
			continue
		}
		if e.Start.Time.Before(from) || !e.Start.Time.Before(to) {
			continue
		}
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeRepo) FindByIDAndUser(id, userID uuid.UUID) (*Event, error) {
	e, ok := f.events[id]
	if !ok || e.UserID != userID {
		return nil, ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeRepo) Update(e *Event) error {
	if _, ok := f.events[e.ID]; !ok {
		return ErrNotFound
	}
	copied := *e
	f.events[e.ID] = &copied
	return nil
}

func (f *fakeRepo) Delete(id, userID uuid.UUID) error {
	e, ok := f.events[id]
	if !ok || e.UserID != userID {
		return ErrNotFound
	}
	delete(f.events, id)
	return nil
}

func authedContext(t *testing.T, userID uuid.UUID) context.Context {
	t.Helper()
	return auth.ContextWithClaims(t.Context(), &auth.UserClaims{UserID: userID.String(), Role: "user"})
}

func ldt(t *testing.T, value string) *util.LocalDateTime {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", value, err)
	}
	return &util.LocalDateTime{Time: parsed}
}

func TestCreateValidatesRange(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := authedContext(t, uuid.New())

	t.Run("EndBeforeStart", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateEventDTO{
			Title: "standup",
			Start: ldt(t, "2025-06-10T10:00:00"),
			End:   ldt(t, "2025-06-10T09:00:00"),
		})
		if !errors.Is(err, ErrInvalidRange) {
			t.Errorf("expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("MissingBounds", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateEventDTO{Title: "standup"})
		if !errors.Is(err, ErrInvalidRange) {
			t.Errorf("expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("ZeroLengthAllowed", func(t *testing.T) {
		if _, err := svc.Create(ctx, CreateEventDTO{
			Title: "reminder",
			Start: ldt(t, "2025-06-10T10:00:00"),
			End:   ldt(t, "2025-06-10T10:00:00"),
		}); err != nil {
			t.Errorf("instantaneous event should be allowed: %v", err)
		}
	})
}

func TestListRange(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := authedContext(t, uuid.New())

	mk := func(title, start, end string) {
		t.Helper()
		if _, err := svc.Create(ctx, CreateEventDTO{
			Title: title,
			Start: ldt(t, start),
			End:   ldt(t, end),
		}); err != nil {
			t.Fatalf("Create(%s) failed: %v", title, err)
		}
	}

	mk("before", "2025-06-01T09:00:00", "2025-06-01T10:00:00")
	mk("inside", "2025-06-15T09:00:00", "2025-06-15T10:00:00")
	mk("after", "2025-07-02T09:00:00", "2025-07-02T10:00:00")

	from := ldt(t, "2025-06-10T00:00:00").Time
	to := ldt(t, "2025-07-01T00:00:00").Time
	events, err := svc.List(ctx, &from, &to)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(events) != 1 || events[0].Title != "inside" {
		t.Errorf("range filter returned wrong events: %+v", events)
	}

	all, err := svc.List(ctx, nil, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("unbounded list should return all events, got %d", len(all))
	}
}
