package gym

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kaamkar-app/kaamkar-lambda/internal/auth"
)

type fakeRepo struct {
	exercises map[uuid.UUID]*Exercise
	routines  map[uuid.UUID]*WorkoutRoutine
	templates map[uuid.UUID]*WorkoutTemplate
	sessions  map[uuid.UUID]*WorkoutSession
	sets      map[uuid.UUID]*ExerciseSet
	equipment map[uuid.UUID]*Equipment

	failSessionDelete bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		exercises: make(map[uuid.UUID]*Exercise),
		routines:  make(map[uuid.UUID]*WorkoutRoutine),
		templates: make(map[uuid.UUID]*WorkoutTemplate),
		sessions:  make(map[uuid.UUID]*WorkoutSession),
		sets:      make(map[uuid.UUID]*ExerciseSet),
		equipment: make(map[uuid.UUID]*Equipment),
	}
}

func (f *fakeRepo) CreateExercise(e *Exercise) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	copied := *e
	f.exercises[e.ID] = &copied
	return nil
}

func (f *fakeRepo) CreateExercises(exercises []*Exercise) error {
	for _, e := range exercises {
		if err := f.CreateExercise(e); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeRepo) ListExercisesForUser(userID uuid.UUID, category ExerciseCategory) ([]*Exercise, error) {
	var out []*Exercise
	for _, e := range f.exercises {
		visible := !e.IsCustom || (e.UserID != nil && *e.UserID == userID)
		if visible && (category == "" || e.Category == category) {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindExerciseForUser(id, userID uuid.UUID) (*Exercise, error) {
	e, ok := f.exercises[id]
	if !ok || (e.IsCustom && (e.UserID == nil || *e.UserID != userID)) {
		return nil, ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeRepo) DeleteCustomExercise(id, userID uuid.UUID) error {
	e, ok := f.exercises[id]
	if !ok || !e.IsCustom || e.UserID == nil || *e.UserID != userID {
		return ErrNotFound
	}
	delete(f.exercises, id)
	return nil
}

func (f *fakeRepo) CountDefaultExercises() (int64, error) {
	var count int64
	for _, e := range f.exercises {
		if !e.IsCustom {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) CreateRoutine(r *WorkoutRoutine) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	copied := *r
	f.routines[r.ID] = &copied
	return nil
}

func (f *fakeRepo) ListRoutinesByUser(userID uuid.UUID) ([]*WorkoutRoutine, error) {
	var out []*WorkoutRoutine
	for _, r := range f.routines {
		if r.UserID == userID {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindRoutineByIDAndUser(id, userID uuid.UUID) (*WorkoutRoutine, error) {
	r, ok := f.routines[id]
	if !ok || r.UserID != userID {
		return nil, ErrNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRepo) UpdateRoutine(r *WorkoutRoutine) error {
	if _, ok := f.routines[r.ID]; !ok {
		return ErrNotFound
	}
	copied := *r
	f.routines[r.ID] = &copied
	return nil
}

func (f *fakeRepo) DeleteRoutine(id, userID uuid.UUID) error {
	r, ok := f.routines[id]
	if !ok || r.UserID != userID {
		return ErrNotFound
	}
	delete(f.routines, id)
	return nil
}

func (f *fakeRepo) CreateTemplate(t *WorkoutTemplate) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	copied := *t
	f.templates[t.ID] = &copied
	return nil
}

func (f *fakeRepo) ListTemplatesByUser(userID uuid.UUID) ([]*WorkoutTemplate, error) {
	var out []*WorkoutTemplate
	for _, t := range f.templates {
		if t.UserID == userID {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindTemplateByIDAndUser(id, userID uuid.UUID) (*WorkoutTemplate, error) {
	t, ok := f.templates[id]
	if !ok || t.UserID != userID {
		return nil, ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeRepo) UpdateTemplate(t *WorkoutTemplate) error {
	if _, ok := f.templates[t.ID]; !ok {
		return ErrNotFound
	}
	copied := *t
	f.templates[t.ID] = &copied
	return nil
}

func (f *fakeRepo) DeleteTemplate(id, userID uuid.UUID) error {
	t, ok := f.templates[id]
	if !ok || t.UserID != userID {
		return ErrNotFound
	}
	delete(f.templates, id)
	return nil
}

func (f *fakeRepo) CreateSession(s *WorkoutSession) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	copied := *s
	f.sessions[s.ID] = &copied
	return nil
}

func (f *fakeRepo) ListSessionsByUser(userID uuid.UUID, limit int) ([]*WorkoutSession, error) {
	var out []*WorkoutSession
	for _, s := range f.sessions {
		if s.UserID == userID {
			copied := *s
			out = append(out, &copied)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepo) FindSessionByIDAndUser(id, userID uuid.UUID) (*WorkoutSession, error) {
	s, ok := f.sessions[id]
	if !ok || s.UserID != userID {
		return nil, ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeRepo) UpdateSession(s *WorkoutSession) error {
	if _, ok := f.sessions[s.ID]; !ok {
		return ErrNotFound
	}
	copied := *s
	f.sessions[s.ID] = &copied
	return nil
}

// DeleteSessionCascade mimics the real repository's transaction: a simulated
// failure deletes nothing at all.
func (f *fakeRepo) DeleteSessionCascade(id, userID uuid.UUID) error {
	if f.failSessionDelete {
		return errors.New("simulated transaction failure")
	}
	s, ok := f.sessions[id]
	if !ok || s.UserID != userID {
		return ErrNotFound
	}
	delete(f.sessions, id)
	for setID, set := range f.sets {
		if set.WorkoutSessionID == id {
			delete(f.sets, setID)
		}
	}
	return nil
}

func (f *fakeRepo) CreateSet(set *ExerciseSet) error {
	if set.ID == uuid.Nil {
		set.ID = uuid.New()
	}
	if set.CreatedAt.IsZero() {
		set.CreatedAt = time.Now()
	}
	copied := *set
	f.sets[set.ID] = &copied
	return nil
}

func (f *fakeRepo) ListSetsBySession(sessionID, userID uuid.UUID) ([]*ExerciseSet, error) {
	var out []*ExerciseSet
	for _, set := range f.sets {
		if set.WorkoutSessionID == sessionID && set.UserID == userID {
			copied := *set
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListSetsByExercise(exerciseID, userID uuid.UUID) ([]*ExerciseSet, error) {
	var out []*ExerciseSet
	for _, set := range f.sets {
		if set.ExerciseID == exerciseID && set.UserID == userID {
			copied := *set
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepo) DeleteSet(id, userID uuid.UUID) error {
	set, ok := f.sets[id]
	if !ok || set.UserID != userID {
		return ErrNotFound
	}
	delete(f.sets, id)
	return nil
}

func (f *fakeRepo) MaxWeightForExercise(exerciseID, userID uuid.UUID) (float64, bool, error) {
	max := 0.0
	found := false
	for _, set := range f.sets {
		if set.ExerciseID == exerciseID && set.UserID == userID {
			if !found || set.Weight > max {
				max = set.Weight
			}
			found = true
		}
	}
	return max, found, nil
}

func (f *fakeRepo) CreateEquipment(e *Equipment) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	copied := *e
	f.equipment[e.ID] = &copied
	return nil
}

func (f *fakeRepo) ListEquipmentByUser(userID uuid.UUID) ([]*Equipment, error) {
	var out []*Equipment
	for _, e := range f.equipment {
		if e.UserID == userID {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindEquipmentByIDAndUser(id, userID uuid.UUID) (*Equipment, error) {
	e, ok := f.equipment[id]
	if !ok || e.UserID != userID {
		return nil, ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeRepo) UpdateEquipment(e *Equipment) error {
	if _, ok := f.equipment[e.ID]; !ok {
		return ErrNotFound
	}
	copied := *e
	f.equipment[e.ID] = &copied
	return nil
}

func (f *fakeRepo) DeleteEquipment(id, userID uuid.UUID) error {
	e, ok := f.equipment[id]
	if !ok || e.UserID != userID {
		return ErrNotFound
	}
	delete(f.equipment, id)
	return nil
}

func (f *fakeRepo) Stats(userID uuid.UUID, weekStart time.Time) (*WorkoutStats, error) {
	stats := &WorkoutStats{}
	for _, s := range f.sessions {
		if s.UserID != userID {
			continue
		}
		stats.TotalSessions++
		if !s.Date.Before(weekStart) {
			stats.SessionsThisWeek++
		}
	}
	for _, set := range f.sets {
		if set.UserID != userID {
			continue
		}
		stats.TotalVolume += SetVolume(set.Weight, set.Reps)
		if set.IsPersonalRecord {
			stats.PersonalRecords++
		}
	}
	return stats, nil
}

func authedContext(t *testing.T, userID uuid.UUID) context.Context {
	t.Helper()
	return auth.ContextWithClaims(t.Context(), &auth.UserClaims{UserID: userID.String(), Role: "user"})
}

func setupSession(t *testing.T, svc GymService, ctx context.Context) (*WorkoutSession, *Exercise) {
	t.Helper()
	session, err := svc.CreateSession(ctx, CreateSessionDTO{Name: "Push Day"})
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	exercise, err := svc.CreateExercise(ctx, CreateExerciseDTO{
		Name:      "Bench Press",
		Category:  CategoryChest,
		Equipment: EquipmentBarbell,
	})
	if err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}
	return session, exercise
}

func TestOneRepMax(t *testing.T) {
	cases := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{"SingleRep", 100, 1, 100},
		{"FiveReps", 100, 5, 112.5},
		{"TenReps", 225, 10, 300},
		{"ZeroReps", 100, 0, 0},
		{"ZeroWeight", 0, 5, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := OneRepMax(tc.weight, tc.reps)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("OneRepMax(%v, %d) = %v, want %v", tc.weight, tc.reps, got, tc.want)
			}
		})
	}

	t.Run("CappedReps", func(t *testing.T) {
		if got := OneRepMax(100, 40); got != OneRepMax(100, 36) {
			t.Errorf("reps beyond the formula's domain should be capped, got %v", got)
		}
	})
}

func TestAddSetPersonalRecords(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := authedContext(t, uuid.New())
	session, exercise := setupSession(t, svc, ctx)

	first, err := svc.AddSet(ctx, session.ID.String(), CreateSetDTO{
		ExerciseID: exercise.ID.String(), SetNumber: 1, Weight: 100, Reps: 5,
	})
	if err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}
	if !first.IsPersonalRecord {
		t.Error("first set of an exercise should be a personal record")
	}

	lighter, err := svc.AddSet(ctx, session.ID.String(), CreateSetDTO{
		ExerciseID: exercise.ID.String(), SetNumber: 2, Weight: 90, Reps: 8,
	})
	if err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}
	if lighter.IsPersonalRecord {
		t.Error("lighter set should not be a personal record")
	}

	equal, err := svc.AddSet(ctx, session.ID.String(), CreateSetDTO{
		ExerciseID: exercise.ID.String(), SetNumber: 3, Weight: 100, Reps: 3,
	})
	if err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}
	if equal.IsPersonalRecord {
		t.Error("matching the record weight should not count as a new record")
	}

	heavier, err := svc.AddSet(ctx, session.ID.String(), CreateSetDTO{
		ExerciseID: exercise.ID.String(), SetNumber: 4, Weight: 105, Reps: 2,
	})
	if err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}
	if !heavier.IsPersonalRecord {
		t.Error("heavier set should be a personal record")
	}
	if heavier.ExerciseName != "Bench Press" {
		t.Errorf("exercise name should be denormalized onto the set, got %q", heavier.ExerciseName)
	}
}

func TestAddSetValidation(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := authedContext(t, uuid.New())
	session, exercise := setupSession(t, svc, ctx)

	if _, err := svc.AddSet(ctx, session.ID.String(), CreateSetDTO{
		ExerciseID: exercise.ID.String(), Weight: 100, Reps: 0,
	}); !errors.Is(err, ErrInvalidSet) {
		t.Errorf("zero reps: expected ErrInvalidSet, got %v", err)
	}

	if _, err := svc.AddSet(ctx, uuid.NewString(), CreateSetDTO{
		ExerciseID: exercise.ID.String(), Weight: 100, Reps: 5,
	}); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("unknown session: expected ErrSessionNotFound, got %v", err)
	}

	other := authedContext(t, uuid.New())
	if _, err := svc.AddSet(other, session.ID.String(), CreateSetDTO{
		ExerciseID: exercise.ID.String(), Weight: 100, Reps: 5,
	}); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("foreign session: expected ErrSessionNotFound, got %v", err)
	}
}

func TestDeleteSessionCascades(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := authedContext(t, uuid.New())
	session, exercise := setupSession(t, svc, ctx)

	for i := 1; i <= 3; i++ {
		if _, err := svc.AddSet(ctx, session.ID.String(), CreateSetDTO{
			ExerciseID: exercise.ID.String(), SetNumber: i, Weight: 100, Reps: 5,
		}); err != nil {
			t.Fatalf("AddSet failed: %v", err)
		}
	}

	t.Run("FailureDeletesNothing", func(t *testing.T) {
		repo.failSessionDelete = true
		if err := svc.DeleteSession(ctx, session.ID.String()); err == nil {
			t.Fatal("expected DeleteSession to fail")
		}
		repo.failSessionDelete = false

		if len(repo.sets) != 3 {
			t.Errorf("failed delete must leave all sets intact, %d remain", len(repo.sets))
		}
		if _, err := svc.GetSession(ctx, session.ID.String()); err != nil {
			t.Errorf("failed delete must leave the session intact: %v", err)
		}
	})

	t.Run("SuccessDeletesAll", func(t *testing.T) {
		if err := svc.DeleteSession(ctx, session.ID.String()); err != nil {
			t.Fatalf("DeleteSession failed: %v", err)
		}
		if len(repo.sets) != 0 {
			t.Errorf("sets should cascade on session delete, %d remain", len(repo.sets))
		}
		if _, err := svc.GetSession(ctx, session.ID.String()); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("session should be gone, got %v", err)
		}
	})
}

func TestSeedExercises(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := authedContext(t, uuid.New())

	result, err := svc.SeedExercises(ctx)
	if err != nil {
		t.Fatalf("SeedExercises failed: %v", err)
	}
	if !result.Seeded || result.Inserted != len(defaultExercises) {
		t.Errorf("first seed should insert the whole pool: %+v", result)
	}

	again, err := svc.SeedExercises(ctx)
	if err != nil {
		t.Fatalf("SeedExercises failed: %v", err)
	}
	if again.Seeded || again.Inserted != 0 {
		t.Errorf("second seed should be a no-op: %+v", again)
	}

	count, _ := repo.CountDefaultExercises()
	if count != int64(len(defaultExercises)) {
		t.Errorf("pool size after reseed: want %d, got %d", len(defaultExercises), count)
	}
}

func TestDuplicateTemplate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := authedContext(t, uuid.New())

	original, err := svc.CreateTemplate(ctx, CreateTemplateDTO{
		Name:        "Upper Body",
		Description: "Push and pull",
	})
	if err != nil {
		t.Fatalf("CreateTemplate failed: %v", err)
	}

	dup, err := svc.DuplicateTemplate(ctx, original.ID.String())
	if err != nil {
		t.Fatalf("DuplicateTemplate failed: %v", err)
	}

	if dup.Name != "Upper Body (Copy)" {
		t.Errorf("duplicate name: want %q, got %q", "Upper Body (Copy)", dup.Name)
	}
	if dup.ID == original.ID {
		t.Error("duplicate must get its own id")
	}
	if dup.Description != original.Description {
		t.Errorf("duplicate should carry the description, got %q", dup.Description)
	}

	templates, err := svc.ListTemplates(ctx)
	if err != nil {
		t.Fatalf("ListTemplates failed: %v", err)
	}
	if len(templates) != 2 {
		t.Errorf("expected 2 templates after duplication, got %d", len(templates))
	}
}

func TestStats(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := authedContext(t, uuid.New())
	session, exercise := setupSession(t, svc, ctx)

	if _, err := svc.AddSet(ctx, session.ID.String(), CreateSetDTO{
		ExerciseID: exercise.ID.String(), SetNumber: 1, Weight: 100, Reps: 5,
	}); err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}
	if _, err := svc.AddSet(ctx, session.ID.String(), CreateSetDTO{
		ExerciseID: exercise.ID.String(), SetNumber: 2, Weight: 80, Reps: 10,
	}); err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalSessions != 1 {
		t.Errorf("total sessions: want 1, got %d", stats.TotalSessions)
	}
	if stats.TotalVolume != 100*5+80*10 {
		t.Errorf("total volume: want %v, got %v", 100*5+80*10, stats.TotalVolume)
	}
	if stats.PersonalRecords != 1 {
		t.Errorf("personal records: want 1, got %d", stats.PersonalRecords)
	}

	sessionStats, err := svc.SessionStats(ctx, session.ID.String())
	if err != nil {
		t.Fatalf("SessionStats failed: %v", err)
	}
	if sessionStats.TotalSets != 2 || sessionStats.TotalExercises != 1 {
		t.Errorf("session stats: %+v", sessionStats)
	}
}
