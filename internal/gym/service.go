package gym

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kaamkar-app/kaamkar-lambda/internal/auth"
	"github.com/kaamkar-app/kaamkar-lambda/internal/config"
	util "github.com/kaamkar-app/kaamkar-lambda/internal/utils"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidID         = errors.New("invalid id format")
	ErrEmptyName         = errors.New("name must not be empty")
	ErrInvalidCategory   = errors.New("invalid exercise category")
	ErrInvalidEquipment  = errors.New("invalid equipment type")
	ErrInvalidFrequency  = errors.New("invalid routine frequency")
	ErrInvalidSet        = errors.New("weight must be non-negative and reps positive")
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrRoutineNotFound   = errors.New("workout routine not found")
	ErrTemplateNotFound  = errors.New("workout template not found")
	ErrSessionNotFound   = errors.New("workout session not found")
	ErrSetNotFound       = errors.New("exercise set not found")
	ErrEquipmentNotFound = errors.New("equipment not found")
)

type GymService interface {
	SeedExercises(ctx context.Context) (*SeedResult, error)
	CreateExercise(ctx context.Context, dto CreateExerciseDTO) (*Exercise, error)
	ListExercises(ctx context.Context, category string) ([]*Exercise, error)
	DeleteExercise(ctx context.Context, id string) error
	ExerciseProgress(ctx context.Context, exerciseID string) ([]*ProgressPoint, error)

	CreateRoutine(ctx context.Context, dto CreateRoutineDTO) (*WorkoutRoutine, error)
	ListRoutines(ctx context.Context) ([]*WorkoutRoutine, error)
	UpdateRoutine(ctx context.Context, id string, dto UpdateRoutineDTO) (*WorkoutRoutine, error)
	DeleteRoutine(ctx context.Context, id string) error

	CreateTemplate(ctx context.Context, dto CreateTemplateDTO) (*WorkoutTemplate, error)
	ListTemplates(ctx context.Context) ([]*WorkoutTemplate, error)
	UpdateTemplate(ctx context.Context, id string, dto UpdateTemplateDTO) (*WorkoutTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error
	DuplicateTemplate(ctx context.Context, id string) (*WorkoutTemplate, error)

	CreateSession(ctx context.Context, dto CreateSessionDTO) (*WorkoutSession, error)
	ListSessions(ctx context.Context, limit int) ([]*WorkoutSession, error)
	GetSession(ctx context.Context, id string) (*WorkoutSession, error)
	UpdateSession(ctx context.Context, id string, dto UpdateSessionDTO) (*WorkoutSession, error)
	DeleteSession(ctx context.Context, id string) error
	SessionStats(ctx context.Context, id string) (*SessionStats, error)

	AddSet(ctx context.Context, sessionID string, dto CreateSetDTO) (*ExerciseSet, error)
	ListSets(ctx context.Context, sessionID string) ([]*ExerciseSet, error)
	DeleteSet(ctx context.Context, id string) error

	CreateEquipment(ctx context.Context, dto CreateEquipmentDTO) (*Equipment, error)
	ListEquipment(ctx context.Context) ([]*Equipment, error)
	UpdateEquipment(ctx context.Context, id string, dto UpdateEquipmentDTO) (*Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error

	Stats(ctx context.Context) (*WorkoutStats, error)
}

type service struct {
	repo GymRepository
}

func NewService(repo GymRepository) GymService {
	return &service{repo: repo}
}

// SeedExercises inserts the default pool once. A non-empty pool means a
// previous seed already ran, so the call is a no-op.
func (s *service) SeedExercises(ctx context.Context) (*SeedResult, error) {
	log := config.WithContext(ctx)
	if _, err := auth.UserIDFromContext(ctx); err != nil {
		return nil, ErrUnauthorized
	}

	count, err := s.repo.CountDefaultExercises()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &SeedResult{Seeded: false, Inserted: 0}, nil
	}

	pool := make([]*Exercise, len(defaultExercises))
	for i, e := range defaultExercises {
		copied := *e
		pool[i] = &copied
	}
	if err := s.repo.CreateExercises(pool); err != nil {
		log.WithError(err).Error("Failed to seed default exercises")
		return nil, err
	}

	log.WithField("inserted", len(pool)).Info("Default exercise pool seeded")
	return &SeedResult{Seeded: true, Inserted: len(pool)}, nil
}

func (s *service) CreateExercise(ctx context.Context, dto CreateExerciseDTO) (*Exercise, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if strings.TrimSpace(dto.Name) == "" {
		return nil, ErrEmptyName
	}
	if !dto.Category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if !dto.Equipment.IsValid() {
		return nil, ErrInvalidEquipment
	}

	e := &Exercise{
		Name:         dto.Name,
		Category:     dto.Category,
		Equipment:    dto.Equipment,
		Description:  dto.Description,
		Instructions: dto.Instructions,
		IsCustom:     true,
		UserID:       &userID,
	}
	if err := s.repo.CreateExercise(e); err != nil {
		log.WithError(err).Error("Failed to create exercise")
		return nil, err
	}
	return e, nil
}

func (s *service) ListExercises(ctx context.Context, category string) ([]*Exercise, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	cat := ExerciseCategory(category)
	if category != "" && !cat.IsValid() {
		return nil, ErrInvalidCategory
	}
	return s.repo.ListExercisesForUser(userID, cat)
}

func (s *service) DeleteExercise(ctx context.Context, id string) error {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}

	exerciseID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	// Only the owner's custom exercises are deletable; the shared pool is
	// read-only for everyone.
	if err := s.repo.DeleteCustomExercise(exerciseID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}

func (s *service) ExerciseProgress(ctx context.Context, exerciseID string) ([]*ProgressPoint, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	eid, err := uuid.Parse(exerciseID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if _, err := s.repo.FindExerciseForUser(eid, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	sets, err := s.repo.ListSetsByExercise(eid, userID)
	if err != nil {
		return nil, err
	}

	points := make([]*ProgressPoint, 0, len(sets))
	for _, set := range sets {
		points = append(points, &ProgressPoint{
			Date:             set.CreatedAt,
			Weight:           set.Weight,
			Reps:             set.Reps,
			EstimatedOneRM:   OneRepMax(set.Weight, set.Reps),
			IsPersonalRecord: set.IsPersonalRecord,
		})
	}
	return points, nil
}

func (s *service) CreateRoutine(ctx context.Context, dto CreateRoutineDTO) (*WorkoutRoutine, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if strings.TrimSpace(dto.Name) == "" {
		return nil, ErrEmptyName
	}
	if !dto.Frequency.IsValid() {
		return nil, ErrInvalidFrequency
	}

	routine := &WorkoutRoutine{
		Name:        dto.Name,
		Description: dto.Description,
		Frequency:   dto.Frequency,
		Days:        dto.Days,
		UserID:      userID,
	}
	if err := s.repo.CreateRoutine(routine); err != nil {
		log.WithError(err).Error("Failed to create workout routine")
		return nil, err
	}
	return routine, nil
}

func (s *service) ListRoutines(ctx context.Context) ([]*WorkoutRoutine, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return s.repo.ListRoutinesByUser(userID)
}

func (s *service) UpdateRoutine(ctx context.Context, id string, dto UpdateRoutineDTO) (*WorkoutRoutine, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	routineID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	routine, err := s.repo.FindRoutineByIDAndUser(routineID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}

	if dto.Name != nil {
		if strings.TrimSpace(*dto.Name) == "" {
			return nil, ErrEmptyName
		}
		routine.Name = *dto.Name
	}
	if dto.Description != nil {
		routine.Description = *dto.Description
	}
	if dto.Frequency != nil {
		if !dto.Frequency.IsValid() {
			return nil, ErrInvalidFrequency
		}
		routine.Frequency = *dto.Frequency
	}
	if dto.Days != nil {
		routine.Days = *dto.Days
	}

	if err := s.repo.UpdateRoutine(routine); err != nil {
		log.WithError(err).Error("Failed to update workout routine")
		return nil, err
	}
	return routine, nil
}

func (s *service) DeleteRoutine(ctx context.Context, id string) error {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}

	routineID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.repo.DeleteRoutine(routineID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrRoutineNotFound
		}
		return err
	}
	return nil
}

func (s *service) CreateTemplate(ctx context.Context, dto CreateTemplateDTO) (*WorkoutTemplate, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if strings.TrimSpace(dto.Name) == "" {
		return nil, ErrEmptyName
	}

	t := &WorkoutTemplate{
		Name:        dto.Name,
		Description: dto.Description,
		Exercises:   dto.Exercises,
		UserID:      userID,
	}
	if err := s.repo.CreateTemplate(t); err != nil {
		log.WithError(err).Error("Failed to create workout template")
		return nil, err
	}
	return t, nil
}

func (s *service) ListTemplates(ctx context.Context) ([]*WorkoutTemplate, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return s.repo.ListTemplatesByUser(userID)
}

func (s *service) UpdateTemplate(ctx context.Context, id string, dto UpdateTemplateDTO) (*WorkoutTemplate, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	templateID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	t, err := s.repo.FindTemplateByIDAndUser(templateID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	if dto.Name != nil {
		if strings.TrimSpace(*dto.Name) == "" {
			return nil, ErrEmptyName
		}
		t.Name = *dto.Name
	}
	if dto.Description != nil {
		t.Description = *dto.Description
	}
	if dto.Exercises != nil {
		t.Exercises = *dto.Exercises
	}

	if err := s.repo.UpdateTemplate(t); err != nil {
		log.WithError(err).Error("Failed to update workout template")
		return nil, err
	}
	return t, nil
}

func (s *service) DeleteTemplate(ctx context.Context, id string) error {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}

	templateID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.repo.DeleteTemplate(templateID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrTemplateNotFound
		}
		return err
	}
	return nil
}

func (s *service) DuplicateTemplate(ctx context.Context, id string) (*WorkoutTemplate, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	templateID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	original, err := s.repo.FindTemplateByIDAndUser(templateID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	duplicate := &WorkoutTemplate{
		Name:        original.Name + " (Copy)",
		Description: original.Description,
		Exercises:   original.Exercises,
		UserID:      userID,
	}
	if err := s.repo.CreateTemplate(duplicate); err != nil {
		log.WithError(err).Error("Failed to duplicate workout template")
		return nil, err
	}
	return duplicate, nil
}

func (s *service) CreateSession(ctx context.Context, dto CreateSessionDTO) (*WorkoutSession, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if strings.TrimSpace(dto.Name) == "" {
		return nil, ErrEmptyName
	}

	session := &WorkoutSession{
		Name:     dto.Name,
		Date:     dto.Date,
		Duration: dto.Duration,
		Notes:    dto.Notes,
		UserID:   userID,
	}
	if session.Date.IsZero() {
		session.Date = util.LocalDateTime{Time: time.Now()}
	}
	if dto.RoutineID != nil && *dto.RoutineID != "" {
		routineID, err := uuid.Parse(*dto.RoutineID)
		if err != nil {
			return nil, ErrInvalidID
		}
		if _, err := s.repo.FindRoutineByIDAndUser(routineID, userID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrRoutineNotFound
			}
			return nil, err
		}
		session.RoutineID = &routineID
	}

	if err := s.repo.CreateSession(session); err != nil {
		log.WithError(err).Error("Failed to create workout session")
		return nil, err
	}
	return session, nil
}

func (s *service) ListSessions(ctx context.Context, limit int) ([]*WorkoutSession, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return s.repo.ListSessionsByUser(userID, limit)
}

func (s *service) GetSession(ctx context.Context, id string) (*WorkoutSession, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	sessionID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	session, err := s.repo.FindSessionByIDAndUser(sessionID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *service) UpdateSession(ctx context.Context, id string, dto UpdateSessionDTO) (*WorkoutSession, error) {
	log := config.WithContext(ctx)

	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		if strings.TrimSpace(*dto.Name) == "" {
			return nil, ErrEmptyName
		}
		session.Name = *dto.Name
	}
	if dto.Date != nil {
		session.Date = *dto.Date
	}
	if dto.Duration != nil {
		session.Duration = *dto.Duration
	}
	if dto.Notes != nil {
		session.Notes = *dto.Notes
	}

	if err := s.repo.UpdateSession(session); err != nil {
		log.WithError(err).Error("Failed to update workout session")
		return nil, err
	}
	return session, nil
}

func (s *service) DeleteSession(ctx context.Context, id string) error {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}

	sessionID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.repo.DeleteSessionCascade(sessionID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrSessionNotFound
		}
		log.WithError(err).Error("Failed to delete workout session")
		return err
	}

	log.WithField("session_id", id).Info("Workout session and sets deleted")
	return nil
}

func (s *service) SessionStats(ctx context.Context, id string) (*SessionStats, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	sets, err := s.repo.ListSetsBySession(session.ID, session.UserID)
	if err != nil {
		return nil, err
	}

	stats := &SessionStats{Duration: session.Duration}
	exercises := make(map[uuid.UUID]struct{})
	for _, set := range sets {
		stats.TotalVolume += SetVolume(set.Weight, set.Reps)
		stats.TotalSets++
		exercises[set.ExerciseID] = struct{}{}
		if set.IsPersonalRecord {
			stats.PersonalRecords++
		}
	}
	stats.TotalExercises = len(exercises)
	return stats, nil
}

// AddSet records a set and flags it as a personal record when it is heavier
// than every prior set of the same exercise. The first set of an exercise
// counts as a record.
func (s *service) AddSet(ctx context.Context, sessionID string, dto CreateSetDTO) (*ExerciseSet, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	sid, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, ErrInvalidID
	}
	eid, err := uuid.Parse(dto.ExerciseID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if dto.Weight < 0 || dto.Reps <= 0 {
		return nil, ErrInvalidSet
	}

	if _, err := s.repo.FindSessionByIDAndUser(sid, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	exercise, err := s.repo.FindExerciseForUser(eid, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	maxWeight, hasPrior, err := s.repo.MaxWeightForExercise(eid, userID)
	if err != nil {
		return nil, err
	}

	set := &ExerciseSet{
		WorkoutSessionID: sid,
		ExerciseID:       eid,
		ExerciseName:     exercise.Name,
		SetNumber:        dto.SetNumber,
		Weight:           dto.Weight,
		Reps:             dto.Reps,
		IsPersonalRecord: !hasPrior || dto.Weight > maxWeight,
		Notes:            dto.Notes,
		UserID:           userID,
	}
	if err := s.repo.CreateSet(set); err != nil {
		log.WithError(err).Error("Failed to record exercise set")
		return nil, err
	}
	return set, nil
}

func (s *service) ListSets(ctx context.Context, sessionID string) ([]*ExerciseSet, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListSetsBySession(session.ID, session.UserID)
}

func (s *service) DeleteSet(ctx context.Context, id string) error {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}

	setID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.repo.DeleteSet(setID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrSetNotFound
		}
		return err
	}
	return nil
}

func (s *service) CreateEquipment(ctx context.Context, dto CreateEquipmentDTO) (*Equipment, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if strings.TrimSpace(dto.Name) == "" {
		return nil, ErrEmptyName
	}

	e := &Equipment{
		Name:      dto.Name,
		Available: true,
		UserID:    userID,
	}
	if dto.Available != nil {
		e.Available = *dto.Available
	}
	if err := s.repo.CreateEquipment(e); err != nil {
		log.WithError(err).Error("Failed to create equipment")
		return nil, err
	}
	return e, nil
}

func (s *service) ListEquipment(ctx context.Context) ([]*Equipment, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return s.repo.ListEquipmentByUser(userID)
}

func (s *service) UpdateEquipment(ctx context.Context, id string, dto UpdateEquipmentDTO) (*Equipment, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	equipmentID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	e, err := s.repo.FindEquipmentByIDAndUser(equipmentID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	if dto.Name != nil {
		if strings.TrimSpace(*dto.Name) == "" {
			return nil, ErrEmptyName
		}
		e.Name = *dto.Name
	}
	if dto.Available != nil {
		e.Available = *dto.Available
	}
	if dto.LastUsed != nil {
		e.LastUsed = dto.LastUsed
	}

	if err := s.repo.UpdateEquipment(e); err != nil {
		log.WithError(err).Error("Failed to update equipment")
		return nil, err
	}
	return e, nil
}

func (s *service) DeleteEquipment(ctx context.Context, id string) error {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}

	equipmentID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.repo.DeleteEquipment(equipmentID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrEquipmentNotFound
		}
		return err
	}
	return nil
}

func (s *service) Stats(ctx context.Context) (*WorkoutStats, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return s.repo.Stats(userID, startOfWeek(time.Now()))
}

// startOfWeek returns midnight of the most recent Monday in local time.
func startOfWeek(now time.Time) time.Time {
	daysBack := int(now.Weekday()) - int(time.Monday)
	if daysBack < 0 {
		daysBack += 7
	}
	day := now.AddDate(0, 0, -daysBack)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}
