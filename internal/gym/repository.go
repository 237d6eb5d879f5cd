package gym

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type GymRepository interface {
	// Exercises: the shared pool (is_custom false) is visible to everyone,
	// custom entries only to their owner.
	CreateExercise(e *Exercise) error
	CreateExercises(exercises []*Exercise) error
	ListExercisesForUser(userID uuid.UUID, category ExerciseCategory) ([]*Exercise, error)
	FindExerciseForUser(id, userID uuid.UUID) (*Exercise, error)
	DeleteCustomExercise(id, userID uuid.UUID) error
	CountDefaultExercises() (int64, error)

	CreateRoutine(r *WorkoutRoutine) error
	ListRoutinesByUser(userID uuid.UUID) ([]*WorkoutRoutine, error)
	FindRoutineByIDAndUser(id, userID uuid.UUID) (*WorkoutRoutine, error)
	UpdateRoutine(r *WorkoutRoutine) error
	DeleteRoutine(id, userID uuid.UUID) error

	CreateTemplate(t *WorkoutTemplate) error
	ListTemplatesByUser(userID uuid.UUID) ([]*WorkoutTemplate, error)
	FindTemplateByIDAndUser(id, userID uuid.UUID) (*WorkoutTemplate, error)
	UpdateTemplate(t *WorkoutTemplate) error
	DeleteTemplate(id, userID uuid.UUID) error

	CreateSession(s *WorkoutSession) error
	ListSessionsByUser(userID uuid.UUID, limit int) ([]*WorkoutSession, error)
	FindSessionByIDAndUser(id, userID uuid.UUID) (*WorkoutSession, error)
	UpdateSession(s *WorkoutSession) error

	// DeleteSessionCascade removes the session and all of its sets in one
	// transaction; either everything is deleted or nothing is.
	DeleteSessionCascade(id, userID uuid.UUID) error

	CreateSet(set *ExerciseSet) error
	ListSetsBySession(sessionID, userID uuid.UUID) ([]*ExerciseSet, error)
	ListSetsByExercise(exerciseID, userID uuid.UUID) ([]*ExerciseSet, error)
	DeleteSet(id, userID uuid.UUID) error
	MaxWeightForExercise(exerciseID, userID uuid.UUID) (float64, bool, error)

	CreateEquipment(e *Equipment) error
	ListEquipmentByUser(userID uuid.UUID) ([]*Equipment, error)
	FindEquipmentByIDAndUser(id, userID uuid.UUID) (*Equipment, error)
	UpdateEquipment(e *Equipment) error
	DeleteEquipment(id, userID uuid.UUID) error

	Stats(userID uuid.UUID, weekStart time.Time) (*WorkoutStats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) GymRepository {
	return &repository{db: db}
}

func (r *repository) CreateExercise(e *Exercise) error {
	return r.db.Create(e).Error
}

func (r *repository) CreateExercises(exercises []*Exercise) error {
	return r.db.Create(&exercises).Error
}

func (r *repository) ListExercisesForUser(userID uuid.UUID, category ExerciseCategory) ([]*Exercise, error) {
	var exercises []*Exercise
	q := r.db.Where("is_custom = false OR user_id = ?", userID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Order("name ASC").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *repository) FindExerciseForUser(id, userID uuid.UUID) (*Exercise, error) {
	var e Exercise
	err := r.db.
		Where("id = ? AND (is_custom = false OR user_id = ?)", id, userID).
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) DeleteCustomExercise(id, userID uuid.UUID) error {
	result := r.db.Delete(&Exercise{}, "id = ? AND user_id = ? AND is_custom = true", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) CountDefaultExercises() (int64, error) {
	var count int64
	err := r.db.Model(&Exercise{}).Where("is_custom = false").Count(&count).Error
	return count, err
}

func (r *repository) CreateRoutine(routine *WorkoutRoutine) error {
	return r.db.Create(routine).Error
}

func (r *repository) ListRoutinesByUser(userID uuid.UUID) ([]*WorkoutRoutine, error) {
	var routines []*WorkoutRoutine
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&routines).Error; err != nil {
		return nil, err
	}
	return routines, nil
}

func (r *repository) FindRoutineByIDAndUser(id, userID uuid.UUID) (*WorkoutRoutine, error) {
	var routine WorkoutRoutine
	if err := r.db.First(&routine, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &routine, nil
}

func (r *repository) UpdateRoutine(routine *WorkoutRoutine) error {
	return r.db.Save(routine).Error
}

func (r *repository) DeleteRoutine(id, userID uuid.UUID) error {
	result := r.db.Delete(&WorkoutRoutine{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) CreateTemplate(t *WorkoutTemplate) error {
	return r.db.Create(t).Error
}

func (r *repository) ListTemplatesByUser(userID uuid.UUID) ([]*WorkoutTemplate, error) {
	var templates []*WorkoutTemplate
	if err := r.db.
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *repository) FindTemplateByIDAndUser(id, userID uuid.UUID) (*WorkoutTemplate, error) {
	var t WorkoutTemplate
	if err := r.db.First(&t, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) UpdateTemplate(t *WorkoutTemplate) error {
	return r.db.Save(t).Error
}

func (r *repository) DeleteTemplate(id, userID uuid.UUID) error {
	result := r.db.Delete(&WorkoutTemplate{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) CreateSession(s *WorkoutSession) error {
	return r.db.Create(s).Error
}

func (r *repository) ListSessionsByUser(userID uuid.UUID, limit int) ([]*WorkoutSession, error) {
	var sessions []*WorkoutSession
	q := r.db.Where("user_id = ?", userID).Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *repository) FindSessionByIDAndUser(id, userID uuid.UUID) (*WorkoutSession, error) {
	var s WorkoutSession
	if err := r.db.First(&s, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) UpdateSession(s *WorkoutSession) error {
	return r.db.Save(s).Error
}

func (r *repository) DeleteSessionCascade(id, userID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ExerciseSet{}, "workout_session_id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}
		result := tx.Delete(&WorkoutSession{}, "id = ? AND user_id = ?", id, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *repository) CreateSet(set *ExerciseSet) error {
	return r.db.Create(set).Error
}

func (r *repository) ListSetsBySession(sessionID, userID uuid.UUID) ([]*ExerciseSet, error) {
	var sets []*ExerciseSet
	if err := r.db.
		Where("workout_session_id = ? AND user_id = ?", sessionID, userID).
		Order("set_number ASC").
		Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *repository) ListSetsByExercise(exerciseID, userID uuid.UUID) ([]*ExerciseSet, error) {
	var sets []*ExerciseSet
	if err := r.db.
		Where("exercise_id = ? AND user_id = ?", exerciseID, userID).
		Order("created_at ASC").
		Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *repository) DeleteSet(id, userID uuid.UUID) error {
	result := r.db.Delete(&ExerciseSet{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) MaxWeightForExercise(exerciseID, userID uuid.UUID) (float64, bool, error) {
	var max *float64
	err := r.db.Model(&ExerciseSet{}).
		Select("MAX(weight)").
		Where("exercise_id = ? AND user_id = ?", exerciseID, userID).
		Scan(&max).Error
	if err != nil {
		return 0, false, err
	}
	if max == nil {
		return 0, false, nil
	}
	return *max, true, nil
}

func (r *repository) CreateEquipment(e *Equipment) error {
	return r.db.Create(e).Error
}

func (r *repository) ListEquipmentByUser(userID uuid.UUID) ([]*Equipment, error) {
	var equipment []*Equipment
	if err := r.db.
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&equipment).Error; err != nil {
		return nil, err
	}
	return equipment, nil
}

func (r *repository) FindEquipmentByIDAndUser(id, userID uuid.UUID) (*Equipment, error) {
	var e Equipment
	if err := r.db.First(&e, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) UpdateEquipment(e *Equipment) error {
	return r.db.Save(e).Error
}

func (r *repository) DeleteEquipment(id, userID uuid.UUID) error {
	result := r.db.Delete(&Equipment{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Stats(userID uuid.UUID, weekStart time.Time) (*WorkoutStats, error) {
	stats := &WorkoutStats{}

	if err := r.db.Model(&WorkoutSession{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalSessions).Error; err != nil {
		return nil, err
	}

	var volume *float64
	if err := r.db.Model(&ExerciseSet{}).
		Select("COALESCE(SUM(weight * reps), 0)").
		Where("user_id = ?", userID).
		Scan(&volume).Error; err != nil {
		return nil, err
	}
	if volume != nil {
		stats.TotalVolume = *volume
	}

	if err := r.db.Model(&ExerciseSet{}).
		Where("user_id = ? AND is_personal_record = true", userID).
		Count(&stats.PersonalRecords).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&WorkoutSession{}).
		Where("user_id = ? AND date >= ?", userID, weekStart).
		Count(&stats.SessionsThisWeek).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
