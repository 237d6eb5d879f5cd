package goal

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/kaamkar-app/kaamkar-lambda/internal/auth"
	"github.com/kaamkar-app/kaamkar-lambda/internal/config"
)

var (
	ErrGoalNotFound   = errors.New("goal not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidID      = errors.New("invalid id format")
	ErrEmptyTitle     = errors.New("title must not be empty")
	ErrInvalidTarget  = errors.New("target value must be positive")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrInvalidProgress = errors.New("progress value must be positive")
)

type GoalService interface {
	Create(ctx context.Context, dto CreateGoalDTO) (*Goal, error)
	List(ctx context.Context, category string) ([]*Goal, error)
	GetByID(ctx context.Context, id string) (*Goal, error)
	Update(ctx context.Context, id string, dto UpdateGoalDTO) (*Goal, error)
	Delete(ctx context.Context, id string) error

	AddProgress(ctx context.Context, goalID string, dto AddProgressDTO) (*ProgressResult, error)
	ListProgress(ctx context.Context, goalID string) ([]*ProgressUpdate, error)
}

type service struct {
	repo GoalRepository
}

func NewService(repo GoalRepository) GoalService {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, dto CreateGoalDTO) (*Goal, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if strings.TrimSpace(dto.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if dto.TargetValue <= 0 {
		return nil, ErrInvalidTarget
	}

	g := &Goal{
		Title:           dto.Title,
		Description:     dto.Description,
		Category:        dto.Category,
		TargetDate:      dto.TargetDate,
		TargetValue:     dto.TargetValue,
		CurrentProgress: 0,
		Unit:            dto.Unit,
		Status:          StatusNotStarted,
		RelatedTodos:    dto.RelatedTodos,
		UserID:          userID,
	}

	if err := s.repo.Create(g); err != nil {
		log.WithError(err).Error("Failed to create goal")
		return nil, err
	}

	log.WithField("goal_id", g.ID).Info("Goal created")
	return g, nil
}

func (s *service) List(ctx context.Context, category string) ([]*Goal, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	goals, err := s.repo.ListByUser(userID, category)
	if err != nil {
		log.WithError(err).Error("Failed to list goals")
		return nil, err
	}
	return goals, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Goal, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	goalID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	g, err := s.repo.FindByIDAndUser(goalID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateGoalDTO) (*Goal, error) {
	log := config.WithContext(ctx)

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		if strings.TrimSpace(*dto.Title) == "" {
			return nil, ErrEmptyTitle
		}
		existing.Title = *dto.Title
	}
	if dto.Description != nil {
		existing.Description = *dto.Description
	}
	if dto.Category != nil {
		existing.Category = *dto.Category
	}
	if dto.TargetDate != nil {
		existing.TargetDate = dto.TargetDate
	}
	if dto.TargetValue != nil {
		if *dto.TargetValue <= 0 {
			return nil, ErrInvalidTarget
		}
		existing.TargetValue = *dto.TargetValue
	}
	if dto.Unit != nil {
		existing.Unit = *dto.Unit
	}
	if dto.Status != nil {
		if !dto.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		existing.Status = *dto.Status
	}
	if dto.RelatedTodos != nil {
		existing.RelatedTodos = *dto.RelatedTodos
	}

	if err := s.repo.Update(existing); err != nil {
		log.WithError(err).Error("Failed to update goal")
		return nil, err
	}

	return existing, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}

	goalID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.repo.DeleteCascade(goalID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrGoalNotFound
		}
		log.WithError(err).Error("Failed to delete goal")
		return err
	}

	log.WithField("goal_id", id).Info("Goal and progress updates deleted")
	return nil
}

func (s *service) AddProgress(ctx context.Context, goalID string, dto AddProgressDTO) (*ProgressResult, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	gid, err := uuid.Parse(goalID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if dto.Value <= 0 {
		return nil, ErrInvalidProgress
	}

	// Confirm ownership before writing anything.
	if _, err := s.repo.FindByIDAndUser(gid, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}

	update := &ProgressUpdate{
		GoalID: gid,
		Value:  dto.Value,
		Notes:  dto.Notes,
		UserID: userID,
	}

	if err := s.repo.AddProgress(update); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		log.WithError(err).Error("Failed to record progress update")
		return nil, err
	}

	// Re-read after the atomic increment, then settle the status.
	g, err := s.repo.FindByIDAndUser(gid, userID)
	if err != nil {
		return nil, err
	}

	if next := NextStatus(g.Status, g.CurrentProgress, g.TargetValue); next != g.Status {
		g.Status = next
		if err := s.repo.Update(g); err != nil {
			log.WithError(err).Error("Failed to persist goal status transition")
			return nil, err
		}
	}

	log.WithField("goal_id", goalID).Info("Progress recorded")
	return &ProgressResult{Update: update, Goal: g}, nil
}

func (s *service) ListProgress(ctx context.Context, goalID string) ([]*ProgressUpdate, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	gid, err := uuid.Parse(goalID)
	if err != nil {
		return nil, ErrInvalidID
	}

	return s.repo.ListProgressByGoal(gid, userID)
}
