package todo

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/kaamkar-app/kaamkar-lambda/internal/auth"
	"github.com/kaamkar-app/kaamkar-lambda/internal/config"
)

var (
	ErrTodoNotFound    = errors.New("todo not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidID       = errors.New("invalid id format")
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrInvalidPriority = errors.New("invalid priority")
)

type TodoService interface {
	Create(ctx context.Context, dto CreateTodoDTO) (*Todo, error)
	List(ctx context.Context) ([]*Todo, error)
	Update(ctx context.Context, id string, dto UpdateTodoDTO) (*Todo, error)
	Toggle(ctx context.Context, id string) (*Todo, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo TodoRepository
}

func NewService(repo TodoRepository) TodoService {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, dto CreateTodoDTO) (*Todo, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if strings.TrimSpace(dto.Title) == "" {
		return nil, ErrEmptyTitle
	}

	priority := dto.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	// New todos always start out incomplete.
	t := &Todo{
		Title:     dto.Title,
		Completed: false,
		Priority:  priority,
		DueDate:   dto.DueDate,
		UserID:    userID,
	}

	if err := s.repo.Create(t); err != nil {
		log.WithError(err).Error("Failed to create todo")
		return nil, err
	}

	log.WithField("todo_id", t.ID).Info("Todo created")
	return t, nil
}

func (s *service) List(ctx context.Context) ([]*Todo, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	todos, err := s.repo.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list todos")
		return nil, err
	}
	return todos, nil
}

func (s *service) find(ctx context.Context, id string) (*Todo, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	todoID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	t, err := s.repo.FindByIDAndUser(todoID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateTodoDTO) (*Todo, error) {
	log := config.WithContext(ctx)

	existing, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		if strings.TrimSpace(*dto.Title) == "" {
			return nil, ErrEmptyTitle
		}
		existing.Title = *dto.Title
	}
	if dto.Completed != nil {
		existing.Completed = *dto.Completed
	}
	if dto.Priority != nil {
		if !dto.Priority.IsValid() {
			return nil, ErrInvalidPriority
		}
		existing.Priority = *dto.Priority
	}
	if dto.DueDate != nil {
		existing.DueDate = dto.DueDate
	}

	if err := s.repo.Update(existing); err != nil {
		log.WithError(err).Error("Failed to update todo")
		return nil, err
	}

	return existing, nil
}

func (s *service) Toggle(ctx context.Context, id string) (*Todo, error) {
	log := config.WithContext(ctx)

	existing, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Completed = !existing.Completed
	if err := s.repo.Update(existing); err != nil {
		log.WithError(err).Error("Failed to toggle todo")
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

	todoID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.repo.Delete(todoID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrTodoNotFound
		}
		log.WithError(err).Error("Failed to delete todo")
		return err
	}

	log.WithField("todo_id", id).Info("Todo deleted")
	return nil
}
