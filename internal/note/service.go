package note

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/kaamkar-app/kaamkar-lambda/internal/auth"
	"github.com/kaamkar-app/kaamkar-lambda/internal/config"
)

var (
	ErrNoteNotFound     = errors.New("note not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidID        = errors.New("invalid id format")
	ErrEmptyTitle       = errors.New("title must not be empty")
)

type NoteService interface {
	Create(ctx context.Context, dto CreateNoteDTO) (*Note, error)
	List(ctx context.Context, categoryID *uuid.UUID) ([]*Note, error)
	GetByID(ctx context.Context, id string) (*Note, error)
	Update(ctx context.Context, id string, dto UpdateNoteDTO) (*Note, error)
	Delete(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, dto CreateCategoryDTO) (*NoteCategory, error)
	ListCategories(ctx context.Context) ([]*NoteCategory, error)
	DeleteCategory(ctx context.Context, id string) error
}

type service struct {
	repo NoteRepository
}

func NewService(repo NoteRepository) NoteService {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, dto CreateNoteDTO) (*Note, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if strings.TrimSpace(dto.Title) == "" {
		return nil, ErrEmptyTitle
	}

	n := &Note{
		Title:      dto.Title,
		Content:    dto.Content,
		CategoryID: dto.CategoryID,
		Formatting: dto.Formatting,
		Tags:       dto.Tags,
		UserID:     userID,
	}

	if err := s.repo.Create(n); err != nil {
		log.WithError(err).Error("Failed to create note")
		return nil, err
	}

	log.WithField("note_id", n.ID).Info("Note created")
	return n, nil
}

func (s *service) List(ctx context.Context, categoryID *uuid.UUID) ([]*Note, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	notes, err := s.repo.ListByUser(userID, categoryID)
	if err != nil {
		log.WithError(err).Error("Failed to list notes")
		return nil, err
	}
	return notes, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Note, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	noteID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	n, err := s.repo.FindByIDAndUser(noteID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return n, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateNoteDTO) (*Note, error) {
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
	if dto.Content != nil {
		existing.Content = *dto.Content
	}
	if dto.CategoryID != nil {
		existing.CategoryID = dto.CategoryID
	}
	if dto.Formatting != nil {
		existing.Formatting = *dto.Formatting
	}
	if dto.Tags != nil {
		existing.Tags = *dto.Tags
	}

	if err := s.repo.Update(existing); err != nil {
		log.WithError(err).Error("Failed to update note")
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

	noteID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.repo.Delete(noteID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNoteNotFound
		}
		log.WithError(err).Error("Failed to delete note")
		return err
	}

	log.WithField("note_id", id).Info("Note deleted")
	return nil
}

func (s *service) CreateCategory(ctx context.Context, dto CreateCategoryDTO) (*NoteCategory, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if strings.TrimSpace(dto.Name) == "" {
		return nil, ErrEmptyTitle
	}

	c := &NoteCategory{
		Name:     dto.Name,
		ParentID: dto.ParentID,
		UserID:   userID,
	}

	if err := s.repo.CreateCategory(c); err != nil {
		log.WithError(err).Error("Failed to create note category")
		return nil, err
	}
	return c, nil
}

func (s *service) ListCategories(ctx context.Context) ([]*NoteCategory, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return s.repo.ListCategoriesByUser(userID)
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}

	categoryID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.repo.DeleteCategory(categoryID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}
