package planner

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kaamkar-app/kaamkar-lambda/internal/auth"
	"github.com/kaamkar-app/kaamkar-lambda/internal/config"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidID     = errors.New("invalid id format")
	ErrEmptyTitle    = errors.New("title must not be empty")
	ErrInvalidRange  = errors.New("event end must not be before start")
)

type EventService interface {
	Create(ctx context.Context, dto CreateEventDTO) (*Event, error)
	List(ctx context.Context, from, to *time.Time) ([]*Event, error)
	Update(ctx context.Context, id string, dto UpdateEventDTO) (*Event, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo EventRepository
}

func NewService(repo EventRepository) EventService {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, dto CreateEventDTO) (*Event, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if strings.TrimSpace(dto.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if dto.Start == nil || dto.End == nil {
		return nil, ErrInvalidRange
	}
	if dto.End.Time.Before(dto.Start.Time) {
		return nil, ErrInvalidRange
	}

	e := &Event{
		Title:       dto.Title,
		Description: dto.Description,
		Start:       *dto.Start,
		End:         *dto.End,
		AllDay:      dto.AllDay,
		UserID:      userID,
	}

	if err := s.repo.Create(e); err != nil {
		log.WithError(err).Error("Failed to create event")
		return nil, err
	}

	log.WithField("event_id", e.ID).Info("Event created")
	return e, nil
}

func (s *service) List(ctx context.Context, from, to *time.Time) ([]*Event, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	var (
		events []*Event
	)
	if from != nil && to != nil {
		events, err = s.repo.ListByUserInRange(userID, *from, *to)
	} else {
		events, err = s.repo.ListByUser(userID)
	}
	if err != nil {
		log.WithError(err).Error("Failed to list events")
		return nil, err
	}
	return events, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateEventDTO) (*Event, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	existing, err := s.repo.FindByIDAndUser(eventID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrEventNotFound
		}
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
	if dto.Start != nil {
		existing.Start = *dto.Start
	}
	if dto.End != nil {
		existing.End = *dto.End
	}
	if dto.AllDay != nil {
		existing.AllDay = *dto.AllDay
	}

	if existing.End.Time.Before(existing.Start.Time) {
		return nil, ErrInvalidRange
	}

	if err := s.repo.Update(existing); err != nil {
		log.WithError(err).Error("Failed to update event")
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

	eventID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.repo.Delete(eventID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrEventNotFound
		}
		log.WithError(err).Error("Failed to delete event")
		return err
	}

	log.WithField("event_id", id).Info("Event deleted")
	return nil
}
