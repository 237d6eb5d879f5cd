package planner

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type EventRepository interface {
	Create(e *Event) error
	ListByUser(userID uuid.UUID) ([]*Event, error)
	ListByUserInRange(userID uuid.UUID, from, to time.Time) ([]*Event, error)
	FindByIDAndUser(id, userID uuid.UUID) (*Event, error)
	Update(e *Event) error
	Delete(id, userID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) EventRepository {
	return &repository{db: db}
}

func (r *repository) Create(e *Event) error {
	return r.db.Create(e).Error
}

func (r *repository) ListByUser(userID uuid.UUID) ([]*Event, error) {
	var events []*Event
	if err := r.db.
		Where("user_id = ?", userID).
		Order("start ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListByUserInRange filters on the start column only; the original store
// allowed range conditions on a single field per query.
func (r *repository) ListByUserInRange(userID uuid.UUID, from, to time.Time) ([]*Event, error) {
	var events []*Event
	if err := r.db.
		Where("user_id = ? AND start >= ? AND start <= ?", userID, from, to).
		Order("start ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repository) FindByIDAndUser(id, userID uuid.UUID) (*Event, error) {
	var e Event
	if err := r.db.First(&e, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) Update(e *Event) error {
	return r.db.Save(e).Error
}

func (r *repository) Delete(id, userID uuid.UUID) error {
	result := r.db.Delete(&Event{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
