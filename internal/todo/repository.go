package todo

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type TodoRepository interface {
	Create(t *Todo) error
	ListByUser(userID uuid.UUID) ([]*Todo, error)
	FindByIDAndUser(id, userID uuid.UUID) (*Todo, error)
	Update(t *Todo) error
	Delete(id, userID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TodoRepository {
	return &repository{db: db}
}

func (r *repository) Create(t *Todo) error {
	return r.db.Create(t).Error
}

func (r *repository) ListByUser(userID uuid.UUID) ([]*Todo, error) {
	var todos []*Todo
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *repository) FindByIDAndUser(id, userID uuid.UUID) (*Todo, error) {
	var t Todo
	if err := r.db.First(&t, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) Update(t *Todo) error {
	return r.db.Save(t).Error
}

func (r *repository) Delete(id, userID uuid.UUID) error {
	result := r.db.Delete(&Todo{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
