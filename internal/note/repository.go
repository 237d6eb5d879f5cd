package note

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type NoteRepository interface {
	Create(n *Note) error
	ListByUser(userID uuid.UUID, categoryID *uuid.UUID) ([]*Note, error)
	FindByIDAndUser(id, userID uuid.UUID) (*Note, error)
	Update(n *Note) error
	Delete(id, userID uuid.UUID) error

	CreateCategory(c *NoteCategory) error
	ListCategoriesByUser(userID uuid.UUID) ([]*NoteCategory, error)
	DeleteCategory(id, userID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) NoteRepository {
	return &repository{db: db}
}

func (r *repository) Create(n *Note) error {
	return r.db.Create(n).Error
}

func (r *repository) ListByUser(userID uuid.UUID, categoryID *uuid.UUID) ([]*Note, error) {
	var notes []*Note
	q := r.db.Where("user_id = ?", userID)
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if err := q.Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *repository) FindByIDAndUser(id, userID uuid.UUID) (*Note, error) {
	var n Note
	if err := r.db.First(&n, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *repository) Update(n *Note) error {
	return r.db.Save(n).Error
}

func (r *repository) Delete(id, userID uuid.UUID) error {
	result := r.db.Delete(&Note{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) CreateCategory(c *NoteCategory) error {
	return r.db.Create(c).Error
}

func (r *repository) ListCategoriesByUser(userID uuid.UUID) ([]*NoteCategory, error) {
	var categories []*NoteCategory
	if err := r.db.
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *repository) DeleteCategory(id, userID uuid.UUID) error {
	result := r.db.Delete(&NoteCategory{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
