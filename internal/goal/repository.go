package goal

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type GoalRepository interface {
	Create(g *Goal) error
	ListByUser(userID uuid.UUID, category string) ([]*Goal, error)
	FindByIDAndUser(id, userID uuid.UUID) (*Goal, error)
	Update(g *Goal) error

	// DeleteCascade removes the goal and all of its progress updates in one
	// transaction; either everything is deleted or nothing is.
	DeleteCascade(id, userID uuid.UUID) error

	// AddProgress inserts the update and applies the increment to the goal's
	// current_progress with a SQL-side expression, in one transaction. The
	// increment never goes through a client read-modify-write, so concurrent
	// submissions from several devices cannot lose updates.
	AddProgress(u *ProgressUpdate) error

	ListProgressByGoal(goalID, userID uuid.UUID) ([]*ProgressUpdate, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) GoalRepository {
	return &repository{db: db}
}

func (r *repository) Create(g *Goal) error {
	return r.db.Create(g).Error
}

func (r *repository) ListByUser(userID uuid.UUID, category string) ([]*Goal, error) {
	var goals []*Goal
	q := r.db.Where("user_id = ?", userID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) FindByIDAndUser(id, userID uuid.UUID) (*Goal, error) {
	var g Goal
	if err := r.db.First(&g, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *repository) Update(g *Goal) error {
	return r.db.Save(g).Error
}

func (r *repository) DeleteCascade(id, userID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ProgressUpdate{}, "goal_id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}
		result := tx.Delete(&Goal{}, "id = ? AND user_id = ?", id, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *repository) AddProgress(u *ProgressUpdate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		result := tx.Model(&Goal{}).
			Where("id = ? AND user_id = ?", u.GoalID, u.UserID).
			Updates(map[string]interface{}{
				"current_progress": gorm.Expr("current_progress + ?", u.Value),
				"updated_at":       time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *repository) ListProgressByGoal(goalID, userID uuid.UUID) ([]*ProgressUpdate, error) {
	var updates []*ProgressUpdate
	if err := r.db.
		Where("goal_id = ? AND user_id = ?", goalID, userID).
		Order("created_at ASC").
		Find(&updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}
