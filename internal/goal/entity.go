package goal

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Goal struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title           string         `gorm:"not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description,omitempty"`
	Category        string         `gorm:"index" json:"category,omitempty"`
	TargetDate      *time.Time     `json:"target_date,omitempty"`
	TargetValue     float64        `gorm:"not null" json:"target_value"`
	CurrentProgress float64        `gorm:"not null;default:0" json:"current_progress"`
	Unit            string         `json:"unit"`
	Status          Status         `gorm:"not null;default:not-started" json:"status"`
	RelatedTodos    datatypes.JSON `gorm:"type:jsonb" json:"related_todos,omitempty"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// ProgressUpdate is append-only; the goal's current_progress is incremented
// atomically in the same transaction that inserts the row.
type ProgressUpdate struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	GoalID    uuid.UUID `gorm:"type:uuid;not null;index" json:"goal_id"`
	Value     float64   `gorm:"not null" json:"value"`
	Notes     string    `json:"notes,omitempty"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
