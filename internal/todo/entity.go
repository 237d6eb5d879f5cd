package todo

import (
	"time"

	"github.com/google/uuid"
)

type Todo struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title     string     `gorm:"not null" json:"title"`
	Completed bool       `gorm:"not null;default:false" json:"completed"`
	Priority  Priority   `gorm:"not null;default:medium" json:"priority"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
