package planner

import (
	"time"

	"github.com/google/uuid"
	util "github.com/kaamkar-app/kaamkar-lambda/internal/utils"
)

type Event struct {
	ID          uuid.UUID          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string             `gorm:"not null" json:"title"`
	Description string             `gorm:"type:text" json:"description,omitempty"`
	Start       util.LocalDateTime `gorm:"not null;index" json:"start"`
	End         util.LocalDateTime `gorm:"not null" json:"end"`
	AllDay      bool               `gorm:"not null;default:false" json:"all_day"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
