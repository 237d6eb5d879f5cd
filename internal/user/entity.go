package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Role      string    `gorm:"default:user" json:"role"`

	// Google OAuth refresh token, AES-GCM encrypted at rest.
	EncryptedRefreshToken string `gorm:"column:encrypted_refresh_token" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
