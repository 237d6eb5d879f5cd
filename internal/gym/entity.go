package gym

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	util "github.com/kaamkar-app/kaamkar-lambda/internal/utils"
)

// Exercise belongs either to the shared pool (IsCustom false, no owner) or to
// a single user who created it.
type Exercise struct {
	ID           uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string           `gorm:"not null" json:"name"`
	Category     ExerciseCategory `gorm:"not null;index" json:"category"`
	Equipment    EquipmentType    `gorm:"not null" json:"equipment"`
	Description  string           `gorm:"type:text" json:"description,omitempty"`
	Instructions string           `gorm:"type:text" json:"instructions,omitempty"`
	IsCustom     bool             `gorm:"not null;default:false;index" json:"is_custom"`
	UserID       *uuid.UUID       `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type WorkoutRoutine struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Frequency   Frequency      `gorm:"not null" json:"frequency"`
	Days        datatypes.JSON `gorm:"type:jsonb" json:"days,omitempty"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// WorkoutTemplate stores its exercise list as a JSON document; entries use
// the ExerciseTemplate shape from dto.go.
type WorkoutTemplate struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Exercises   datatypes.JSON `gorm:"type:jsonb" json:"exercises,omitempty"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type WorkoutSession struct {
	ID        uuid.UUID          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string             `gorm:"not null" json:"name"`
	RoutineID *uuid.UUID         `gorm:"type:uuid" json:"routine_id,omitempty"`
	Date      util.LocalDateTime `gorm:"not null;index" json:"date"`
	Duration  int                `json:"duration,omitempty"`
	Notes     string             `gorm:"type:text" json:"notes,omitempty"`
	UserID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ExerciseName is denormalized onto the set so listings do not need a join
// per row.
type ExerciseSet struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	WorkoutSessionID uuid.UUID `gorm:"type:uuid;not null;index" json:"workout_session_id"`
	ExerciseID       uuid.UUID `gorm:"type:uuid;not null;index" json:"exercise_id"`
	ExerciseName     string    `json:"exercise_name,omitempty"`
	SetNumber        int       `gorm:"not null" json:"set_number"`
	Weight           float64   `gorm:"not null" json:"weight"`
	Reps             int       `gorm:"not null" json:"reps"`
	IsPersonalRecord bool      `gorm:"not null;default:false" json:"is_personal_record"`
	Notes            string    `gorm:"type:text" json:"notes,omitempty"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt        time.Time `json:"created_at"`
}

type Equipment struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Available bool       `gorm:"not null;default:true" json:"available"`
	LastUsed  *time.Time `json:"last_used,omitempty"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
