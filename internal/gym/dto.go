package gym

import (
	"time"

	"gorm.io/datatypes"

	util "github.com/kaamkar-app/kaamkar-lambda/internal/utils"
)

type CreateExerciseDTO struct {
	Name         string           `json:"name"`
	Category     ExerciseCategory `json:"category"`
	Equipment    EquipmentType    `json:"equipment"`
	Description  string           `json:"description"`
	Instructions string           `json:"instructions"`
}

type CreateRoutineDTO struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Frequency   Frequency      `json:"frequency"`
	Days        datatypes.JSON `json:"days"`
}

type UpdateRoutineDTO struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Frequency   *Frequency      `json:"frequency"`
	Days        *datatypes.JSON `json:"days"`
}

// ExerciseTemplate is one entry of a template's exercises JSON column.
type ExerciseTemplate struct {
	ExerciseID string  `json:"exercise_id"`
	Name       string  `json:"name"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight,omitempty"`
}

type CreateTemplateDTO struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Exercises   datatypes.JSON `json:"exercises"`
}

type UpdateTemplateDTO struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Exercises   *datatypes.JSON `json:"exercises"`
}

type CreateSessionDTO struct {
	Name      string             `json:"name"`
	RoutineID *string            `json:"routine_id"`
	Date      util.LocalDateTime `json:"date"`
	Duration  int                `json:"duration"`
	Notes     string             `json:"notes"`
}

type UpdateSessionDTO struct {
	Name     *string             `json:"name"`
	Date     *util.LocalDateTime `json:"date"`
	Duration *int                `json:"duration"`
	Notes    *string             `json:"notes"`
}

type CreateSetDTO struct {
	ExerciseID string  `json:"exercise_id"`
	SetNumber  int     `json:"set_number"`
	Weight     float64 `json:"weight"`
	Reps       int     `json:"reps"`
	Notes      string  `json:"notes"`
}

type CreateEquipmentDTO struct {
	Name      string `json:"name"`
	Available *bool  `json:"available"`
}

type UpdateEquipmentDTO struct {
	Name      *string    `json:"name"`
	Available *bool      `json:"available"`
	LastUsed  *time.Time `json:"last_used"`
}

// SessionStats summarizes one workout session.
type SessionStats struct {
	TotalVolume     float64 `json:"total_volume"`
	TotalSets       int     `json:"total_sets"`
	TotalExercises  int     `json:"total_exercises"`
	Duration        int     `json:"duration"`
	PersonalRecords int     `json:"personal_records"`
}

// ProgressPoint is one sample of a per-exercise progress series.
type ProgressPoint struct {
	Date             time.Time `json:"date"`
	Weight           float64   `json:"weight"`
	Reps             int       `json:"reps"`
	EstimatedOneRM   float64   `json:"estimated_one_rm"`
	IsPersonalRecord bool      `json:"is_personal_record"`
}

// WorkoutStats summarizes a user's training history.
type WorkoutStats struct {
	TotalSessions    int64   `json:"total_sessions"`
	TotalVolume      float64 `json:"total_volume"`
	PersonalRecords  int64   `json:"personal_records"`
	SessionsThisWeek int64   `json:"sessions_this_week"`
}

type SeedResult struct {
	Seeded   bool `json:"seeded"`
	Inserted int  `json:"inserted"`
}
