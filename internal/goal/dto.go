package goal

import (
	"time"

	"gorm.io/datatypes"
)

type CreateGoalDTO struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	TargetDate   *time.Time     `json:"target_date"`
	TargetValue  float64        `json:"target_value"`
	Unit         string         `json:"unit"`
	RelatedTodos datatypes.JSON `json:"related_todos"`
}

type UpdateGoalDTO struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Category     *string         `json:"category"`
	TargetDate   *time.Time      `json:"target_date"`
	TargetValue  *float64        `json:"target_value"`
	Unit         *string         `json:"unit"`
	Status       *Status         `json:"status"`
	RelatedTodos *datatypes.JSON `json:"related_todos"`
}

type AddProgressDTO struct {
	Value float64 `json:"value"`
	Notes string  `json:"notes"`
}

type ProgressResult struct {
	Update *ProgressUpdate `json:"update"`
	Goal   *Goal           `json:"goal"`
}
