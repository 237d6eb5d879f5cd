package planner

import (
	util "github.com/kaamkar-app/kaamkar-lambda/internal/utils"
)

type CreateEventDTO struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Start       *util.LocalDateTime `json:"start"`
	End         *util.LocalDateTime `json:"end"`
	AllDay      bool                `json:"all_day"`
}

type UpdateEventDTO struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Start       *util.LocalDateTime `json:"start"`
	End         *util.LocalDateTime `json:"end"`
	AllDay      *bool               `json:"all_day"`
}
