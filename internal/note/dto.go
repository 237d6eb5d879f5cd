package note

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreateNoteDTO struct {
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	CategoryID *uuid.UUID     `json:"category_id"`
	Formatting datatypes.JSON `json:"formatting"`
	Tags       datatypes.JSON `json:"tags"`
}

type UpdateNoteDTO struct {
	Title      *string         `json:"title"`
	Content    *string         `json:"content"`
	CategoryID *uuid.UUID      `json:"category_id"`
	Formatting *datatypes.JSON `json:"formatting"`
	Tags       *datatypes.JSON `json:"tags"`
}

type CreateCategoryDTO struct {
	Name     string     `json:"name"`
	ParentID *uuid.UUID `json:"parent_id"`
}
