package todo

import "time"

type CreateTodoDTO struct {
	Title    string     `json:"title"`
	Priority Priority   `json:"priority"`
	DueDate  *time.Time `json:"due_date"`
}

type UpdateTodoDTO struct {
	Title     *string    `json:"title"`
	Completed *bool      `json:"completed"`
	Priority  *Priority  `json:"priority"`
	DueDate   *time.Time `json:"due_date"`
}
