package todo

import "gorm.io/gorm"

type TodoContainer struct {
	Handler *Handler
	Service TodoService
}

func NewTodoContainer(db *gorm.DB) *TodoContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &TodoContainer{
		Handler: handler,
		Service: service,
	}
}
