package goal

import "gorm.io/gorm"

type GoalContainer struct {
	Handler *Handler
	Service GoalService
}

func NewGoalContainer(db *gorm.DB) *GoalContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &GoalContainer{
		Handler: handler,
		Service: service,
	}
}
