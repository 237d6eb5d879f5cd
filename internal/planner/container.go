package planner

import "gorm.io/gorm"

type PlannerContainer struct {
	Handler *Handler
	Service EventService
}

func NewPlannerContainer(db *gorm.DB) *PlannerContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &PlannerContainer{
		Handler: handler,
		Service: service,
	}
}
