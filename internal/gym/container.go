package gym

import "gorm.io/gorm"

type GymContainer struct {
	Handler *Handler
	Service GymService
}

func NewGymContainer(db *gorm.DB) *GymContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &GymContainer{
		Handler: handler,
		Service: service,
	}
}
