package finance

import "gorm.io/gorm"

type FinanceContainer struct {
	Handler *Handler
	Service FinanceService
}

func NewFinanceContainer(db *gorm.DB) *FinanceContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &FinanceContainer{
		Handler: handler,
		Service: service,
	}
}
