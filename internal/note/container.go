package note

import "gorm.io/gorm"

type NoteContainer struct {
	Handler *Handler
	Service NoteService
}

func NewNoteContainer(db *gorm.DB) *NoteContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &NoteContainer{
		Handler: handler,
		Service: service,
	}
}
