package onboarding

import (
	"gorm.io/gorm"

	"github.com/monevo-app/monevo-api/internal/user"
)

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(db *gorm.DB, users user.UserService) *Container {
	repo := NewRepository(db)
	service := NewService(db, repo, users)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
