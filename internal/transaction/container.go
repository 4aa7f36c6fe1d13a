package transaction

import (
	"gorm.io/gorm"

	"github.com/monevo-app/monevo-api/internal/account"
	"github.com/monevo-app/monevo-api/internal/category"
	"github.com/monevo-app/monevo-api/internal/goal"
)

type Container struct {
	Handler     *Handler
	Service     Service
	Repo        Repository
	Coordinator *Coordinator
}

func NewContainer(db *gorm.DB, ledger goal.ProgressLedger, goals goal.Repository, categories category.Service, accounts account.Repository) *Container {
	repo := NewRepository(db)
	coordinator := NewCoordinator(ledger, goals)
	service := NewService(db, repo, coordinator, categories, accounts)
	handler := NewHandler(service)

	return &Container{
		Handler:     handler,
		Service:     service,
		Repo:        repo,
		Coordinator: coordinator,
	}
}
