package notification

import (
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
	Scanner *BudgetScanner
}

func NewContainer(db *gorm.DB, users userSource, budgets budgetSource, spends spendSource) *Container {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)
	scanner := NewBudgetScanner(users, budgets, spends, repo)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
		Scanner: scanner,
	}
}
