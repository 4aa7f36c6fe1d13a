package goal

import "gorm.io/gorm"

type Container struct {
	Handler *Handler
	Service Service
	Ledger  ProgressLedger
	Repo    Repository
}

func NewContainer(db *gorm.DB) *Container {
	repo := NewRepository(db)
	service := NewService(repo)
	ledger := NewProgressLedger(repo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Ledger:  ledger,
		Repo:    repo,
	}
}
