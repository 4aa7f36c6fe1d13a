package invoice

import (
	"github.com/monevo-app/monevo-api/internal/account"
	"github.com/monevo-app/monevo-api/internal/transaction"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(accounts account.Repository, transactions transaction.Repository) *Container {
	service := NewService(accounts, transactions)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
