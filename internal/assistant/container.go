package assistant

import (
	"context"

	"github.com/monevo-app/monevo-api/internal/account"
	"github.com/monevo-app/monevo-api/internal/config"
	"github.com/monevo-app/monevo-api/internal/goal"
	"github.com/monevo-app/monevo-api/internal/transaction"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(ctx context.Context, goals goal.Repository, accounts account.Repository, transactions transaction.Repository) *Container {
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		// the rest of the API works without the model, chat just degrades
		config.Logger().WithError(err).Warn("Gemini indisponível, assistente em modo degradado")
		provider = unavailableProvider{}
	}

	service := NewService(provider, goals, accounts, transactions)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
