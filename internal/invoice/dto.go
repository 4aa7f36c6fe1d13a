package invoice

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/monevo-app/monevo-api/internal/transaction"
	util "github.com/monevo-app/monevo-api/internal/utils"
)

// InvoiceResponse is the on-the-fly statement for a card account. Nothing is
// persisted, the period is recomputed from the card's closing day on demand.
type InvoiceResponse struct {
	CardAccountID uuid.UUID                 `json:"conta_cartao_id"`
	CardName      string                    `json:"conta_nome"`
	Start         util.LocalDate            `json:"inicio"`
	End           util.LocalDate            `json:"fim"`
	DueDate       *util.LocalDate           `json:"vencimento,omitempty"`
	Total         decimal.Decimal           `json:"total"`
	Count         int                       `json:"quantidade"`
	Transactions  []transaction.Transaction `json:"transacoes"`
}
