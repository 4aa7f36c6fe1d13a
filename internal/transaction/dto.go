package transaction

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	util "github.com/monevo-app/monevo-api/internal/utils"
)

type CreateTransactionDTO struct {
	Amount            decimal.Decimal    `json:"valor"`
	Kind              TransactionKind    `json:"tipo"`
	Date              util.LocalDate     `json:"data"`
	AccountID         *uuid.UUID         `json:"conta_id"`
	CardID            *uuid.UUID         `json:"cartao_id"`
	CategoryID        *uuid.UUID         `json:"categoria_id"`
	CategoryLabel     string             `json:"categoria"`
	Description       *string            `json:"descricao"`
	InstallmentsTotal *int               `json:"parcelas_total"`
	InstallmentNum    *int               `json:"parcela_num"`
	Reference         *string            `json:"referencia"`
	ImportOrigin      *string            `json:"origem_import"`
	GoalID            *uuid.UUID         `json:"meta_id"`
	AllocationPercent *decimal.Decimal   `json:"alocacao_percentual"`
	Status            *TransactionStatus `json:"status"`
}

type UpdateTransactionDTO struct {
	Amount            *decimal.Decimal   `json:"valor"`
	Kind              *TransactionKind   `json:"tipo"`
	Date              *util.LocalDate    `json:"data"`
	AccountID         *uuid.UUID         `json:"conta_id"`
	CardID            *uuid.UUID         `json:"cartao_id"`
	CategoryID        *uuid.UUID         `json:"categoria_id"`
	CategoryLabel     *string            `json:"categoria"`
	Description       *string            `json:"descricao"`
	InstallmentsTotal *int               `json:"parcelas_total"`
	InstallmentNum    *int               `json:"parcela_num"`
	Reference         *string            `json:"referencia"`
	ImportOrigin      *string            `json:"origem_import"`
	GoalID            *uuid.UUID         `json:"meta_id"`
	ClearGoal         *bool              `json:"remover_meta"`
	AllocationPercent *decimal.Decimal   `json:"alocacao_percentual"`
	Status            *TransactionStatus `json:"status"`
}

// ListFilter mirrors the query string accepted by the listing endpoint.
type ListFilter struct {
	AccountID  *uuid.UUID
	Kind       *TransactionKind
	CategoryID *uuid.UUID
	GoalID     *uuid.UUID
	Start      *util.LocalDate
	End        *util.LocalDate
	Skip       int
	Limit      int
}
