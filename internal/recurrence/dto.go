package recurrence

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRecurrenceDTO struct {
	Name              string           `json:"nome"`
	Kind              RecurrenceKind   `json:"tipo"`
	Period            Periodicity      `json:"periodicidade"`
	BaseDay           int              `json:"dia_base"`
	Amount            decimal.Decimal  `json:"valor"`
	AccountID         *uuid.UUID       `json:"conta_id"`
	GoalID            *uuid.UUID       `json:"meta_id"`
	AllocationPercent *decimal.Decimal `json:"alocacao_percentual"`
}

type UpdateRecurrenceDTO struct {
	Name              *string          `json:"nome"`
	Kind              *RecurrenceKind  `json:"tipo"`
	Period            *Periodicity     `json:"periodicidade"`
	BaseDay           *int             `json:"dia_base"`
	Amount            *decimal.Decimal `json:"valor"`
	AccountID         *uuid.UUID       `json:"conta_id"`
	GoalID            *uuid.UUID       `json:"meta_id"`
	AllocationPercent *decimal.Decimal `json:"alocacao_percentual"`
	Active            *bool            `json:"ativo"`
}
