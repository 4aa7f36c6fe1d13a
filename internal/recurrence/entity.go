package recurrence

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recurrence is a template for periodic transactions. The worker and the
// frontend projection both read from it, the ledger is only touched when a
// concrete transaction is materialized from the template.
type Recurrence struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string          `gorm:"size:120;not null" json:"nome"`
	Kind      RecurrenceKind  `gorm:"size:20;not null" json:"tipo"`
	Period    Periodicity     `gorm:"size:20;not null;default:mensal" json:"periodicidade"`
	BaseDay   int             `gorm:"not null;default:1" json:"dia_base"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"valor"`
	AccountID *uuid.UUID      `gorm:"type:uuid" json:"conta_id,omitempty"`

	GoalID            *uuid.UUID       `gorm:"type:uuid" json:"meta_id,omitempty"`
	AllocationPercent *decimal.Decimal `gorm:"type:decimal(20,8)" json:"alocacao_percentual,omitempty"`

	Active    bool      `gorm:"not null;default:true" json:"ativo"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"criado_em"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}
