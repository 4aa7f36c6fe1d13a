package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	util "github.com/monevo-app/monevo-api/internal/utils"
)

// Transaction is the ledger's unit of record. AllocatedAmount is derived from
// Amount and AllocationPercent at write time and never recomputed on read, so
// goal progress and the stored allocation always agree.
type Transaction struct {
	ID     uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"valor"`
	Kind   TransactionKind `gorm:"size:20;not null;index" json:"tipo"`
	Date   util.LocalDate  `gorm:"type:date;not null;index" json:"data"`

	AccountID        *uuid.UUID `gorm:"type:uuid;index" json:"conta_id,omitempty"`
	CardID           *uuid.UUID `gorm:"type:uuid;index" json:"cartao_id,omitempty"`
	AccountNameCache *string    `gorm:"size:120" json:"conta_nome_cache,omitempty"`

	CategoryID    *uuid.UUID `gorm:"type:uuid;index" json:"categoria_id,omitempty"`
	CategoryCache *string    `gorm:"size:120" json:"categoria_cache,omitempty"`

	Description       *string `gorm:"size:255" json:"descricao,omitempty"`
	InstallmentsTotal *int    `json:"parcelas_total,omitempty"`
	InstallmentNum    *int    `json:"parcela_num,omitempty"`
	Reference         *string `gorm:"size:120" json:"referencia,omitempty"`
	ImportOrigin      *string `gorm:"size:50" json:"origem_import,omitempty"`

	GoalID            *uuid.UUID       `gorm:"type:uuid;index" json:"meta_id,omitempty"`
	GoalNameCache     *string          `gorm:"size:120" json:"meta_nome_cache,omitempty"`
	AllocationPercent *decimal.Decimal `gorm:"type:decimal(20,8)" json:"alocacao_percentual,omitempty"`
	AllocatedAmount   decimal.Decimal  `gorm:"type:decimal(20,8);not null;default:0" json:"alocado_valor"`

	Status    TransactionStatus `gorm:"size:20;not null;default:confirmado" json:"status"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"criado_em"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"-"`
}
