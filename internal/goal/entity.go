package goal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	util "github.com/monevo-app/monevo-api/internal/utils"
)

type Goal struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"usuario_id"`
	Title         string          `gorm:"size:120;not null" json:"titulo"`
	Category      string          `gorm:"size:50;not null" json:"categoria"`
	Description   *string         `gorm:"size:255" json:"descricao,omitempty"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"valor_objetivo"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0" json:"valor_atual"`
	Deadline      *util.LocalDate `gorm:"type:date" json:"prazo,omitempty"`
	Status        GoalStatus      `gorm:"size:20;not null;default:ativa" json:"status"`
	CreatedAt     time.Time       `json:"data_criacao"`
	UpdatedAt     time.Time       `json:"-"`
}

// Exceeded reports whether allocation deltas pushed progress past the target.
// Direct edits never produce this state; transaction allocations may.
func (g *Goal) Exceeded() bool {
	return g.CurrentAmount.GreaterThan(g.TargetAmount)
}
