package onboarding

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Profile records the wizard's answers. Steps keeps the raw payload of each
// step for the frontend to resume from, Budget holds the monthly limits per
// category that the alert scanner reads.
type Profile struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Steps       datatypes.JSON `gorm:"type:jsonb" json:"etapas"`
	Budget      datatypes.JSON `gorm:"type:jsonb" json:"orcamento"`
	CompletedAt *time.Time     `json:"concluido_em,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"criado_em"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"-"`
}

// BudgetMap decodes the stored budget into category keys and limits.
func (p *Profile) BudgetMap() (map[string]decimal.Decimal, error) {
	if len(p.Budget) == 0 {
		return nil, nil
	}
	var budget map[string]decimal.Decimal
	if err := json.Unmarshal(p.Budget, &budget); err != nil {
		return nil, err
	}
	return budget, nil
}
