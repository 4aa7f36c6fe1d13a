package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountType string

const (
	TypeBank   AccountType = "banco"
	TypeCard   AccountType = "cartao"
	TypeWallet AccountType = "carteira"
)

var AllTypes = []AccountType{TypeBank, TypeCard, TypeWallet}

func (t AccountType) IsValid() bool {
	for _, v := range AllTypes {
		if t == v {
			return true
		}
	}
	return false
}

type Account struct {
	ID             uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"usuario_id"`
	Type           AccountType     `gorm:"size:20;not null" json:"tipo"`
	Name           string          `gorm:"size:120;not null" json:"nome"`
	CardClosingDay *int            `json:"fechamento_cartao_dia,omitempty"`
	CardDueDay     *int            `json:"vencimento_cartao_dia,omitempty"`
	BalanceCache   decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0" json:"saldo_cache"`
	CreatedAt      time.Time       `json:"criado_em"`
	UpdatedAt      time.Time       `json:"-"`
}
