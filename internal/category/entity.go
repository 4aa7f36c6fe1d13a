package category

import (
	"time"

	"github.com/google/uuid"
)

type CategoryType string

const (
	TypeIncome     CategoryType = "receita"
	TypeExpense    CategoryType = "despesa"
	TypeInvestment CategoryType = "investimento"
)

var AllTypes = []CategoryType{TypeIncome, TypeExpense, TypeInvestment}

func (t CategoryType) IsValid() bool {
	for _, v := range AllTypes {
		if t == v {
			return true
		}
	}
	return false
}

type Category struct {
	ID        uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Type      CategoryType `gorm:"size:20;not null" json:"tipo"`
	Key       string       `gorm:"size:50;uniqueIndex;not null" json:"chave"`
	Name      string       `gorm:"size:120;not null" json:"nome"`
	Order     int          `gorm:"column:display_order;not null;default:0" json:"ordem"`
	ParentID  *uuid.UUID   `gorm:"type:uuid" json:"parent_id,omitempty"`
	Active    bool         `gorm:"not null;default:true" json:"ativo"`
	CreatedAt time.Time    `json:"-"`
}
