package user

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"nome"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string    `gorm:"column:password_hash" json:"-"`
	Role          string    `gorm:"default:user" json:"-"`
	Age           *int      `json:"idade,omitempty"`
	Profession    *string   `json:"profissao,omitempty"`
	CPF           *string   `gorm:"column:cpf" json:"cpf,omitempty"`
	MaritalStatus *string   `json:"estado_civil,omitempty"`

	MonthlyIncomeType *string          `json:"tipo_renda_mensal,omitempty"`
	MonthlyIncome     *decimal.Decimal `gorm:"type:decimal(20,8)" json:"valor_renda_mensal,omitempty"`
	MonthlyIncomeBand *string          `json:"faixa_renda_mensal,omitempty"`

	EncryptedGoogleAccessToken  string `json:"-"`
	EncryptedGoogleRefreshToken string `json:"-"`

	CreatedAt time.Time `json:"data_criacao"`
	UpdatedAt time.Time `json:"-"`
}
