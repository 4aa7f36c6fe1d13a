package account

import "github.com/shopspring/decimal"

type CreateAccountDTO struct {
	Type           AccountType      `json:"tipo"`
	Name           string           `json:"nome"`
	CardClosingDay *int             `json:"fechamento_cartao_dia"`
	CardDueDay     *int             `json:"vencimento_cartao_dia"`
	InitialBalance *decimal.Decimal `json:"saldo_inicial"`
}

type UpdateAccountDTO struct {
	Name           *string `json:"nome"`
	CardClosingDay *int    `json:"fechamento_cartao_dia"`
	CardDueDay     *int    `json:"vencimento_cartao_dia"`
}
