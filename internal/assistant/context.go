package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/monevo-app/monevo-api/internal/account"
	"github.com/monevo-app/monevo-api/internal/goal"
	"github.com/monevo-app/monevo-api/internal/money"
	"github.com/monevo-app/monevo-api/internal/transaction"
	util "github.com/monevo-app/monevo-api/internal/utils"
)

// FinancialContext is the snapshot of the last thirty days handed to the
// model so answers stay grounded in the user's own numbers.
type FinancialContext struct {
	Goals    []goal.Goal
	Accounts []account.Account
	Income   decimal.Decimal
	Expenses decimal.Decimal
	ByCat    map[string]decimal.Decimal
}

type contextBuilder struct {
	goals        goal.Repository
	accounts     account.Repository
	transactions transaction.Repository
}

func newContextBuilder(goals goal.Repository, accounts account.Repository, transactions transaction.Repository) *contextBuilder {
	return &contextBuilder{goals: goals, accounts: accounts, transactions: transactions}
}

func (b *contextBuilder) Build(ctx context.Context, userID uuid.UUID) (*FinancialContext, error) {
	goals, err := b.goals.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}
	accounts, err := b.accounts.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}

	start := util.LocalDate{Time: time.Now().AddDate(0, 0, -30)}
	txs, err := b.transactions.FindAllByUserID(userID, transaction.ListFilter{Start: &start, Limit: 500})
	if err != nil {
		return nil, err
	}

	fc := &FinancialContext{
		Goals:    goals,
		Accounts: accounts,
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
		ByCat:    make(map[string]decimal.Decimal),
	}
	for _, t := range txs {
		switch t.Kind {
		case transaction.KindIncome:
			fc.Income = fc.Income.Add(t.Amount)
		case transaction.KindExpense:
			fc.Expenses = fc.Expenses.Add(t.Amount)
			if t.CategoryCache != nil {
				fc.ByCat[*t.CategoryCache] = fc.ByCat[*t.CategoryCache].Add(t.Amount)
			}
		}
	}
	return fc, nil
}

// Render flattens the snapshot into the pt-BR block embedded in prompts.
func (fc *FinancialContext) Render() string {
	var sb strings.Builder

	sb.WriteString("Resumo financeiro dos últimos 30 dias:\n")
	sb.WriteString(fmt.Sprintf("- Receitas: %s\n", money.FormatBRL(fc.Income)))
	sb.WriteString(fmt.Sprintf("- Despesas: %s\n", money.FormatBRL(fc.Expenses)))

	if len(fc.ByCat) > 0 {
		sb.WriteString("Despesas por categoria:\n")
		for cat, total := range fc.ByCat {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", cat, money.FormatBRL(total)))
		}
	}

	if len(fc.Accounts) > 0 {
		sb.WriteString("Contas:\n")
		for _, a := range fc.Accounts {
			sb.WriteString(fmt.Sprintf("- %s (%s): saldo %s\n", a.Name, a.Type, money.FormatBRL(a.BalanceCache)))
		}
	}

	if len(fc.Goals) > 0 {
		sb.WriteString("Metas:\n")
		for _, g := range fc.Goals {
			sb.WriteString(fmt.Sprintf("- %s: %s de %s (%s)\n",
				g.Title, money.FormatBRL(g.CurrentAmount), money.FormatBRL(g.TargetAmount), g.Status))
		}
	}

	return sb.String()
}
