package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/monevo-app/monevo-api/internal/config"
	"github.com/monevo-app/monevo-api/internal/money"
	"github.com/monevo-app/monevo-api/internal/onboarding"
)

var (
	warnThreshold  = decimal.NewFromInt(80)
	limitThreshold = decimal.NewFromInt(100)
)

type userSource interface {
	ListIDs() ([]uuid.UUID, error)
}

type budgetSource interface {
	FindByUserID(userID uuid.UUID) (*onboarding.Profile, error)
}

type spendSource interface {
	SumExpensesByCategory(userID uuid.UUID, start, end time.Time) (map[string]decimal.Decimal, error)
}

// BudgetScanner walks every user's monthly budget and files an alert when a
// category crosses 80% or 100% of its limit. References keep the scan
// idempotent within the month, so the worker can run as often as it likes.
type BudgetScanner struct {
	users   userSource
	budgets budgetSource
	spends  spendSource
	repo    Repository
}

func NewBudgetScanner(users userSource, budgets budgetSource, spends spendSource, repo Repository) *BudgetScanner {
	return &BudgetScanner{users: users, budgets: budgets, spends: spends, repo: repo}
}

func (s *BudgetScanner) Run(ctx context.Context) error {
	return s.RunAt(ctx, time.Now())
}

func (s *BudgetScanner) RunAt(ctx context.Context, now time.Time) error {
	log := config.WithContext(ctx)

	userIDs, err := s.users.ListIDs()
	if err != nil {
		return err
	}

	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.scanUser(userID, now); err != nil {
			// one broken user must not stop the sweep
			log.WithError(err).WithField("user_id", userID).Error("Budget scan failed for user")
		}
	}

	log.WithField("users", len(userIDs)).Info("Budget scan finished")
	return nil
}

func (s *BudgetScanner) scanUser(userID uuid.UUID, now time.Time) error {
	profile, err := s.budgets.FindByUserID(userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return nil
	}
	budget, err := profile.BudgetMap()
	if err != nil {
		return err
	}
	if len(budget) == 0 {
		return nil
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	spent, err := s.spends.SumExpensesByCategory(userID, monthStart, now)
	if err != nil {
		return err
	}

	for category, limit := range budget {
		if !limit.IsPositive() {
			continue
		}
		total, ok := spent[category]
		if !ok {
			continue
		}

		ratio := total.Div(limit).Mul(limitThreshold)
		var level decimal.Decimal
		switch {
		case ratio.GreaterThanOrEqual(limitThreshold):
			level = limitThreshold
		case ratio.GreaterThanOrEqual(warnThreshold):
			level = warnThreshold
		default:
			continue
		}

		reference := fmt.Sprintf("orcamento:%s:%s:%s", category, now.Format("2006-01"), level.String())
		exists, err := s.repo.ExistsByReference(userID, reference)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		if err := s.repo.Create(&Notification{
			UserID:    userID,
			Message:   budgetMessage(category, level, total, limit),
			Reference: reference,
		}); err != nil {
			return err
		}
	}
	return nil
}

func budgetMessage(category string, level, total, limit decimal.Decimal) string {
	if level.Equal(limitThreshold) {
		return fmt.Sprintf("Orçamento de %s estourado: %s de %s este mês.",
			category, money.FormatBRL(total), money.FormatBRL(limit))
	}
	return fmt.Sprintf("Atenção: você já usou %s%% do orçamento de %s este mês (%s de %s).",
		total.Div(limit).Mul(limitThreshold).Round(0).String(), category,
		money.FormatBRL(total), money.FormatBRL(limit))
}
