package onboarding

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monevo-app/monevo-api/internal/account"
	"github.com/monevo-app/monevo-api/internal/goal"
)

func TestBuildWizardGoal(t *testing.T) {
	userID := uuid.New()

	g, err := buildWizardGoal(userID, GoalWizardDTO{
		Title:        "Reserva de emergência",
		TargetAmount: "R$ 10.000,00",
		Months:       12,
		Category:     "seguranca",
	})
	require.NoError(t, err)

	assert.Equal(t, userID, g.UserID)
	assert.True(t, g.TargetAmount.Equal(decimal.RequireFromString("10000")),
		"valor_objetivo esperado 10000, obteve %s", g.TargetAmount)
	assert.True(t, g.CurrentAmount.IsZero())
	assert.Equal(t, goal.GoalStatusActive, g.Status)

	require.NotNil(t, g.Deadline)
	want := time.Now().AddDate(0, 12, 0)
	assert.WithinDuration(t, want, g.Deadline.Time, 24*time.Hour)
}

func TestBuildWizardGoalInvalidAmount(t *testing.T) {
	_, err := buildWizardGoal(uuid.New(), GoalWizardDTO{Title: "Meta", TargetAmount: "abc"})
	assert.Error(t, err)
}

func TestBuildInitialAccount(t *testing.T) {
	userID := uuid.New()

	a, err := buildInitialAccount(userID, InitialAccountDTO{
		Name:           "Nubank",
		Type:           "banco",
		CurrentBalance: "1.234,56",
	})
	require.NoError(t, err)

	assert.Equal(t, account.TypeBank, a.Type)
	assert.True(t, a.BalanceCache.Equal(decimal.RequireFromString("1234.56")),
		"saldo esperado 1234.56, obteve %s", a.BalanceCache)
}

func TestBuildInitialAccountDefaults(t *testing.T) {
	a, err := buildInitialAccount(uuid.New(), InitialAccountDTO{Type: "inexistente"})
	require.NoError(t, err)

	assert.Equal(t, account.TypeBank, a.Type)
	assert.Equal(t, "Conta principal", a.Name)
	assert.True(t, a.BalanceCache.IsZero())
}

func TestParseBudget(t *testing.T) {
	budget, err := parseBudget(map[string]string{
		"alimentacao": "R$ 800,00",
		"transporte":  "250",
	})
	require.NoError(t, err)

	assert.True(t, budget["alimentacao"].Equal(decimal.RequireFromString("800")))
	assert.True(t, budget["transporte"].Equal(decimal.RequireFromString("250")))

	_, err = parseBudget(map[string]string{"lazer": "não sei"})
	assert.ErrorIs(t, err, ErrInvalidBudget)
}
