package notification

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monevo-app/monevo-api/internal/onboarding"
)

type fakeUsers struct{ ids []uuid.UUID }

func (f fakeUsers) ListIDs() ([]uuid.UUID, error) { return f.ids, nil }

type fakeBudgets struct{ profiles map[uuid.UUID]*onboarding.Profile }

func (f fakeBudgets) FindByUserID(userID uuid.UUID) (*onboarding.Profile, error) {
	return f.profiles[userID], nil
}

type fakeSpends struct{ totals map[uuid.UUID]map[string]decimal.Decimal }

func (f fakeSpends) SumExpensesByCategory(userID uuid.UUID, start, end time.Time) (map[string]decimal.Decimal, error) {
	return f.totals[userID], nil
}

type memNotifications struct{ created []Notification }

func (m *memNotifications) Create(n *Notification) error {
	m.created = append(m.created, *n)
	return nil
}

func (m *memNotifications) FindAllByUserID(userID uuid.UUID) ([]Notification, error) {
	return m.created, nil
}

func (m *memNotifications) FindByID(id uuid.UUID) (*Notification, error) { return nil, nil }

func (m *memNotifications) ExistsByReference(userID uuid.UUID, reference string) (bool, error) {
	for _, n := range m.created {
		if n.UserID == userID && n.Reference == reference {
			return true, nil
		}
	}
	return false, nil
}

func (m *memNotifications) Update(n *Notification) error { return nil }

func (m *memNotifications) Delete(id uuid.UUID) error { return nil }

func profileWithBudget(t *testing.T, userID uuid.UUID, budget map[string]string) *onboarding.Profile {
	t.Helper()
	raw, err := json.Marshal(budget)
	require.NoError(t, err)
	return &onboarding.Profile{UserID: userID, Budget: raw}
}

func spend(values map[string]string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(values))
	for k, v := range values {
		out[k] = decimal.RequireFromString(v)
	}
	return out
}

func newScanner(t *testing.T, userID uuid.UUID, budget map[string]string, totals map[string]string) (*BudgetScanner, *memNotifications) {
	t.Helper()
	repo := &memNotifications{}
	scanner := NewBudgetScanner(
		fakeUsers{ids: []uuid.UUID{userID}},
		fakeBudgets{profiles: map[uuid.UUID]*onboarding.Profile{userID: profileWithBudget(t, userID, budget)}},
		fakeSpends{totals: map[uuid.UUID]map[string]decimal.Decimal{userID: spend(totals)}},
		repo,
	)
	return scanner, repo
}

var scanTime = time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)

func TestBudgetScannerBelowThreshold(t *testing.T) {
	userID := uuid.New()
	scanner, repo := newScanner(t, userID,
		map[string]string{"alimentacao": "1000"},
		map[string]string{"alimentacao": "500"})

	require.NoError(t, scanner.RunAt(context.Background(), scanTime))
	assert.Empty(t, repo.created)
}

func TestBudgetScannerWarnsAtEightyPercent(t *testing.T) {
	userID := uuid.New()
	scanner, repo := newScanner(t, userID,
		map[string]string{"alimentacao": "1000"},
		map[string]string{"alimentacao": "800"})

	require.NoError(t, scanner.RunAt(context.Background(), scanTime))
	require.Len(t, repo.created, 1)
	assert.Equal(t, userID, repo.created[0].UserID)
	assert.Contains(t, repo.created[0].Message, "80%")
	assert.Contains(t, repo.created[0].Reference, "orcamento:alimentacao:2025-03:80")
}

func TestBudgetScannerAlertsWhenExceeded(t *testing.T) {
	userID := uuid.New()
	scanner, repo := newScanner(t, userID,
		map[string]string{"transporte": "300"},
		map[string]string{"transporte": "450"})

	require.NoError(t, scanner.RunAt(context.Background(), scanTime))
	require.Len(t, repo.created, 1)
	assert.Contains(t, repo.created[0].Message, "estourado")
	assert.Contains(t, repo.created[0].Reference, ":100")
}

func TestBudgetScannerIsIdempotentWithinMonth(t *testing.T) {
	userID := uuid.New()
	scanner, repo := newScanner(t, userID,
		map[string]string{"lazer": "200"},
		map[string]string{"lazer": "250"})

	require.NoError(t, scanner.RunAt(context.Background(), scanTime))
	require.NoError(t, scanner.RunAt(context.Background(), scanTime.AddDate(0, 0, 3)))
	assert.Len(t, repo.created, 1, "re-executar no mesmo mês não duplica alertas")

	require.NoError(t, scanner.RunAt(context.Background(), scanTime.AddDate(0, 1, 0)))
	assert.Len(t, repo.created, 2, "mês novo gera alerta novo")
}

func TestBudgetScannerSkipsUsersWithoutProfile(t *testing.T) {
	userID := uuid.New()
	repo := &memNotifications{}
	scanner := NewBudgetScanner(
		fakeUsers{ids: []uuid.UUID{userID}},
		fakeBudgets{profiles: map[uuid.UUID]*onboarding.Profile{}},
		fakeSpends{},
		repo,
	)

	require.NoError(t, scanner.RunAt(context.Background(), scanTime))
	assert.Empty(t, repo.created)
}
