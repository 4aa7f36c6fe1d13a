package goal

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestGoalCreateValidation(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()
	userID := uuid.New()

	t.Run("objetivo deve ser positivo", func(t *testing.T) {
		_, err := svc.Create(ctx, userID, CreateGoalDTO{Title: "Meta", TargetAmount: dec("0")})
		assert.ErrorIs(t, err, ErrInvalidTarget)
	})

	t.Run("progresso inicial não passa do objetivo", func(t *testing.T) {
		_, err := svc.Create(ctx, userID, CreateGoalDTO{
			Title:         "Meta",
			TargetAmount:  dec("100"),
			CurrentAmount: decPtr("150"),
		})
		assert.ErrorIs(t, err, ErrProgressTooHigh)
	})

	t.Run("criação válida começa ativa", func(t *testing.T) {
		g, err := svc.Create(ctx, userID, CreateGoalDTO{
			Title:        "Reserva",
			TargetAmount: dec("5000"),
		})
		require.NoError(t, err)
		assert.Equal(t, GoalStatusActive, g.Status)
		assert.True(t, g.CurrentAmount.IsZero())
	})
}

func TestGoalOwnership(t *testing.T) {
	owner := uuid.New()
	g := &Goal{ID: uuid.New(), UserID: owner, Title: "Meta", TargetAmount: dec("100")}
	svc := NewService(newMemRepo(g))
	ctx := context.Background()

	_, err := svc.Get(ctx, g.ID, uuid.New())
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Get(ctx, uuid.New(), owner)
	assert.ErrorIs(t, err, ErrGoalNotFound)

	got, err := svc.Get(ctx, g.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, g.ID, got.ID)
}

func TestGoalUpdateClampsDirectEditsOnly(t *testing.T) {
	owner := uuid.New()
	g := &Goal{ID: uuid.New(), UserID: owner, Title: "Meta", TargetAmount: dec("1000"), CurrentAmount: dec("200")}
	repo := newMemRepo(g)
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Update(ctx, g.ID, owner, UpdateGoalDTO{CurrentAmount: decPtr("1500")})
	assert.ErrorIs(t, err, ErrProgressTooHigh)

	// the ledger is free to push past the target, the accessor reports it
	g.CurrentAmount = NextProgress(g.CurrentAmount, dec("2000"))
	assert.True(t, g.Exceeded())
}
