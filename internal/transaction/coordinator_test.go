package transaction

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/monevo-app/monevo-api/internal/goal"
)

// fakeGoalStore keeps goals in memory and applies deltas with the same
// clamping rule the real ledger uses.
type fakeGoalStore struct {
	goals map[uuid.UUID]*goal.Goal
}

func newFakeGoalStore(goals ...*goal.Goal) *fakeGoalStore {
	store := &fakeGoalStore{goals: make(map[uuid.UUID]*goal.Goal)}
	for _, g := range goals {
		store.goals[g.ID] = g
	}
	return store
}

func (f *fakeGoalStore) ApplyDelta(tx *gorm.DB, goalID uuid.UUID, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}
	g, ok := f.goals[goalID]
	if !ok {
		return goal.ErrGoalNotFound
	}
	g.CurrentAmount = goal.NextProgress(g.CurrentAmount, delta)
	return nil
}

func (f *fakeGoalStore) FindByID(id uuid.UUID) (*goal.Goal, error) {
	g, ok := f.goals[id]
	if !ok {
		return nil, nil
	}
	return g, nil
}

func newGoal(title string, current string) *goal.Goal {
	return &goal.Goal{
		ID:            uuid.New(),
		Title:         title,
		TargetAmount:  decimal.RequireFromString("10000"),
		CurrentAmount: decimal.RequireFromString(current),
	}
}

func newLinkedTransaction(g *goal.Goal, amount, percent string) *Transaction {
	return &Transaction{
		ID:                uuid.New(),
		Amount:            decimal.RequireFromString(amount),
		Kind:              KindIncome,
		GoalID:            &g.ID,
		AllocationPercent: pct(percent),
	}
}

func TestCoordinatorApplyCreate(t *testing.T) {
	g := newGoal("Reserva de emergência", "0")
	store := newFakeGoalStore(g)
	c := NewCoordinator(store, store)

	tr := newLinkedTransaction(g, "1000", "15")
	require.NoError(t, c.ApplyCreate(context.Background(), nil, tr))

	assert.True(t, tr.AllocatedAmount.Equal(decimal.RequireFromString("150")),
		"alocado_valor esperado 150, obteve %s", tr.AllocatedAmount)
	assert.True(t, g.CurrentAmount.Equal(decimal.RequireFromString("150")),
		"progresso esperado 150, obteve %s", g.CurrentAmount)
	require.NotNil(t, tr.GoalNameCache)
	assert.Equal(t, "Reserva de emergência", *tr.GoalNameCache)
}

func TestCoordinatorApplyCreateWithoutGoal(t *testing.T) {
	store := newFakeGoalStore()
	c := NewCoordinator(store, store)

	tr := &Transaction{
		Amount:            decimal.RequireFromString("500"),
		AllocationPercent: pct("50"),
	}
	require.NoError(t, c.ApplyCreate(context.Background(), nil, tr))
	assert.True(t, tr.AllocatedAmount.IsZero(), "sem meta não há alocação")
}

func TestCoordinatorApplyUpdateReversesBeforeReapplying(t *testing.T) {
	g := newGoal("Viagem", "0")
	store := newFakeGoalStore(g)
	c := NewCoordinator(store, store)

	tr := newLinkedTransaction(g, "1000", "15")
	require.NoError(t, c.ApplyCreate(context.Background(), nil, tr))

	prev := SnapshotOf(tr)
	tr.Amount = decimal.RequireFromString("2000")
	require.NoError(t, c.ApplyUpdate(context.Background(), nil, prev, tr))

	assert.True(t, g.CurrentAmount.Equal(decimal.RequireFromString("300")),
		"progresso esperado 300 (não 450), obteve %s", g.CurrentAmount)
	assert.True(t, tr.AllocatedAmount.Equal(decimal.RequireFromString("300")))
}

func TestCoordinatorApplyUpdateMovesBetweenGoals(t *testing.T) {
	origin := newGoal("Meta antiga", "0")
	target := newGoal("Meta nova", "0")
	store := newFakeGoalStore(origin, target)
	c := NewCoordinator(store, store)

	tr := newLinkedTransaction(origin, "1000", "20")
	require.NoError(t, c.ApplyCreate(context.Background(), nil, tr))
	require.True(t, origin.CurrentAmount.Equal(decimal.RequireFromString("200")))

	prev := SnapshotOf(tr)
	tr.GoalID = &target.ID
	require.NoError(t, c.ApplyUpdate(context.Background(), nil, prev, tr))

	assert.True(t, origin.CurrentAmount.IsZero(),
		"meta de origem deveria voltar a zero, obteve %s", origin.CurrentAmount)
	assert.True(t, target.CurrentAmount.Equal(decimal.RequireFromString("200")),
		"meta de destino esperava 200, obteve %s", target.CurrentAmount)
	require.NotNil(t, tr.GoalNameCache)
	assert.Equal(t, "Meta nova", *tr.GoalNameCache)
}

func TestCoordinatorApplyUpdateClearsGoal(t *testing.T) {
	g := newGoal("Carro", "0")
	store := newFakeGoalStore(g)
	c := NewCoordinator(store, store)

	tr := newLinkedTransaction(g, "1000", "10")
	require.NoError(t, c.ApplyCreate(context.Background(), nil, tr))

	prev := SnapshotOf(tr)
	tr.GoalID = nil
	tr.AllocationPercent = nil
	require.NoError(t, c.ApplyUpdate(context.Background(), nil, prev, tr))

	assert.True(t, g.CurrentAmount.IsZero())
	assert.True(t, tr.AllocatedAmount.IsZero())
	assert.Nil(t, tr.GoalNameCache)
}

func TestCoordinatorApplyDelete(t *testing.T) {
	g := newGoal("Casa própria", "0")
	store := newFakeGoalStore(g)
	c := NewCoordinator(store, store)

	tr := newLinkedTransaction(g, "1000", "15")
	require.NoError(t, c.ApplyCreate(context.Background(), nil, tr))
	require.NoError(t, c.ApplyDelete(context.Background(), nil, tr))

	assert.True(t, g.CurrentAmount.IsZero(),
		"progresso deveria voltar a zero, obteve %s", g.CurrentAmount)
}

func TestCoordinatorReversalClampsAtZero(t *testing.T) {
	g := newGoal("Intercâmbio", "100")
	store := newFakeGoalStore(g)
	c := NewCoordinator(store, store)

	// allocation recorded as larger than the remaining progress, the clamp
	// absorbs the difference instead of driving progress negative
	tr := newLinkedTransaction(g, "2000", "15")
	tr.AllocatedAmount = decimal.RequireFromString("300")

	require.NoError(t, c.ApplyDelete(context.Background(), nil, tr))
	assert.True(t, g.CurrentAmount.IsZero(),
		"progresso esperado 0, obteve %s", g.CurrentAmount)
}

func TestCoordinatorMissingGoalIsSwallowed(t *testing.T) {
	store := newFakeGoalStore()
	c := NewCoordinator(store, store)

	missing := uuid.New()
	tr := &Transaction{
		Amount:            decimal.RequireFromString("1000"),
		GoalID:            &missing,
		AllocationPercent: pct("15"),
	}

	require.NoError(t, c.ApplyCreate(context.Background(), nil, tr))
	assert.True(t, tr.AllocatedAmount.Equal(decimal.RequireFromString("150")),
		"alocado_valor é persistido mesmo com meta ausente")
	assert.Nil(t, tr.GoalNameCache)

	require.NoError(t, c.ApplyDelete(context.Background(), nil, tr))
}

func TestCoordinatorUpdateRoundTripHasNoDrift(t *testing.T) {
	g := newGoal("Aposentadoria", "0")
	store := newFakeGoalStore(g)
	c := NewCoordinator(store, store)

	tr := newLinkedTransaction(g, "333.33", "10")
	require.NoError(t, c.ApplyCreate(context.Background(), nil, tr))
	want := g.CurrentAmount

	for i := 0; i < 5; i++ {
		prev := SnapshotOf(tr)
		require.NoError(t, c.ApplyUpdate(context.Background(), nil, prev, tr))
	}

	assert.True(t, g.CurrentAmount.Equal(want),
		"progresso esperado %s após atualizações sem mudança, obteve %s", want, g.CurrentAmount)
}
