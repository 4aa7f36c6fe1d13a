package goal

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memRepo struct {
	goals   map[uuid.UUID]*Goal
	updates int
}

func newMemRepo(goals ...*Goal) *memRepo {
	r := &memRepo{goals: make(map[uuid.UUID]*Goal)}
	for _, g := range goals {
		r.goals[g.ID] = g
	}
	return r
}

func (r *memRepo) Create(g *Goal) error {
	r.goals[g.ID] = g
	return nil
}

func (r *memRepo) FindAllByUserID(userID uuid.UUID) ([]Goal, error) {
	var out []Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *memRepo) FindByID(id uuid.UUID) (*Goal, error) {
	return r.goals[id], nil
}

func (r *memRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*Goal, error) {
	return r.goals[id], nil
}

func (r *memRepo) Update(g *Goal) error {
	r.goals[g.ID] = g
	return nil
}

func (r *memRepo) UpdateTx(tx *gorm.DB, g *Goal) error {
	r.updates++
	r.goals[g.ID] = g
	return nil
}

func (r *memRepo) Delete(id uuid.UUID) error {
	delete(r.goals, id)
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNextProgress(t *testing.T) {
	tests := []struct {
		name    string
		current string
		delta   string
		want    string
	}{
		{"incremento simples", "100", "50", "150"},
		{"decremento simples", "100", "-40", "60"},
		{"zera exatamente", "100", "-100", "0"},
		{"trava em zero", "100", "-300", "0"},
		{"sem limite superior", "9000", "5000", "14000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextProgress(dec(tt.current), dec(tt.delta))
			assert.True(t, got.Equal(dec(tt.want)),
				"esperava %s, obteve %s", tt.want, got)
		})
	}
}

func TestApplyDelta(t *testing.T) {
	g := &Goal{ID: uuid.New(), Title: "Reserva", TargetAmount: dec("1000"), CurrentAmount: dec("200")}
	repo := newMemRepo(g)
	ledger := NewProgressLedger(repo)

	require.NoError(t, ledger.ApplyDelta(nil, g.ID, dec("150")))
	assert.True(t, g.CurrentAmount.Equal(dec("350")))

	require.NoError(t, ledger.ApplyDelta(nil, g.ID, dec("-500")))
	assert.True(t, g.CurrentAmount.IsZero(), "reversão acima do acumulado trava em zero")
}

func TestApplyDeltaZeroIsNoop(t *testing.T) {
	g := &Goal{ID: uuid.New(), CurrentAmount: dec("100")}
	repo := newMemRepo(g)
	ledger := NewProgressLedger(repo)

	require.NoError(t, ledger.ApplyDelta(nil, g.ID, decimal.Zero))
	assert.Zero(t, repo.updates, "delta zero não deveria escrever no banco")
}

func TestApplyDeltaMissingGoal(t *testing.T) {
	ledger := NewProgressLedger(newMemRepo())
	err := ledger.ApplyDelta(nil, uuid.New(), dec("10"))
	assert.ErrorIs(t, err, ErrGoalNotFound)
}
