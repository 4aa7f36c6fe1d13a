package goal

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGoalNotFound = errors.New("goal not found")

// ProgressLedger applies signed allocation deltas to a goal's accumulated
// progress. It is the only writer of valor_atual besides direct goal edits.
type ProgressLedger interface {
	ApplyDelta(tx *gorm.DB, goalID uuid.UUID, delta decimal.Decimal) error
}

type progressLedger struct {
	repo Repository
}

func NewProgressLedger(repo Repository) ProgressLedger {
	return &progressLedger{repo: repo}
}

// NextProgress clamps the running total at zero. No upper clamp: allocation
// deltas may push progress past the target, and callers surface that through
// Goal.Exceeded rather than losing the contribution.
func NextProgress(current, delta decimal.Decimal) decimal.Decimal {
	next := current.Add(delta)
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}

func (l *progressLedger) ApplyDelta(tx *gorm.DB, goalID uuid.UUID, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}

	g, err := l.repo.FindByIDForUpdate(tx, goalID)
	if err != nil {
		return err
	}
	if g == nil {
		return ErrGoalNotFound
	}

	g.CurrentAmount = NextProgress(g.CurrentAmount, delta)
	return l.repo.UpdateTx(tx, g)
}
