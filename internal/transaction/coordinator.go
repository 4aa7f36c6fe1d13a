package transaction

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/monevo-app/monevo-api/internal/config"
	"github.com/monevo-app/monevo-api/internal/goal"
)

// GoalLookup is the read side the coordinator needs from the goal module.
type GoalLookup interface {
	FindByID(id uuid.UUID) (*goal.Goal, error)
}

// Coordinator sequences transaction writes with their goal-progress side
// effects. Every mutation runs inside the caller's database transaction:
// reversal of the old allocation always lands before the new one so editing
// amount, percent or the goal link never double counts.
type Coordinator struct {
	ledger goal.ProgressLedger
	goals  GoalLookup
}

func NewCoordinator(ledger goal.ProgressLedger, goals GoalLookup) *Coordinator {
	return &Coordinator{ledger: ledger, goals: goals}
}

// AllocationSnapshot captures a transaction's goal link before an edit, so
// the reversal uses the stored values and not anything recomputed.
type AllocationSnapshot struct {
	GoalID    *uuid.UUID
	Allocated decimal.Decimal
}

func SnapshotOf(t *Transaction) AllocationSnapshot {
	return AllocationSnapshot{GoalID: t.GoalID, Allocated: t.AllocatedAmount}
}

func (c *Coordinator) ApplyCreate(ctx context.Context, tx *gorm.DB, t *Transaction) error {
	c.recompute(t)
	if t.GoalID == nil {
		return nil
	}
	if err := c.refreshGoalName(t); err != nil {
		return err
	}
	return c.allocate(ctx, tx, t.GoalID, t.AllocatedAmount)
}

func (c *Coordinator) ApplyUpdate(ctx context.Context, tx *gorm.DB, prev AllocationSnapshot, t *Transaction) error {
	if err := c.allocate(ctx, tx, prev.GoalID, prev.Allocated.Neg()); err != nil {
		return err
	}

	c.recompute(t)
	if t.GoalID == nil {
		return nil
	}
	if err := c.refreshGoalName(t); err != nil {
		return err
	}
	return c.allocate(ctx, tx, t.GoalID, t.AllocatedAmount)
}

func (c *Coordinator) ApplyDelete(ctx context.Context, tx *gorm.DB, t *Transaction) error {
	return c.allocate(ctx, tx, t.GoalID, t.AllocatedAmount.Neg())
}

func (c *Coordinator) recompute(t *Transaction) {
	t.GoalNameCache = nil
	if t.GoalID == nil {
		t.AllocatedAmount = decimal.Zero
		return
	}
	t.AllocatedAmount = AllocationAmount(t.Amount, t.AllocationPercent)
}

// allocate forwards a signed delta to the ledger. A missing goal is logged
// and swallowed: the transaction write proceeds with its link intact, the
// progress update simply has nowhere to land.
func (c *Coordinator) allocate(ctx context.Context, tx *gorm.DB, goalID *uuid.UUID, delta decimal.Decimal) error {
	if goalID == nil || delta.IsZero() {
		return nil
	}
	if err := c.ledger.ApplyDelta(tx, *goalID, delta); err != nil {
		if errors.Is(err, goal.ErrGoalNotFound) {
			config.WithContext(ctx).
				WithField("goal_id", goalID.String()).
				Warn("Allocation skipped: linked goal no longer exists")
			return nil
		}
		return err
	}
	return nil
}

func (c *Coordinator) refreshGoalName(t *Transaction) error {
	g, err := c.goals.FindByID(*t.GoalID)
	if err != nil {
		return err
	}
	if g != nil {
		title := g.Title
		t.GoalNameCache = &title
	}
	return nil
}
