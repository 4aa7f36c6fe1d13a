package goal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/monevo-app/monevo-api/internal/config"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidTarget   = errors.New("valor_objetivo must be positive")
	ErrProgressTooHigh = errors.New("valor_atual cannot exceed valor_objetivo")
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateGoalDTO) (*Goal, error)
	List(ctx context.Context, userID uuid.UUID) ([]Goal, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*Goal, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateGoalDTO) (*Goal, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateGoalDTO) (*Goal, error) {
	log := config.WithContext(ctx)

	if !dto.TargetAmount.IsPositive() {
		return nil, ErrInvalidTarget
	}

	current := decimal.Zero
	if dto.CurrentAmount != nil {
		current = *dto.CurrentAmount
	}
	if current.IsNegative() {
		return nil, ErrProgressTooHigh
	}
	// direct edits may not start past the target
	if current.GreaterThan(dto.TargetAmount) {
		return nil, ErrProgressTooHigh
	}

	g := Goal{
		UserID:        userID,
		Title:         dto.Title,
		Category:      dto.Category,
		Description:   dto.Description,
		TargetAmount:  dto.TargetAmount,
		CurrentAmount: current,
		Deadline:      dto.Deadline,
		Status:        GoalStatusActive,
	}

	if err := s.repo.Create(&g); err != nil {
		log.WithError(err).Error("Failed to create goal")
		return nil, err
	}

	log.WithField("goal_id", g.ID).Info("Goal created")
	return &g, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Goal, error) {
	return s.repo.FindAllByUserID(userID)
}

func (s *service) Get(ctx context.Context, id, userID uuid.UUID) (*Goal, error) {
	g, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGoalNotFound
	}
	if g.UserID != userID {
		return nil, ErrUnauthorized
	}
	return g, nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateGoalDTO) (*Goal, error) {
	log := config.WithContext(ctx)

	g, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		g.Title = *dto.Title
	}
	if dto.Category != nil {
		g.Category = *dto.Category
	}
	if dto.Description != nil {
		g.Description = dto.Description
	}
	if dto.TargetAmount != nil {
		if !dto.TargetAmount.IsPositive() {
			return nil, ErrInvalidTarget
		}
		g.TargetAmount = *dto.TargetAmount
	}
	if dto.CurrentAmount != nil {
		if dto.CurrentAmount.IsNegative() {
			return nil, ErrProgressTooHigh
		}
		g.CurrentAmount = *dto.CurrentAmount
	}
	if dto.Deadline != nil {
		g.Deadline = dto.Deadline
	}
	if dto.Status != nil {
		if !dto.Status.IsValid() {
			return nil, errors.New("invalid status")
		}
		g.Status = *dto.Status
	}

	// the upper clamp applies to direct edits only; allocation deltas from
	// transactions bypass this path through the ledger
	if dto.CurrentAmount != nil || dto.TargetAmount != nil {
		if g.CurrentAmount.GreaterThan(g.TargetAmount) {
			return nil, ErrProgressTooHigh
		}
	}

	if err := s.repo.Update(g); err != nil {
		log.WithError(err).Error("Failed to update goal")
		return nil, err
	}
	return g, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return err
	}
	// transactions referencing this goal keep their stale link; the ledger
	// treats it as a referential miss from here on
	return s.repo.Delete(id)
}
