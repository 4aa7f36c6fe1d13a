package recurrence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/monevo-app/monevo-api/internal/config"
)

var (
	ErrRecurrenceNotFound = errors.New("recurrence not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidKind        = errors.New("invalid recurrence kind")
	ErrInvalidPeriod      = errors.New("invalid periodicity")
	ErrInvalidBaseDay     = errors.New("base day must be between 1 and 31")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInvalidPercent     = errors.New("allocation percent must be between 0 and 100")
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateRecurrenceDTO) (*Recurrence, error)
	List(ctx context.Context, userID uuid.UUID) ([]Recurrence, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*Recurrence, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateRecurrenceDTO) (*Recurrence, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validPercent(p *decimal.Decimal) bool {
	if p == nil {
		return true
	}
	return !p.IsNegative() && p.LessThanOrEqual(decimal.NewFromInt(100))
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateRecurrenceDTO) (*Recurrence, error) {
	log := config.WithContext(ctx)

	if !dto.Kind.IsValid() {
		return nil, ErrInvalidKind
	}
	period := dto.Period
	if period == "" {
		period = PeriodMonthly
	}
	if !period.IsValid() {
		return nil, ErrInvalidPeriod
	}
	if dto.BaseDay < 1 || dto.BaseDay > 31 {
		return nil, ErrInvalidBaseDay
	}
	if !dto.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !validPercent(dto.AllocationPercent) {
		return nil, ErrInvalidPercent
	}

	rec := Recurrence{
		UserID:            userID,
		Name:              dto.Name,
		Kind:              dto.Kind,
		Period:            period,
		BaseDay:           dto.BaseDay,
		Amount:            dto.Amount,
		AccountID:         dto.AccountID,
		GoalID:            dto.GoalID,
		AllocationPercent: dto.AllocationPercent,
		Active:            true,
	}
	if err := s.repo.Create(&rec); err != nil {
		log.WithError(err).Error("Failed to create recurrence")
		return nil, err
	}
	return &rec, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Recurrence, error) {
	return s.repo.FindAllByUserID(userID)
}

func (s *service) Get(ctx context.Context, id, userID uuid.UUID) (*Recurrence, error) {
	rec, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrRecurrenceNotFound
	}
	if rec.UserID != userID {
		return nil, ErrUnauthorized
	}
	return rec, nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateRecurrenceDTO) (*Recurrence, error) {
	rec, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if dto.Kind != nil {
		if !dto.Kind.IsValid() {
			return nil, ErrInvalidKind
		}
		rec.Kind = *dto.Kind
	}
	if dto.Period != nil {
		if !dto.Period.IsValid() {
			return nil, ErrInvalidPeriod
		}
		rec.Period = *dto.Period
	}
	if dto.BaseDay != nil {
		if *dto.BaseDay < 1 || *dto.BaseDay > 31 {
			return nil, ErrInvalidBaseDay
		}
		rec.BaseDay = *dto.BaseDay
	}
	if dto.Amount != nil {
		if !dto.Amount.IsPositive() {
			return nil, ErrInvalidAmount
		}
		rec.Amount = *dto.Amount
	}
	if dto.AllocationPercent != nil {
		if !validPercent(dto.AllocationPercent) {
			return nil, ErrInvalidPercent
		}
		rec.AllocationPercent = dto.AllocationPercent
	}
	if dto.Name != nil {
		rec.Name = *dto.Name
	}
	if dto.AccountID != nil {
		rec.AccountID = dto.AccountID
	}
	if dto.GoalID != nil {
		rec.GoalID = dto.GoalID
	}
	if dto.Active != nil {
		rec.Active = *dto.Active
	}

	if err := s.repo.Update(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
