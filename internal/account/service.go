package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/monevo-app/monevo-api/internal/config"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidType     = errors.New("invalid account type")
	ErrInvalidCardDay  = errors.New("card day must be between 1 and 31")
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateAccountDTO) (*Account, error)
	List(ctx context.Context, userID uuid.UUID) ([]Account, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*Account, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateAccountDTO) (*Account, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validCardDay(d *int) bool {
	return d == nil || (*d >= 1 && *d <= 31)
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateAccountDTO) (*Account, error) {
	log := config.WithContext(ctx)

	if !dto.Type.IsValid() {
		return nil, ErrInvalidType
	}
	if !validCardDay(dto.CardClosingDay) || !validCardDay(dto.CardDueDay) {
		return nil, ErrInvalidCardDay
	}

	balance := decimal.Zero
	if dto.InitialBalance != nil {
		balance = *dto.InitialBalance
	}

	a := Account{
		UserID:         userID,
		Type:           dto.Type,
		Name:           dto.Name,
		CardClosingDay: dto.CardClosingDay,
		CardDueDay:     dto.CardDueDay,
		BalanceCache:   balance,
	}
	if err := s.repo.Create(&a); err != nil {
		log.WithError(err).Error("Failed to create account")
		return nil, err
	}
	return &a, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Account, error) {
	return s.repo.FindAllByUserID(userID)
}

func (s *service) Get(ctx context.Context, id, userID uuid.UUID) (*Account, error) {
	a, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAccountNotFound
	}
	if a.UserID != userID {
		return nil, ErrUnauthorized
	}
	return a, nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateAccountDTO) (*Account, error) {
	a, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if !validCardDay(dto.CardClosingDay) || !validCardDay(dto.CardDueDay) {
		return nil, ErrInvalidCardDay
	}

	if dto.Name != nil {
		a.Name = *dto.Name
	}
	if dto.CardClosingDay != nil {
		a.CardClosingDay = dto.CardClosingDay
	}
	if dto.CardDueDay != nil {
		a.CardDueDay = dto.CardDueDay
	}

	if err := s.repo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
