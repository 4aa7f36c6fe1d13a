package transaction

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/monevo-app/monevo-api/internal/account"
	"github.com/monevo-app/monevo-api/internal/category"
	"github.com/monevo-app/monevo-api/internal/config"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidKind         = errors.New("invalid transaction kind")
	ErrInvalidStatus       = errors.New("invalid transaction status")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInvalidPercent      = errors.New("allocation percent must be between 0 and 100")
	ErrMissingDate         = errors.New("date is required")
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateTransactionDTO) (*Transaction, error)
	List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]Transaction, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*Transaction, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateTransactionDTO) (*Transaction, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	db          *gorm.DB
	repo        Repository
	coordinator *Coordinator
	categories  category.Service
	accounts    account.Repository
}

func NewService(db *gorm.DB, repo Repository, coordinator *Coordinator, categories category.Service, accounts account.Repository) Service {
	return &service{
		db:          db,
		repo:        repo,
		coordinator: coordinator,
		categories:  categories,
		accounts:    accounts,
	}
}

func validPercent(p *decimal.Decimal) bool {
	if p == nil {
		return true
	}
	return !p.IsNegative() && p.LessThanOrEqual(decimal.NewFromInt(100))
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateTransactionDTO) (*Transaction, error) {
	log := config.WithContext(ctx)

	if !dto.Kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if !dto.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !validPercent(dto.AllocationPercent) {
		return nil, ErrInvalidPercent
	}
	if dto.Date.IsZero() {
		return nil, ErrMissingDate
	}

	status := StatusConfirmed
	if dto.Status != nil {
		if !dto.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		status = *dto.Status
	}

	t := Transaction{
		UserID:            userID,
		Amount:            dto.Amount,
		Kind:              dto.Kind,
		Date:              dto.Date,
		AccountID:         dto.AccountID,
		CardID:            dto.CardID,
		Description:       dto.Description,
		InstallmentsTotal: dto.InstallmentsTotal,
		InstallmentNum:    dto.InstallmentNum,
		Reference:         dto.Reference,
		ImportOrigin:      dto.ImportOrigin,
		GoalID:            dto.GoalID,
		AllocationPercent: dto.AllocationPercent,
		Status:            status,
	}

	if err := s.resolveCategory(ctx, &t, dto.CategoryID, dto.CategoryLabel); err != nil {
		return nil, err
	}
	if err := s.refreshAccountName(&t); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.coordinator.ApplyCreate(ctx, tx, &t); err != nil {
			return err
		}
		return s.repo.CreateTx(tx, &t)
	})
	if err != nil {
		log.WithError(err).Error("Failed to create transaction")
		return nil, err
	}
	return &t, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]Transaction, error) {
	if filter.Kind != nil && !filter.Kind.IsValid() {
		return nil, ErrInvalidKind
	}
	return s.repo.FindAllByUserID(userID, filter)
}

func (s *service) Get(ctx context.Context, id, userID uuid.UUID) (*Transaction, error) {
	t, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTransactionNotFound
	}
	if t.UserID != userID {
		return nil, ErrUnauthorized
	}
	return t, nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateTransactionDTO) (*Transaction, error) {
	log := config.WithContext(ctx)

	t, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	prev := SnapshotOf(t)

	if dto.Kind != nil {
		if !dto.Kind.IsValid() {
			return nil, ErrInvalidKind
		}
		t.Kind = *dto.Kind
	}
	if dto.Amount != nil {
		if !dto.Amount.IsPositive() {
			return nil, ErrInvalidAmount
		}
		t.Amount = *dto.Amount
	}
	if dto.Date != nil {
		t.Date = *dto.Date
	}
	if dto.Status != nil {
		if !dto.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		t.Status = *dto.Status
	}
	if dto.Description != nil {
		t.Description = dto.Description
	}
	if dto.InstallmentsTotal != nil {
		t.InstallmentsTotal = dto.InstallmentsTotal
	}
	if dto.InstallmentNum != nil {
		t.InstallmentNum = dto.InstallmentNum
	}
	if dto.Reference != nil {
		t.Reference = dto.Reference
	}
	if dto.ImportOrigin != nil {
		t.ImportOrigin = dto.ImportOrigin
	}
	if dto.CardID != nil {
		t.CardID = dto.CardID
	}

	if dto.AllocationPercent != nil {
		if !validPercent(dto.AllocationPercent) {
			return nil, ErrInvalidPercent
		}
		t.AllocationPercent = dto.AllocationPercent
	}
	if dto.GoalID != nil {
		t.GoalID = dto.GoalID
	}
	if dto.ClearGoal != nil && *dto.ClearGoal {
		t.GoalID = nil
		t.AllocationPercent = nil
	}

	if dto.CategoryID != nil || dto.CategoryLabel != nil {
		label := ""
		if dto.CategoryLabel != nil {
			label = *dto.CategoryLabel
		}
		if err := s.resolveCategory(ctx, t, dto.CategoryID, label); err != nil {
			return nil, err
		}
	}
	if dto.AccountID != nil {
		t.AccountID = dto.AccountID
		if err := s.refreshAccountName(t); err != nil {
			return nil, err
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.coordinator.ApplyUpdate(ctx, tx, prev, t); err != nil {
			return err
		}
		return s.repo.UpdateTx(tx, t)
	})
	if err != nil {
		log.WithError(err).Error("Failed to update transaction")
		return nil, err
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	t, err := s.Get(ctx, id, userID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.coordinator.ApplyDelete(ctx, tx, t); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, t.ID)
	})
	if err != nil {
		log.WithError(err).Error("Failed to delete transaction")
	}
	return err
}

func (s *service) resolveCategory(ctx context.Context, t *Transaction, id *uuid.UUID, label string) error {
	c, err := s.categories.Resolve(ctx, id, label)
	if err != nil {
		return err
	}
	if c == nil {
		// free-form labels without a catalog match are kept as cache only
		t.CategoryID = nil
		if label != "" {
			t.CategoryCache = &label
		}
		return nil
	}
	t.CategoryID = &c.ID
	t.CategoryCache = &c.Name
	return nil
}

func (s *service) refreshAccountName(t *Transaction) error {
	t.AccountNameCache = nil
	if t.AccountID == nil {
		return nil
	}
	a, err := s.accounts.FindByID(*t.AccountID)
	if err != nil {
		return err
	}
	if a != nil {
		name := a.Name
		t.AccountNameCache = &name
	}
	return nil
}
