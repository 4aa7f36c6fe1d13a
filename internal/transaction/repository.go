package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	CreateTx(tx *gorm.DB, t *Transaction) error
	FindByID(id uuid.UUID) (*Transaction, error)
	FindAllByUserID(userID uuid.UUID, filter ListFilter) ([]Transaction, error)
	UpdateTx(tx *gorm.DB, t *Transaction) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	FindByCardAndPeriod(cardID uuid.UUID, start, end time.Time) ([]Transaction, error)
	SumExpensesByCategory(userID uuid.UUID, start, end time.Time) (map[string]decimal.Decimal, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTx(tx *gorm.DB, t *Transaction) error {
	return tx.Create(t).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Transaction, error) {
	var t Transaction
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindAllByUserID(userID uuid.UUID, filter ListFilter) ([]Transaction, error) {
	q := r.db.Where("user_id = ?", userID)

	if filter.AccountID != nil {
		q = q.Where("account_id = ?", *filter.AccountID)
	}
	if filter.Kind != nil {
		q = q.Where("kind = ?", *filter.Kind)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.GoalID != nil {
		q = q.Where("goal_id = ?", *filter.GoalID)
	}
	if filter.Start != nil {
		q = q.Where("date >= ?", filter.Start.Time)
	}
	if filter.End != nil {
		q = q.Where("date <= ?", filter.End.Time)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var txs []Transaction
	if err := q.
		Order("date DESC, created_at DESC").
		Offset(filter.Skip).
		Limit(limit).
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *repository) UpdateTx(tx *gorm.DB, t *Transaction) error {
	return tx.Save(t).Error
}

func (r *repository) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&Transaction{}, "id = ?", id).Error
}

func (r *repository) FindByCardAndPeriod(cardID uuid.UUID, start, end time.Time) ([]Transaction, error) {
	var txs []Transaction
	if err := r.db.
		Where("card_id = ? AND date >= ? AND date <= ?", cardID, start, end).
		Order("date ASC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

type categorySum struct {
	CategoryCache string
	Total         decimal.Decimal
}

func (r *repository) SumExpensesByCategory(userID uuid.UUID, start, end time.Time) (map[string]decimal.Decimal, error) {
	var rows []categorySum
	if err := r.db.
		Model(&Transaction{}).
		Select("category_cache, SUM(amount) AS total").
		Where("user_id = ? AND kind = ? AND date >= ? AND date <= ? AND category_cache IS NOT NULL", userID, KindExpense, start, end).
		Group("category_cache").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.CategoryCache] = row.Total
	}
	return totals, nil
}
