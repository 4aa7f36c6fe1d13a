package account

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(a *Account) error
	FindAllByUserID(userID uuid.UUID) ([]Account, error)
	FindByID(id uuid.UUID) (*Account, error)
	Update(a *Account) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(a *Account) error {
	return r.db.Create(a).Error
}

func (r *repository) FindAllByUserID(userID uuid.UUID) ([]Account, error) {
	var accounts []Account
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Account, error) {
	var a Account
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) Update(a *Account) error {
	return r.db.Save(a).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Account{}, "id = ?", id).Error
}
