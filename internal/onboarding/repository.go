package onboarding

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/monevo-app/monevo-api/internal/account"
	"github.com/monevo-app/monevo-api/internal/goal"
)

type Repository interface {
	CreateProfileTx(tx *gorm.DB, p *Profile) error
	SeedAccountTx(tx *gorm.DB, a *account.Account) error
	SeedGoalTx(tx *gorm.DB, g *goal.Goal) error
	FindByUserID(userID uuid.UUID) (*Profile, error)
	Update(p *Profile) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateProfileTx(tx *gorm.DB, p *Profile) error {
	return tx.Create(p).Error
}

func (r *repository) SeedAccountTx(tx *gorm.DB, a *account.Account) error {
	return tx.Create(a).Error
}

func (r *repository) SeedGoalTx(tx *gorm.DB, g *goal.Goal) error {
	return tx.Create(g).Error
}

func (r *repository) FindByUserID(userID uuid.UUID) (*Profile, error) {
	var p Profile
	if err := r.db.First(&p, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(p *Profile) error {
	return r.db.Save(p).Error
}
