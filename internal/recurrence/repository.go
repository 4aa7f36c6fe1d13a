package recurrence

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(rec *Recurrence) error
	FindAllByUserID(userID uuid.UUID) ([]Recurrence, error)
	FindByID(id uuid.UUID) (*Recurrence, error)
	FindActiveByUserID(userID uuid.UUID) ([]Recurrence, error)
	Update(rec *Recurrence) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(rec *Recurrence) error {
	return r.db.Create(rec).Error
}

func (r *repository) FindAllByUserID(userID uuid.UUID) ([]Recurrence, error) {
	var recs []Recurrence
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *repository) FindActiveByUserID(userID uuid.UUID) ([]Recurrence, error) {
	var recs []Recurrence
	if err := r.db.
		Where("user_id = ? AND active = ?", userID, true).
		Order("base_day ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Recurrence, error) {
	var rec Recurrence
	if err := r.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repository) Update(rec *Recurrence) error {
	return r.db.Save(rec).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Recurrence{}, "id = ?", id).Error
}
