package notification

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(n *Notification) error
	FindAllByUserID(userID uuid.UUID) ([]Notification, error)
	FindByID(id uuid.UUID) (*Notification, error)
	ExistsByReference(userID uuid.UUID, reference string) (bool, error)
	Update(n *Notification) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(n *Notification) error {
	return r.db.Create(n).Error
}

func (r *repository) FindAllByUserID(userID uuid.UUID) ([]Notification, error) {
	var notifications []Notification
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Notification, error) {
	var n Notification
	if err := r.db.First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *repository) ExistsByReference(userID uuid.UUID, reference string) (bool, error) {
	var count int64
	if err := r.db.
		Model(&Notification{}).
		Where("user_id = ? AND reference = ?", userID, reference).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Update(n *Notification) error {
	return r.db.Save(n).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Notification{}, "id = ?", id).Error
}
