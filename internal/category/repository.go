package category

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(c *Category) error
	FindAll() ([]Category, error)
	FindByID(id uuid.UUID) (*Category, error)
	FindByKey(key string) (*Category, error)
	FindByKeyOrName(key, name string) (*Category, error)
	Update(c *Category) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(c *Category) error {
	return r.db.Create(c).Error
}

func (r *repository) FindAll() ([]Category, error) {
	var cats []Category
	if err := r.db.Order("type, display_order ASC").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Category, error) {
	var c Category
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindByKey(key string) (*Category, error) {
	var c Category
	if err := r.db.First(&c, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindByKeyOrName(key, name string) (*Category, error) {
	var c Category
	if err := r.db.First(&c, "key = ? OR LOWER(name) = LOWER(?)", key, name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(c *Category) error {
	return r.db.Save(c).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Category{}, "id = ?", id).Error
}

func (r *repository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&Category{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
