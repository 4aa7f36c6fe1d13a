package category

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/monevo-app/monevo-api/internal/config"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateKey     = errors.New("category key already exists")
	ErrInvalidType      = errors.New("invalid category type")
)

type Service interface {
	Create(ctx context.Context, dto CreateCategoryDTO) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id uuid.UUID) (*Category, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateCategoryDTO) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Resolve finds a category either by id or by a free-form label.
	Resolve(ctx context.Context, id *uuid.UUID, label string) (*Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Slugify turns a display label into the lookup key used by the frontend.
func Slugify(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
}

func (s *service) Create(ctx context.Context, dto CreateCategoryDTO) (*Category, error) {
	log := config.WithContext(ctx)

	if !dto.Type.IsValid() {
		return nil, ErrInvalidType
	}

	existing, err := s.repo.FindByKey(dto.Key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateKey
	}

	order := 0
	if dto.Order != nil {
		order = *dto.Order
	}

	c := Category{
		Type:     dto.Type,
		Key:      dto.Key,
		Name:     dto.Name,
		Order:    order,
		ParentID: dto.ParentID,
		Active:   true,
	}
	if err := s.repo.Create(&c); err != nil {
		log.WithError(err).Error("Failed to create category")
		return nil, err
	}
	return &c, nil
}

func (s *service) List(ctx context.Context) ([]Category, error) {
	return s.repo.FindAll()
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Category, error) {
	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateCategoryDTO) (*Category, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		c.Name = *dto.Name
	}
	if dto.Order != nil {
		c.Order = *dto.Order
	}
	if dto.Active != nil {
		c.Active = *dto.Active
	}
	if dto.ParentID != nil {
		c.ParentID = dto.ParentID
	}

	if err := s.repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *service) Resolve(ctx context.Context, id *uuid.UUID, label string) (*Category, error) {
	if id != nil {
		return s.repo.FindByID(*id)
	}
	if label == "" {
		return nil, nil
	}
	return s.repo.FindByKeyOrName(Slugify(label), strings.TrimSpace(label))
}
