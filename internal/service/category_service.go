package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Leganyst/store-notes/internal/model"
	"github.com/Leganyst/store-notes/internal/repository"
	"github.com/Leganyst/store-notes/internal/validate"
)

type CategoryInput struct {
	Name        string
	Description string
	StoreID     int64 // при обновлении игнорируется
}

func (in CategoryInput) validate() error {
	return validate.First(
		validate.RequiredMax("nome", in.Name, 100),
		validate.MaxLen("descricao", in.Description, 300),
	)
}

type CategoryService struct {
	categories repository.CategoryRepository
	stores     repository.StoreRepository
}

func NewCategoryService(categories repository.CategoryRepository, stores repository.StoreRepository) *CategoryService {
	return &CategoryService{categories: categories, stores: stores}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) ListByStore(ctx context.Context, storeID int64) ([]model.Category, error) {
	return s.categories.ListByStore(ctx, storeID)
}

func (s *CategoryService) ListByStoreWithNotes(ctx context.Context, storeID int64) ([]model.Category, error) {
	return s.categories.ListByStoreWithNotes(ctx, storeID)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*model.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "category", id)
	}
	return c, nil
}

func (s *CategoryService) GetWithNotes(ctx context.Context, id int64) (*model.Category, error) {
	c, err := s.categories.GetByIDWithNotes(ctx, id)
	if err != nil {
		return nil, notFound(err, "category", id)
	}
	return c, nil
}

// Create требует существующую loja и уникальное (без учёта регистра) имя внутри неё.
func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*model.Category, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	ok, err := s.stores.Exists(ctx, in.StoreID)
	if err := parentExists(ok, err, "store", in.StoreID); err != nil {
		return nil, err
	}

	_, err = s.categories.FindByNameInStore(ctx, in.Name, in.StoreID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("category %q in store %d: %w", in.Name, in.StoreID, ErrConflict)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("find category by name: %w", err)
	}

	c := &model.Category{
		Name:        in.Name,
		Description: in.Description,
		StoreID:     in.StoreID,
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, duplicate(err, "create category")
	}
	return c, nil
}

// Update меняет только nome и descricao. Уникальность имени здесь не проверяется.
func (s *CategoryService) Update(ctx context.Context, id int64, in CategoryInput) (*model.Category, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "category", id)
	}
	c.Name = in.Name
	c.Description = in.Description

	if err := s.categories.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	ok, err := s.categories.Exists(ctx, id)
	if err := mustExist(ok, err, "category", id); err != nil {
		return err
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}

func (s *CategoryService) Search(ctx context.Context, name string) ([]model.Category, error) {
	return s.categories.SearchByName(ctx, name)
}

func (s *CategoryService) Count(ctx context.Context) (int64, error) {
	return s.categories.Count(ctx)
}

func (s *CategoryService) CountByStore(ctx context.Context, storeID int64) (int64, error) {
	return s.categories.CountByStore(ctx, storeID)
}
