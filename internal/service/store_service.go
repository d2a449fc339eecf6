package service

import (
	"context"
	"fmt"

	"github.com/Leganyst/store-notes/internal/model"
	"github.com/Leganyst/store-notes/internal/repository"
	"github.com/Leganyst/store-notes/internal/validate"
)

// StoreInput: редактируемые поля loja.
type StoreInput struct {
	Name        string
	Description string
	Address     string
	Phone       string
}

func (in StoreInput) validate() error {
	return validate.First(
		validate.RequiredMax("nome", in.Name, 100),
		validate.MaxLen("descricao", in.Description, 500),
		validate.MaxLen("endereco", in.Address, 200),
		validate.MaxLen("telefone", in.Phone, 20),
	)
}

// StoreService: операции над lojas.
type StoreService struct {
	stores     repository.StoreRepository
	categories repository.CategoryRepository

	// Создавать категорию "Geral" вместе с новой loja.
	autoDefaultCategory bool
}

func NewStoreService(stores repository.StoreRepository, categories repository.CategoryRepository, autoDefaultCategory bool) *StoreService {
	return &StoreService{stores: stores, categories: categories, autoDefaultCategory: autoDefaultCategory}
}

func (s *StoreService) List(ctx context.Context) ([]model.Store, error) {
	return s.stores.List(ctx)
}

func (s *StoreService) ListWithCategories(ctx context.Context) ([]model.Store, error) {
	return s.stores.ListWithCategories(ctx)
}

func (s *StoreService) Get(ctx context.Context, id int64) (*model.Store, error) {
	st, err := s.stores.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "store", id)
	}
	return st, nil
}

func (s *StoreService) GetWithCategories(ctx context.Context, id int64) (*model.Store, error) {
	st, err := s.stores.GetByIDWithCategories(ctx, id)
	if err != nil {
		return nil, notFound(err, "store", id)
	}
	return st, nil
}

// Create сохраняет loja; при включённой опции добавляет категорию по умолчанию.
func (s *StoreService) Create(ctx context.Context, in StoreInput) (*model.Store, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	st := &model.Store{
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		Phone:       in.Phone,
	}
	if !s.autoDefaultCategory {
		if err := s.stores.Create(ctx, st); err != nil {
			return nil, fmt.Errorf("create store: %w", err)
		}
		return st, nil
	}

	// loja без категории по умолчанию не сохраняется
	if err := s.stores.CreateWithCategory(ctx, st, defaultCategory(0)); err != nil {
		return nil, fmt.Errorf("create store with default category: %w", err)
	}
	return st, nil
}

// Update заменяет nome, descricao, endereco и telefone.
func (s *StoreService) Update(ctx context.Context, id int64, in StoreInput) (*model.Store, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	st, err := s.stores.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "store", id)
	}
	st.Name = in.Name
	st.Description = in.Description
	st.Address = in.Address
	st.Phone = in.Phone

	if err := s.stores.Update(ctx, st); err != nil {
		return nil, fmt.Errorf("update store %d: %w", id, err)
	}
	return st, nil
}

// Delete удаляет loja со всеми потомками и контактами.
func (s *StoreService) Delete(ctx context.Context, id int64) error {
	ok, err := s.stores.Exists(ctx, id)
	if err := mustExist(ok, err, "store", id); err != nil {
		return err
	}
	if err := s.stores.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete store %d: %w", id, err)
	}
	return nil
}

func (s *StoreService) Search(ctx context.Context, name string) ([]model.Store, error) {
	return s.stores.SearchByName(ctx, name)
}

func (s *StoreService) SearchByAddress(ctx context.Context, address string) ([]model.Store, error) {
	return s.stores.SearchByAddress(ctx, address)
}

func (s *StoreService) Count(ctx context.Context) (int64, error) {
	return s.stores.Count(ctx)
}

// BackfillDefaultCategories добавляет "Geral" каждой loja без категорий.
// Возвращает число исправленных loja; повторный запуск ничего не меняет.
func (s *StoreService) BackfillDefaultCategories(ctx context.Context) (int, error) {
	stores, err := s.stores.ListWithCategories(ctx)
	if err != nil {
		return 0, fmt.Errorf("list stores: %w", err)
	}

	repaired := 0
	for _, st := range stores {
		if len(st.Categories) > 0 {
			continue
		}
		if err := s.createDefaultCategory(ctx, st.ID); err != nil {
			return repaired, err
		}
		repaired++
	}
	return repaired, nil
}

func defaultCategory(storeID int64) *model.Category {
	return &model.Category{
		Name:        model.DefaultCategoryName,
		Description: model.DefaultCategoryDescription,
		StoreID:     storeID,
	}
}

func (s *StoreService) createDefaultCategory(ctx context.Context, storeID int64) error {
	if err := s.categories.Create(ctx, defaultCategory(storeID)); err != nil {
		return fmt.Errorf("create default category for store %d: %w", storeID, err)
	}
	return nil
}
