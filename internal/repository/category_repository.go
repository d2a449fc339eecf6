package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/store-notes/internal/model"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	ListByStore(ctx context.Context, storeID int64) ([]model.Category, error)
	// Категории loja вместе с заметками.
	ListByStoreWithNotes(ctx context.Context, storeID int64) ([]model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	GetByIDWithNotes(ctx context.Context, id int64) (*model.Category, error)
	// Найти категорию loja по имени без учёта регистра.
	FindByNameInStore(ctx context.Context, name string, storeID int64) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	// Обновить nome и descricao.
	Update(ctx context.Context, category *model.Category) error
	// Удалить категорию вместе с заметками и их напоминаниями.
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	SearchByName(ctx context.Context, name string) ([]model.Category, error)
	Count(ctx context.Context) (int64, error)
	CountByStore(ctx context.Context, storeID int64) (int64, error)
}

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormCategoryRepository) ListByStore(ctx context.Context, storeID int64) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Where("loja_id = ?", storeID).
		Order("id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormCategoryRepository) ListByStoreWithNotes(ctx context.Context, storeID int64) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Preload("Notes", orderByNoteDateDesc).
		Where("loja_id = ?", storeID).
		Order("id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormCategoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCategoryRepository) GetByIDWithNotes(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).
		Preload("Notes", orderByNoteDateDesc).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCategoryRepository) FindByNameInStore(ctx context.Context, name string, storeID int64) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).
		Where("loja_id = ? AND LOWER(nome) = LOWER(?)", storeID, name).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Omit("Store", "Notes").Create(category).Error
}

func (r *GormCategoryRepository) Update(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).
		Model(category).
		Select("nome", "descricao").
		Updates(category).Error
}

func (r *GormCategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteCategoriesTx(tx, []int64{id})
	})
}

func (r *GormCategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &model.Category{}, "id = ?", id)
}

func (r *GormCategoryRepository) SearchByName(ctx context.Context, name string) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Where("LOWER(nome) LIKE ? ESCAPE '!'", containsPattern(name)).
		Order("nome ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormCategoryRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormCategoryRepository) CountByStore(ctx context.Context, storeID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("loja_id = ?", storeID).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// deleteCategoriesTx удаляет категории и всё, что им принадлежит. Вызывается внутри транзакции.
func deleteCategoriesTx(tx *gorm.DB, categoryIDs []int64) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	var noteIDs []int64
	if err := tx.Model(&model.Note{}).Where("categoria_id IN ?", categoryIDs).Pluck("id", &noteIDs).Error; err != nil {
		return err
	}
	if err := deleteNotesTx(tx, noteIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", categoryIDs).Delete(&model.Category{}).Error
}
