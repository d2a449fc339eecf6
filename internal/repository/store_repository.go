package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Leganyst/store-notes/internal/model"
)

type StoreRepository interface {
	List(ctx context.Context) ([]model.Store, error)
	// Все lojas вместе с категориями.
	ListWithCategories(ctx context.Context) ([]model.Store, error)
	GetByID(ctx context.Context, id int64) (*model.Store, error)
	GetByIDWithCategories(ctx context.Context, id int64) (*model.Store, error)
	Create(ctx context.Context, store *model.Store) error
	// Создать loja и категорию в одной транзакции; StoreID категории заполняется.
	CreateWithCategory(ctx context.Context, store *model.Store, category *model.Category) error
	// Обновить редактируемые поля (nome, descricao, endereco, telefone).
	Update(ctx context.Context, store *model.Store) error
	// Удалить loja вместе с категориями, заметками, напоминаниями и контактами.
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	SearchByName(ctx context.Context, name string) ([]model.Store, error)
	SearchByAddress(ctx context.Context, address string) ([]model.Store, error)
	Count(ctx context.Context) (int64, error)
}

// Реализация на GORM.
type GormStoreRepository struct {
	db *gorm.DB
}

func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

func (r *GormStoreRepository) List(ctx context.Context) ([]model.Store, error) {
	var stores []model.Store
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *GormStoreRepository) ListWithCategories(ctx context.Context) ([]model.Store, error) {
	var stores []model.Store
	err := r.db.WithContext(ctx).
		Preload("Categories", orderByID).
		Order("id ASC").
		Find(&stores).Error
	if err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *GormStoreRepository) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	var s model.Store
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormStoreRepository) GetByIDWithCategories(ctx context.Context, id int64) (*model.Store, error) {
	var s model.Store
	err := r.db.WithContext(ctx).
		Preload("Categories", orderByID).
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormStoreRepository) Create(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Omit("Categories", "Contacts").Create(store).Error
}

func (r *GormStoreRepository) CreateWithCategory(ctx context.Context, store *model.Store, category *model.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories", "Contacts").Create(store).Error; err != nil {
			return err
		}
		category.StoreID = store.ID
		return tx.Omit("Store", "Notes").Create(category).Error
	})
}

func (r *GormStoreRepository) Update(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).
		Model(store).
		Select("nome", "descricao", "endereco", "telefone").
		Updates(store).Error
}

func (r *GormStoreRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var categoryIDs []int64
		if err := tx.Model(&model.Category{}).Where("loja_id = ?", id).Pluck("id", &categoryIDs).Error; err != nil {
			return err
		}
		if err := deleteCategoriesTx(tx, categoryIDs); err != nil {
			return err
		}
		if err := tx.Where("loja_id = ?", id).Delete(&model.Contact{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Store{}, "id = ?", id).Error
	})
}

func (r *GormStoreRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &model.Store{}, "id = ?", id)
}

func (r *GormStoreRepository) SearchByName(ctx context.Context, name string) ([]model.Store, error) {
	var stores []model.Store
	err := r.db.WithContext(ctx).
		Where("LOWER(nome) LIKE ? ESCAPE '!'", containsPattern(name)).
		Order("nome ASC").
		Find(&stores).Error
	if err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *GormStoreRepository) SearchByAddress(ctx context.Context, address string) ([]model.Store, error) {
	var stores []model.Store
	err := r.db.WithContext(ctx).
		Where("LOWER(endereco) LIKE ? ESCAPE '!'", containsPattern(address)).
		Order("nome ASC").
		Find(&stores).Error
	if err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *GormStoreRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Store{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// likeEscaper экранирует спецсимволы LIKE; в запросах используется ESCAPE '!'.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern строит шаблон LIKE для регистронезависимого поиска подстроки.
// % и _ во вводе ищутся буквально.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func exists(ctx context.Context, db *gorm.DB, m any, query string, args ...any) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(m).Where(query, args...).Limit(1).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
