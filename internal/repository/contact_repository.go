package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/store-notes/internal/model"
)

type ContactRepository interface {
	List(ctx context.Context) ([]model.Contact, error)
	// Контакты loja, отсортированные по имени.
	ListByStore(ctx context.Context, storeID int64) ([]model.Contact, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.Contact, error)
	ListByStoreAndRole(ctx context.Context, storeID int64, role model.Role) ([]model.Contact, error)
	// Поиск в loja по подстроке имени или email.
	SearchInStore(ctx context.Context, storeID int64, text string) ([]model.Contact, error)
	GetByID(ctx context.Context, id int64) (*model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) error
	Update(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	// excludeID = 0: проверять все записи.
	ExistsByRegistration(ctx context.Context, registration string, excludeID int64) (bool, error)
	ExistsByEmailInStore(ctx context.Context, email string, storeID, excludeID int64) (bool, error)
}

type GormContactRepository struct {
	db *gorm.DB
}

func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

func (r *GormContactRepository) List(ctx context.Context) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *GormContactRepository) ListByStore(ctx context.Context, storeID int64) ([]model.Contact, error) {
	var contacts []model.Contact
	err := r.db.WithContext(ctx).
		Where("loja_id = ?", storeID).
		Order("nome ASC").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *GormContactRepository) ListByRole(ctx context.Context, role model.Role) ([]model.Contact, error) {
	var contacts []model.Contact
	err := r.db.WithContext(ctx).
		Where("cargo = ?", role).
		Order("id ASC").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *GormContactRepository) ListByStoreAndRole(ctx context.Context, storeID int64, role model.Role) ([]model.Contact, error) {
	var contacts []model.Contact
	err := r.db.WithContext(ctx).
		Where("loja_id = ? AND cargo = ?", storeID, role).
		Order("id ASC").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *GormContactRepository) SearchInStore(ctx context.Context, storeID int64, text string) ([]model.Contact, error) {
	var contacts []model.Contact
	pattern := containsPattern(text)
	err := r.db.WithContext(ctx).
		Where("loja_id = ?", storeID).
		Where("LOWER(nome) LIKE ? ESCAPE '!' OR LOWER(email) LIKE ? ESCAPE '!'", pattern, pattern).
		Order("nome ASC").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *GormContactRepository) GetByID(ctx context.Context, id int64) (*model.Contact, error) {
	var c model.Contact
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Omit("Store").Create(contact).Error
}

func (r *GormContactRepository) Update(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).
		Model(contact).
		Select("nome", "matricula", "cargo", "telefone", "email", "observacoes").
		Updates(contact).Error
}

func (r *GormContactRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Contact{}, "id = ?", id).Error
}

func (r *GormContactRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &model.Contact{}, "id = ?", id)
}

func (r *GormContactRepository) ExistsByRegistration(ctx context.Context, registration string, excludeID int64) (bool, error) {
	return exists(ctx, r.db, &model.Contact{}, "matricula = ? AND id <> ?", registration, excludeID)
}

func (r *GormContactRepository) ExistsByEmailInStore(ctx context.Context, email string, storeID, excludeID int64) (bool, error) {
	return exists(ctx, r.db, &model.Contact{}, "email = ? AND loja_id = ? AND id <> ?", email, storeID, excludeID)
}
