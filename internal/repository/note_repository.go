package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Leganyst/store-notes/internal/model"
)

type NoteRepository interface {
	// Все заметки, новые первыми (по data_nota).
	List(ctx context.Context) ([]model.Note, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]model.Note, error)
	// Заметки loja через join с категориями.
	ListByStore(ctx context.Context, storeID int64) ([]model.Note, error)
	// Последние limit заметок по data_nota.
	ListRecent(ctx context.Context, limit int) ([]model.Note, error)
	GetByID(ctx context.Context, id int64) (*model.Note, error)
	GetByIDWithReminders(ctx context.Context, id int64) (*model.Note, error)
	Create(ctx context.Context, note *model.Note) error
	// Обновить titulo, anotacoes, data_nota, status.
	Update(ctx context.Context, note *model.Note) error
	// Удалить заметку вместе с напоминаниями.
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	// Поиск подстроки в titulo или anotacoes без учёта регистра.
	Search(ctx context.Context, text string) ([]model.Note, error)
	ListByStatus(ctx context.Context, status model.NoteStatus) ([]model.Note, error)
	ListByStatusAndStore(ctx context.Context, status model.NoteStatus, storeID int64) ([]model.Note, error)
	// Заметки с data_nota в [from, to].
	ListBetween(ctx context.Context, from, to time.Time) ([]model.Note, error)
	// Заметки, у которых есть активные и ещё не отправленные напоминания.
	ListWithActiveReminders(ctx context.Context) ([]model.Note, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.NoteStatus) (int64, error)
	CountByStore(ctx context.Context, storeID int64) (int64, error)
	CountByStatusAndStore(ctx context.Context, status model.NoteStatus, storeID int64) (int64, error)
}

type GormNoteRepository struct {
	db *gorm.DB
}

func NewGormNoteRepository(db *gorm.DB) *GormNoteRepository {
	return &GormNoteRepository{db: db}
}

func (r *GormNoteRepository) List(ctx context.Context) ([]model.Note, error) {
	var notes []model.Note
	if err := orderByNoteDateDesc(r.db.WithContext(ctx)).Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *GormNoteRepository) ListByCategory(ctx context.Context, categoryID int64) ([]model.Note, error) {
	var notes []model.Note
	err := orderByNoteDateDesc(r.db.WithContext(ctx)).
		Where("categoria_id = ?", categoryID).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *GormNoteRepository) ListByStore(ctx context.Context, storeID int64) ([]model.Note, error) {
	var notes []model.Note
	err := r.byStore(ctx, storeID).
		Order("notas.data_nota DESC, notas.id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *GormNoteRepository) ListRecent(ctx context.Context, limit int) ([]model.Note, error) {
	var notes []model.Note
	q := orderByNoteDateDesc(r.db.WithContext(ctx))
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *GormNoteRepository) GetByID(ctx context.Context, id int64) (*model.Note, error) {
	var n model.Note
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *GormNoteRepository) GetByIDWithReminders(ctx context.Context, id int64) (*model.Note, error) {
	var n model.Note
	err := r.db.WithContext(ctx).
		Preload("Reminders", orderByRemindAt).
		First(&n, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *GormNoteRepository) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Omit("Category", "Reminders").Create(note).Error
}

func (r *GormNoteRepository) Update(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).
		Model(note).
		Select("titulo", "anotacoes", "data_nota", "status").
		Updates(note).Error
}

func (r *GormNoteRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteNotesTx(tx, []int64{id})
	})
}

func (r *GormNoteRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &model.Note{}, "id = ?", id)
}

func (r *GormNoteRepository) Search(ctx context.Context, text string) ([]model.Note, error) {
	var notes []model.Note
	pattern := containsPattern(text)
	err := orderByNoteDateDesc(r.db.WithContext(ctx)).
		Where("LOWER(titulo) LIKE ? ESCAPE '!' OR LOWER(anotacoes) LIKE ? ESCAPE '!'", pattern, pattern).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *GormNoteRepository) ListByStatus(ctx context.Context, status model.NoteStatus) ([]model.Note, error) {
	var notes []model.Note
	err := orderByNoteDateDesc(r.db.WithContext(ctx)).
		Where("status = ?", status).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *GormNoteRepository) ListByStatusAndStore(ctx context.Context, status model.NoteStatus, storeID int64) ([]model.Note, error) {
	var notes []model.Note
	err := r.byStore(ctx, storeID).
		Where("notas.status = ?", status).
		Order("notas.data_nota DESC, notas.id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *GormNoteRepository) ListBetween(ctx context.Context, from, to time.Time) ([]model.Note, error) {
	var notes []model.Note
	err := orderByNoteDateDesc(r.db.WithContext(ctx)).
		Where("data_nota >= ? AND data_nota <= ?", from, to).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *GormNoteRepository) ListWithActiveReminders(ctx context.Context) ([]model.Note, error) {
	var notes []model.Note
	active := r.db.Model(&model.Reminder{}).
		Select("nota_id").
		Where("ativo = ? AND notificado = ?", true, false)
	err := orderByNoteDateDesc(r.db.WithContext(ctx)).
		Where("id IN (?)", active).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *GormNoteRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Note{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormNoteRepository) CountByStatus(ctx context.Context, status model.NoteStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("status = ?", status).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormNoteRepository) CountByStore(ctx context.Context, storeID int64) (int64, error) {
	var total int64
	if err := r.byStore(ctx, storeID).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormNoteRepository) CountByStatusAndStore(ctx context.Context, status model.NoteStatus, storeID int64) (int64, error) {
	var total int64
	err := r.byStore(ctx, storeID).
		Where("notas.status = ?", status).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// byStore: заметки, категория которых принадлежит loja.
func (r *GormNoteRepository) byStore(ctx context.Context, storeID int64) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Note{}).
		Joins("JOIN categorias ON categorias.id = notas.categoria_id").
		Where("categorias.loja_id = ?", storeID)
}

func orderByNoteDateDesc(db *gorm.DB) *gorm.DB {
	return db.Order("data_nota DESC").Order("id DESC")
}

// deleteNotesTx удаляет заметки и их напоминания. Вызывается внутри транзакции.
func deleteNotesTx(tx *gorm.DB, noteIDs []int64) error {
	if len(noteIDs) == 0 {
		return nil
	}
	if err := tx.Where("nota_id IN ?", noteIDs).Delete(&model.Reminder{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", noteIDs).Delete(&model.Note{}).Error
}
