package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Leganyst/store-notes/internal/model"
)

type ReminderRepository interface {
	// Все напоминания по возрастанию data_hora_lembrete.
	List(ctx context.Context) ([]model.Reminder, error)
	ListByNote(ctx context.Context, noteID int64) ([]model.Reminder, error)
	// Все с ativo = true, включая уже отправленные.
	ListActive(ctx context.Context) ([]model.Reminder, error)
	// Активные неотправленные с data_hora_lembrete в [from, to]; limit <= 0: без ограничения.
	ListDue(ctx context.Context, from, to time.Time, limit int) ([]model.Reminder, error)
	// Активные неотправленные, срок которых уже прошёл.
	ListOverdue(ctx context.Context, now time.Time) ([]model.Reminder, error)
	ListByStore(ctx context.Context, storeID int64) ([]model.Reminder, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]model.Reminder, error)
	GetByID(ctx context.Context, id int64) (*model.Reminder, error)
	Create(ctx context.Context, reminder *model.Reminder) error
	// Обновить titulo, descricao, data_hora_lembrete, ativo.
	Update(ctx context.Context, reminder *model.Reminder) error
	SetNotified(ctx context.Context, id int64, notified bool) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	CountActive(ctx context.Context) (int64, error)
	CountDue(ctx context.Context, from, to time.Time) (int64, error)
	CountByStore(ctx context.Context, storeID int64) (int64, error)
}

type GormReminderRepository struct {
	db *gorm.DB
}

func NewGormReminderRepository(db *gorm.DB) *GormReminderRepository {
	return &GormReminderRepository{db: db}
}

func (r *GormReminderRepository) List(ctx context.Context) ([]model.Reminder, error) {
	var reminders []model.Reminder
	if err := orderByRemindAt(r.db.WithContext(ctx)).Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *GormReminderRepository) ListByNote(ctx context.Context, noteID int64) ([]model.Reminder, error) {
	var reminders []model.Reminder
	err := orderByRemindAt(r.db.WithContext(ctx)).
		Where("nota_id = ?", noteID).
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *GormReminderRepository) ListActive(ctx context.Context) ([]model.Reminder, error) {
	var reminders []model.Reminder
	err := orderByRemindAt(r.active(ctx)).Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *GormReminderRepository) ListDue(ctx context.Context, from, to time.Time, limit int) ([]model.Reminder, error) {
	var reminders []model.Reminder
	q := orderByRemindAt(r.pending(ctx)).
		Where("data_hora_lembrete >= ? AND data_hora_lembrete <= ?", from, to)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *GormReminderRepository) ListOverdue(ctx context.Context, now time.Time) ([]model.Reminder, error) {
	var reminders []model.Reminder
	err := orderByRemindAt(r.pending(ctx)).
		Where("data_hora_lembrete < ?", now).
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *GormReminderRepository) ListByStore(ctx context.Context, storeID int64) ([]model.Reminder, error) {
	var reminders []model.Reminder
	err := r.byStore(ctx, storeID).
		Order("lembretes.data_hora_lembrete ASC, lembretes.id ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *GormReminderRepository) ListBetween(ctx context.Context, from, to time.Time) ([]model.Reminder, error) {
	var reminders []model.Reminder
	err := orderByRemindAt(r.db.WithContext(ctx)).
		Where("data_hora_lembrete >= ? AND data_hora_lembrete <= ?", from, to).
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *GormReminderRepository) GetByID(ctx context.Context, id int64) (*model.Reminder, error) {
	var rem model.Reminder
	if err := r.db.WithContext(ctx).First(&rem, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rem, nil
}

func (r *GormReminderRepository) Create(ctx context.Context, reminder *model.Reminder) error {
	return r.db.WithContext(ctx).Omit("Note").Create(reminder).Error
}

func (r *GormReminderRepository) Update(ctx context.Context, reminder *model.Reminder) error {
	return r.db.WithContext(ctx).
		Model(reminder).
		Select("titulo", "descricao", "data_hora_lembrete", "ativo").
		Updates(reminder).Error
}

func (r *GormReminderRepository) SetNotified(ctx context.Context, id int64, notified bool) error {
	return r.setFlag(ctx, id, "notificado", notified)
}

func (r *GormReminderRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.setFlag(ctx, id, "ativo", active)
}

func (r *GormReminderRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Reminder{}, "id = ?", id).Error
}

func (r *GormReminderRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &model.Reminder{}, "id = ?", id)
}

func (r *GormReminderRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	if err := r.active(ctx).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormReminderRepository) CountDue(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	err := r.pending(ctx).
		Where("data_hora_lembrete >= ? AND data_hora_lembrete <= ?", from, to).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormReminderRepository) CountByStore(ctx context.Context, storeID int64) (int64, error) {
	var total int64
	if err := r.byStore(ctx, storeID).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormReminderRepository) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Reminder{}).
		Where("ativo = ?", true)
}

// pending: активные и не отправленные напоминания.
func (r *GormReminderRepository) pending(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Reminder{}).
		Where("ativo = ? AND notificado = ?", true, false)
}

func (r *GormReminderRepository) byStore(ctx context.Context, storeID int64) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Reminder{}).
		Joins("JOIN notas ON notas.id = lembretes.nota_id").
		Joins("JOIN categorias ON categorias.id = notas.categoria_id").
		Where("categorias.loja_id = ?", storeID)
}

func (r *GormReminderRepository) setFlag(ctx context.Context, id int64, column string, value bool) error {
	res := r.db.WithContext(ctx).
		Model(&model.Reminder{}).
		Where("id = ?", id).
		Updates(map[string]any{column: value, "data_atualizacao": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func orderByRemindAt(db *gorm.DB) *gorm.DB {
	return db.Order("data_hora_lembrete ASC").Order("id ASC")
}
