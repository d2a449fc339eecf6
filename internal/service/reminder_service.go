package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Leganyst/store-notes/internal/model"
	"github.com/Leganyst/store-notes/internal/repository"
	"github.com/Leganyst/store-notes/internal/utils"
	"github.com/Leganyst/store-notes/internal/validate"
)

// ReminderInput: поля запроса на создание/изменение напоминания.
// Active необязателен: при создании по умолчанию true, при обновлении сохраняется текущее значение.
type ReminderInput struct {
	Title       string
	Description string
	RemindAt    time.Time
	Active      *bool
	NoteID      int64 // при обновлении игнорируется
}

func (in ReminderInput) validate() error {
	if in.RemindAt.IsZero() {
		return validate.Fail("dataHoraLembrete", "is required")
	}
	return validate.First(
		validate.MaxLen("titulo", in.Title, 200),
		validate.MaxLen("descricao", in.Description, 500),
	)
}

type ReminderService struct {
	reminders repository.ReminderRepository
	notes     repository.NoteRepository
	now       Clock
}

func NewReminderService(reminders repository.ReminderRepository, notes repository.NoteRepository, now Clock) *ReminderService {
	if now == nil {
		now = time.Now
	}
	return &ReminderService{reminders: reminders, notes: notes, now: now}
}

func (s *ReminderService) List(ctx context.Context) ([]model.Reminder, error) {
	return s.reminders.List(ctx)
}

func (s *ReminderService) ListByNote(ctx context.Context, noteID int64) ([]model.Reminder, error) {
	return s.reminders.ListByNote(ctx, noteID)
}

func (s *ReminderService) ListByStore(ctx context.Context, storeID int64) ([]model.Reminder, error) {
	return s.reminders.ListByStore(ctx, storeID)
}

func (s *ReminderService) ListActive(ctx context.Context) ([]model.Reminder, error) {
	return s.reminders.ListActive(ctx)
}

// ListUpcoming: активные неотправленные напоминания в окне [now, now+24h].
func (s *ReminderService) ListUpcoming(ctx context.Context) ([]model.Reminder, error) {
	w := utils.WindowFrom(s.now(), model.UpcomingWindow)
	return s.reminders.ListDue(ctx, w.Start, w.End, 0)
}

// ListOverdue: активные неотправленные напоминания, срок которых прошёл.
func (s *ReminderService) ListOverdue(ctx context.Context) ([]model.Reminder, error) {
	return s.reminders.ListOverdue(ctx, s.now().UTC())
}

func (s *ReminderService) ListBetween(ctx context.Context, from, to time.Time) ([]model.Reminder, error) {
	tr, err := utils.NormalizeTimeRange(from, to)
	if err != nil {
		return nil, validate.Fail("periodo", err.Error())
	}
	return s.reminders.ListBetween(ctx, tr.Start, tr.End)
}

func (s *ReminderService) Get(ctx context.Context, id int64) (*model.Reminder, error) {
	r, err := s.reminders.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "reminder", id)
	}
	return r, nil
}

func (s *ReminderService) Create(ctx context.Context, in ReminderInput) (*model.Reminder, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	ok, err := s.notes.Exists(ctx, in.NoteID)
	if err := parentExists(ok, err, "note", in.NoteID); err != nil {
		return nil, err
	}

	r := &model.Reminder{
		Title:       in.Title,
		Description: in.Description,
		RemindAt:    in.RemindAt.UTC(),
		Active:      true,
		Notified:    false,
		NoteID:      in.NoteID,
	}
	if in.Active != nil {
		r.Active = *in.Active
	}

	if err := s.reminders.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create reminder: %w", err)
	}
	return r, nil
}

// Update заменяет titulo, descricao и data_hora_lembrete; ativo: только если передан.
func (s *ReminderService) Update(ctx context.Context, id int64, in ReminderInput) (*model.Reminder, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	r, err := s.reminders.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "reminder", id)
	}
	r.Title = in.Title
	r.Description = in.Description
	r.RemindAt = in.RemindAt.UTC()
	if in.Active != nil {
		r.Active = *in.Active
	}

	if err := s.reminders.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("update reminder %d: %w", id, err)
	}
	return r, nil
}

// MarkNotified выставляет notificado=true и больше ничего не меняет.
func (s *ReminderService) MarkNotified(ctx context.Context, id int64) (*model.Reminder, error) {
	if err := s.reminders.SetNotified(ctx, id, true); err != nil {
		return nil, notFound(err, "reminder", id)
	}
	return s.Get(ctx, id)
}

func (s *ReminderService) SetActive(ctx context.Context, id int64, active bool) (*model.Reminder, error) {
	if err := s.reminders.SetActive(ctx, id, active); err != nil {
		return nil, notFound(err, "reminder", id)
	}
	return s.Get(ctx, id)
}

func (s *ReminderService) Delete(ctx context.Context, id int64) error {
	ok, err := s.reminders.Exists(ctx, id)
	if err := mustExist(ok, err, "reminder", id); err != nil {
		return err
	}
	if err := s.reminders.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete reminder %d: %w", id, err)
	}
	return nil
}

func (s *ReminderService) CountActive(ctx context.Context) (int64, error) {
	return s.reminders.CountActive(ctx)
}

func (s *ReminderService) CountUpcoming(ctx context.Context) (int64, error) {
	w := utils.WindowFrom(s.now(), model.UpcomingWindow)
	return s.reminders.CountDue(ctx, w.Start, w.End)
}
