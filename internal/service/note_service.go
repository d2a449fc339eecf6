package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Leganyst/store-notes/internal/model"
	"github.com/Leganyst/store-notes/internal/repository"
	"github.com/Leganyst/store-notes/internal/utils"
	"github.com/Leganyst/store-notes/internal/validate"
)

var statusAliases = map[string]model.NoteStatus{
	"PENDING":     model.NoteStatusPending,
	"IN_PROGRESS": model.NoteStatusInProgress,
	"DONE":        model.NoteStatusDone,
}

// ParseStatus разбирает статус заметки без учёта регистра; принимает и английские синонимы.
func ParseStatus(s string) (model.NoteStatus, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	for _, st := range model.NoteStatuses {
		if string(st) == token {
			return st, nil
		}
	}
	if st, ok := statusAliases[token]; ok {
		return st, nil
	}
	return "", validate.Fail("status", fmt.Sprintf("unknown status %q", s))
}

// NoteInput: поля запроса на создание/изменение заметки.
// NoteDate и Status необязательны: при создании берутся значения по умолчанию,
// при обновлении сохраняются текущие.
type NoteInput struct {
	Title      string
	Body       string
	NoteDate   *time.Time
	Status     string
	CategoryID int64 // при обновлении игнорируется
}

func (in NoteInput) validate() (*model.NoteStatus, error) {
	if err := validate.RequiredMax("titulo", in.Title, 200); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Status) == "" {
		return nil, nil
	}
	st, err := ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

type NoteService struct {
	notes      repository.NoteRepository
	categories repository.CategoryRepository
	now        Clock
}

func NewNoteService(notes repository.NoteRepository, categories repository.CategoryRepository, now Clock) *NoteService {
	if now == nil {
		now = time.Now
	}
	return &NoteService{notes: notes, categories: categories, now: now}
}

func (s *NoteService) List(ctx context.Context) ([]model.Note, error) {
	return s.notes.List(ctx)
}

func (s *NoteService) ListByCategory(ctx context.Context, categoryID int64) ([]model.Note, error) {
	return s.notes.ListByCategory(ctx, categoryID)
}

func (s *NoteService) ListByStore(ctx context.Context, storeID int64) ([]model.Note, error) {
	return s.notes.ListByStore(ctx, storeID)
}

func (s *NoteService) Get(ctx context.Context, id int64) (*model.Note, error) {
	n, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "note", id)
	}
	return n, nil
}

func (s *NoteService) GetWithReminders(ctx context.Context, id int64) (*model.Note, error) {
	n, err := s.notes.GetByIDWithReminders(ctx, id)
	if err != nil {
		return nil, notFound(err, "note", id)
	}
	return n, nil
}

// Create требует существующую категорию. Без даты берётся текущее время, без статуса: PENDENTE.
func (s *NoteService) Create(ctx context.Context, in NoteInput) (*model.Note, error) {
	status, err := in.validate()
	if err != nil {
		return nil, err
	}

	ok, err := s.categories.Exists(ctx, in.CategoryID)
	if err := parentExists(ok, err, "category", in.CategoryID); err != nil {
		return nil, err
	}

	n := &model.Note{
		Title:      in.Title,
		Body:       in.Body,
		NoteDate:   s.now().UTC(),
		Status:     model.NoteStatusPending,
		CategoryID: in.CategoryID,
	}
	if in.NoteDate != nil && !in.NoteDate.IsZero() {
		n.NoteDate = in.NoteDate.UTC()
	}
	if status != nil {
		n.Status = *status
	}

	if err := s.notes.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return n, nil
}

// Update всегда заменяет titulo и anotacoes; data_nota и status: только если переданы.
func (s *NoteService) Update(ctx context.Context, id int64, in NoteInput) (*model.Note, error) {
	status, err := in.validate()
	if err != nil {
		return nil, err
	}

	n, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "note", id)
	}
	n.Title = in.Title
	n.Body = in.Body
	if in.NoteDate != nil && !in.NoteDate.IsZero() {
		n.NoteDate = in.NoteDate.UTC()
	}
	if status != nil {
		n.Status = *status
	}

	if err := s.notes.Update(ctx, n); err != nil {
		return nil, fmt.Errorf("update note %d: %w", id, err)
	}
	return n, nil
}

func (s *NoteService) Delete(ctx context.Context, id int64) error {
	ok, err := s.notes.Exists(ctx, id)
	if err := mustExist(ok, err, "note", id); err != nil {
		return err
	}
	if err := s.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	return nil
}

func (s *NoteService) Search(ctx context.Context, text string) ([]model.Note, error) {
	return s.notes.Search(ctx, text)
}

func (s *NoteService) ListByStatus(ctx context.Context, status model.NoteStatus) ([]model.Note, error) {
	return s.notes.ListByStatus(ctx, status)
}

func (s *NoteService) ListByStatusAndStore(ctx context.Context, status model.NoteStatus, storeID int64) ([]model.Note, error) {
	return s.notes.ListByStatusAndStore(ctx, status, storeID)
}

// ListBetween: заметки с data_nota в интервале; перепутанные границы меняются местами.
func (s *NoteService) ListBetween(ctx context.Context, from, to time.Time) ([]model.Note, error) {
	tr, err := utils.NormalizeTimeRange(from, to)
	if err != nil {
		return nil, validate.Fail("periodo", err.Error())
	}
	return s.notes.ListBetween(ctx, tr.Start, tr.End)
}

func (s *NoteService) ListWithActiveReminders(ctx context.Context) ([]model.Note, error) {
	return s.notes.ListWithActiveReminders(ctx)
}

func (s *NoteService) CountByStatus(ctx context.Context, status model.NoteStatus) (int64, error) {
	return s.notes.CountByStatus(ctx, status)
}

func (s *NoteService) CountPending(ctx context.Context) (int64, error) {
	return s.notes.CountByStatus(ctx, model.NoteStatusPending)
}
