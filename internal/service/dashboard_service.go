package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Leganyst/store-notes/internal/model"
	"github.com/Leganyst/store-notes/internal/report"
	"github.com/Leganyst/store-notes/internal/repository"
	"github.com/Leganyst/store-notes/internal/utils"
)

const (
	recentNotesLimit     = 5
	recentRemindersLimit = 5
	recentRemindersSpan  = 7 * 24 * time.Hour
)

type Summary struct {
	Stores            int64
	Categories        int64
	PendingNotes      int64
	ActiveReminders   int64
	UpcomingReminders int64
}

type NoteStats struct {
	Pending    int64
	InProgress int64
	Done       int64
	Total      int64
}

type StoreStats struct {
	Categories int64
	Pending    int64
	InProgress int64
	Done       int64
	Notes      int64
	Reminders  int64
}

type RecentActivity struct {
	Notes     []model.Note
	Reminders []model.Reminder
}

type Charts struct {
	StatusDistribution map[model.NoteStatus]int64
	NotesPerStore      []report.StoreNoteCount
}

// DashboardService собирает сводные показатели; ничего не кэширует.
type DashboardService struct {
	stores     repository.StoreRepository
	categories repository.CategoryRepository
	notes      repository.NoteRepository
	reminders  repository.ReminderRepository
	reports    report.Reader
	now        Clock
}

func NewDashboardService(
	stores repository.StoreRepository,
	categories repository.CategoryRepository,
	notes repository.NoteRepository,
	reminders repository.ReminderRepository,
	reports report.Reader,
	now Clock,
) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{
		stores:     stores,
		categories: categories,
		notes:      notes,
		reminders:  reminders,
		reports:    reports,
		now:        now,
	}
}

func (s *DashboardService) Summary(ctx context.Context) (*Summary, error) {
	var (
		out Summary
		err error
	)
	if out.Stores, err = s.stores.Count(ctx); err != nil {
		return nil, fmt.Errorf("count stores: %w", err)
	}
	if out.Categories, err = s.categories.Count(ctx); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	if out.PendingNotes, err = s.notes.CountByStatus(ctx, model.NoteStatusPending); err != nil {
		return nil, fmt.Errorf("count pending notes: %w", err)
	}
	if out.ActiveReminders, err = s.reminders.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("count active reminders: %w", err)
	}
	w := utils.WindowFrom(s.now(), model.UpcomingWindow)
	if out.UpcomingReminders, err = s.reminders.CountDue(ctx, w.Start, w.End); err != nil {
		return nil, fmt.Errorf("count upcoming reminders: %w", err)
	}
	return &out, nil
}

func (s *DashboardService) NoteStats(ctx context.Context) (*NoteStats, error) {
	var (
		out NoteStats
		err error
	)
	if out.Pending, err = s.notes.CountByStatus(ctx, model.NoteStatusPending); err != nil {
		return nil, fmt.Errorf("count notes: %w", err)
	}
	if out.InProgress, err = s.notes.CountByStatus(ctx, model.NoteStatusInProgress); err != nil {
		return nil, fmt.Errorf("count notes: %w", err)
	}
	if out.Done, err = s.notes.CountByStatus(ctx, model.NoteStatusDone); err != nil {
		return nil, fmt.Errorf("count notes: %w", err)
	}
	if out.Total, err = s.notes.Count(ctx); err != nil {
		return nil, fmt.Errorf("count notes: %w", err)
	}
	return &out, nil
}

// StoreStats возвращает ErrNotFound, если loja не существует.
func (s *DashboardService) StoreStats(ctx context.Context, storeID int64) (*StoreStats, error) {
	ok, err := s.stores.Exists(ctx, storeID)
	if err := mustExist(ok, err, "store", storeID); err != nil {
		return nil, err
	}

	var out StoreStats
	if out.Categories, err = s.categories.CountByStore(ctx, storeID); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	if out.Pending, err = s.notes.CountByStatusAndStore(ctx, model.NoteStatusPending, storeID); err != nil {
		return nil, fmt.Errorf("count store notes: %w", err)
	}
	if out.InProgress, err = s.notes.CountByStatusAndStore(ctx, model.NoteStatusInProgress, storeID); err != nil {
		return nil, fmt.Errorf("count store notes: %w", err)
	}
	if out.Done, err = s.notes.CountByStatusAndStore(ctx, model.NoteStatusDone, storeID); err != nil {
		return nil, fmt.Errorf("count store notes: %w", err)
	}
	if out.Notes, err = s.notes.CountByStore(ctx, storeID); err != nil {
		return nil, fmt.Errorf("count store notes: %w", err)
	}
	if out.Reminders, err = s.reminders.CountByStore(ctx, storeID); err != nil {
		return nil, fmt.Errorf("count store reminders: %w", err)
	}
	return &out, nil
}

// RecentActivity: 5 последних заметок и 5 ближайших напоминаний на 7 дней вперёд.
func (s *DashboardService) RecentActivity(ctx context.Context) (*RecentActivity, error) {
	notes, err := s.notes.ListRecent(ctx, recentNotesLimit)
	if err != nil {
		return nil, fmt.Errorf("recent notes: %w", err)
	}
	w := utils.WindowFrom(s.now(), recentRemindersSpan)
	reminders, err := s.reminders.ListDue(ctx, w.Start, w.End, recentRemindersLimit)
	if err != nil {
		return nil, fmt.Errorf("next reminders: %w", err)
	}
	return &RecentActivity{Notes: notes, Reminders: reminders}, nil
}

func (s *DashboardService) Charts(ctx context.Context) (*Charts, error) {
	byStatus, err := s.reports.NotesByStatus(ctx)
	if err != nil {
		return nil, err
	}
	perStore, err := s.reports.NotesPerStore(ctx)
	if err != nil {
		return nil, err
	}
	return &Charts{StatusDistribution: byStatus, NotesPerStore: perStore}, nil
}
