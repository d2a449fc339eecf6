package service

import (
	"testing"
	"time"

	"github.com/Leganyst/store-notes/internal/db"
	"github.com/Leganyst/store-notes/internal/report"
	"github.com/Leganyst/store-notes/internal/repository"
	"github.com/Leganyst/store-notes/internal/testutil"
)

type services struct {
	stores     *StoreService
	categories *CategoryService
	contacts   *ContactService
	notes      *NoteService
	reminders  *ReminderService
	dashboard  *DashboardService
}

// fixedNow: "текущее" время во всех тестах пакета.
var fixedNow = time.Date(2025, 5, 20, 14, 30, 0, 0, time.UTC)

func newServices(t *testing.T, autoDefaultCategory bool) *services {
	t.Helper()

	gdb := testutil.NewSQLiteDB(t)
	sx, err := db.NewSqlxDB(gdb)
	if err != nil {
		t.Fatalf("sqlx: %v", err)
	}
	clock := func() time.Time { return fixedNow }

	storeRepo := repository.NewGormStoreRepository(gdb)
	categoryRepo := repository.NewGormCategoryRepository(gdb)
	contactRepo := repository.NewGormContactRepository(gdb)
	noteRepo := repository.NewGormNoteRepository(gdb)
	reminderRepo := repository.NewGormReminderRepository(gdb)

	return &services{
		stores:     NewStoreService(storeRepo, categoryRepo, autoDefaultCategory),
		categories: NewCategoryService(categoryRepo, storeRepo),
		contacts:   NewContactService(contactRepo, storeRepo),
		notes:      NewNoteService(noteRepo, categoryRepo, clock),
		reminders:  NewReminderService(reminderRepo, noteRepo, clock),
		dashboard: NewDashboardService(storeRepo, categoryRepo, noteRepo, reminderRepo,
			report.NewSqlxReader(sx), clock),
	}
}
