package main

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Leganyst/store-notes/internal/db"
	"github.com/Leganyst/store-notes/internal/model"
	"github.com/Leganyst/store-notes/internal/report"
	"github.com/Leganyst/store-notes/internal/repository"
	"github.com/Leganyst/store-notes/internal/service"
)

// openDB подключается к БД и прогоняет миграции моделей.
func openDB() (*gorm.DB, error) {
	gormDB, err := db.NewGormDB(&cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}
	if err := model.AutoMigrate(gormDB); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return gormDB, nil
}

func closeDB(gormDB *gorm.DB) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("close db", "error", err)
	}
}

type services struct {
	stores     *service.StoreService
	categories *service.CategoryService
	contacts   *service.ContactService
	notes      *service.NoteService
	reminders  *service.ReminderService
	dashboard  *service.DashboardService
}

func newServices(gormDB *gorm.DB) (*services, error) {
	// Репозитории (реализации на GORM).
	storeRepo := repository.NewGormStoreRepository(gormDB)
	categoryRepo := repository.NewGormCategoryRepository(gormDB)
	contactRepo := repository.NewGormContactRepository(gormDB)
	noteRepo := repository.NewGormNoteRepository(gormDB)
	reminderRepo := repository.NewGormReminderRepository(gormDB)

	// Агрегаты для графиков считаются через sqlx поверх того же пула.
	sqlxDB, err := db.NewSqlxDB(gormDB)
	if err != nil {
		return nil, err
	}
	reports := report.NewSqlxReader(sqlxDB)

	return &services{
		stores:     service.NewStoreService(storeRepo, categoryRepo, cfg.AutoDefaultCategory),
		categories: service.NewCategoryService(categoryRepo, storeRepo),
		contacts:   service.NewContactService(contactRepo, storeRepo),
		notes:      service.NewNoteService(noteRepo, categoryRepo, time.Now),
		reminders:  service.NewReminderService(reminderRepo, noteRepo, time.Now),
		dashboard:  service.NewDashboardService(storeRepo, categoryRepo, noteRepo, reminderRepo, reports, time.Now),
	}, nil
}
