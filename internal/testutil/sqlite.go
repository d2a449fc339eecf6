package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"github.com/Leganyst/store-notes/internal/config"
	"github.com/Leganyst/store-notes/internal/db"
	"github.com/Leganyst/store-notes/internal/model"
)

var dbSeq atomic.Int64

// NewSQLiteDB открывает изолированную in-memory sqlite с применённой схемой.
// Одно соединение: shared-cache база живёт, пока открыт пул.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.DBConfig{
		Driver:       config.DriverSQLite,
		DSN:          fmt.Sprintf("file:notas_test_%d?mode=memory&cache=shared&_foreign_keys=1", dbSeq.Add(1)),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}

	gdb, err := db.NewGormDB(cfg)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return gdb
}
