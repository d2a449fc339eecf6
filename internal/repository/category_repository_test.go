package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Leganyst/store-notes/internal/model"
	"github.com/Leganyst/store-notes/internal/testutil"
)

func TestCategoryRepository_FindByNameInStore(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	stores := NewGormStoreRepository(db)
	repo := NewGormCategoryRepository(db)

	a := &model.Store{Name: "A"}
	b := &model.Store{Name: "B"}
	require.NoError(t, stores.Create(ctx, a))
	require.NoError(t, stores.Create(ctx, b))
	require.NoError(t, repo.Create(ctx, &model.Category{Name: "Bebidas", StoreID: a.ID}))

	got, err := repo.FindByNameInStore(ctx, "BEBIDAS", a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", got.Name)

	_, err = repo.FindByNameInStore(ctx, "bebidas", b.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCategoryRepository_DeleteRemovesNotesAndReminders(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	repo := NewGormCategoryRepository(db)

	s := seedStore(t, db, "Loja", 2, 2, 3)
	cats, err := repo.ListByStore(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, cats, 2)

	require.NoError(t, repo.Delete(ctx, cats[0].ID))

	assert.Equal(t, int64(2), countRows(t, db, &model.Note{}))
	assert.Equal(t, int64(6), countRows(t, db, &model.Reminder{}))

	total, err := repo.CountByStore(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestCategoryRepository_ListByStoreWithNotes(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	s := seedStore(t, db, "Loja", 1, 3, 0)

	got, err := NewGormCategoryRepository(db).ListByStoreWithNotes(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Notes, 3)
}
