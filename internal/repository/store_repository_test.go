package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Leganyst/store-notes/internal/model"
	"github.com/Leganyst/store-notes/internal/testutil"
)

// seedStore создаёт loja с n категориями, m заметками в каждой и k напоминаниями у каждой заметки.
func seedStore(t *testing.T, db *gorm.DB, name string, n, m, k int) *model.Store {
	t.Helper()
	ctx := context.Background()

	store := &model.Store{Name: name}
	require.NoError(t, NewGormStoreRepository(db).Create(ctx, store))

	categories := NewGormCategoryRepository(db)
	notes := NewGormNoteRepository(db)
	reminders := NewGormReminderRepository(db)
	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < n; i++ {
		c := &model.Category{Name: name + " cat", StoreID: store.ID}
		require.NoError(t, categories.Create(ctx, c))
		for j := 0; j < m; j++ {
			note := &model.Note{Title: "nota", NoteDate: at, Status: model.NoteStatusPending, CategoryID: c.ID}
			require.NoError(t, notes.Create(ctx, note))
			for l := 0; l < k; l++ {
				rem := &model.Reminder{Title: "r", RemindAt: at.Add(time.Duration(l) * time.Hour), Active: true, NoteID: note.ID}
				require.NoError(t, reminders.Create(ctx, rem))
			}
		}
	}
	return store
}

func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}

func TestStoreRepository_DeleteCascades(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	repo := NewGormStoreRepository(db)

	const n, m, k = 2, 3, 2
	target := seedStore(t, db, "Loja A", n, m, k)
	other := seedStore(t, db, "Loja B", 1, 1, 1)

	require.NoError(t, NewGormContactRepository(db).Create(ctx, &model.Contact{
		Name: "Ana", Registration: "T0000001", Role: model.RoleManager, StoreID: target.ID,
	}))

	beforeCategories := countRows(t, db, &model.Category{})
	beforeNotes := countRows(t, db, &model.Note{})
	beforeReminders := countRows(t, db, &model.Reminder{})

	require.NoError(t, repo.Delete(ctx, target.ID))

	removed := (beforeCategories - countRows(t, db, &model.Category{})) +
		(beforeNotes - countRows(t, db, &model.Note{})) +
		(beforeReminders - countRows(t, db, &model.Reminder{}))
	assert.Equal(t, int64(n*m+n+n*m*k), removed)
	assert.Zero(t, countRows(t, db, &model.Contact{}))

	ok, err := repo.Exists(ctx, target.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Exists(ctx, other.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(1), countRows(t, db, &model.Reminder{}))
}

func TestStoreRepository_SearchIsCaseInsensitive(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	repo := NewGormStoreRepository(db)

	require.NoError(t, repo.Create(ctx, &model.Store{Name: "Mercado Central", Address: "Rua das Flores, 10"}))
	require.NoError(t, repo.Create(ctx, &model.Store{Name: "Padaria", Address: "Av. Brasil, 200"}))

	got, err := repo.SearchByName(ctx, "CENTRAL")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mercado Central", got[0].Name)

	got, err = repo.SearchByAddress(ctx, "brasil")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Padaria", got[0].Name)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestStoreRepository_UpdateKeepsCreatedAt(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	repo := NewGormStoreRepository(db)

	s := &model.Store{Name: "Loja"}
	require.NoError(t, repo.Create(ctx, s))
	created := s.CreatedAt

	s.Name = "Loja Nova"
	s.CreatedAt = time.Time{}
	require.NoError(t, repo.Update(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Loja Nova", got.Name)
	assert.True(t, got.CreatedAt.Equal(created), "created-at changed: %v -> %v", created, got.CreatedAt)
	assert.False(t, got.UpdatedAt.Before(created))
}

func TestStoreRepository_GetByIDWithCategories(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	s := seedStore(t, db, "Loja", 2, 0, 0)

	got, err := NewGormStoreRepository(db).GetByIDWithCategories(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, got.Categories, 2)

	_, err = NewGormStoreRepository(db).GetByID(ctx, s.ID+100)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStoreRepository_SearchTreatsWildcardsLiterally(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	repo := NewGormStoreRepository(db)

	require.NoError(t, repo.Create(ctx, &model.Store{Name: "Mercado 100% Natural"}))
	require.NoError(t, repo.Create(ctx, &model.Store{Name: "Loja_Centro"}))
	require.NoError(t, repo.Create(ctx, &model.Store{Name: "LojaXCentro!"}))

	got, err := repo.SearchByName(ctx, "%")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mercado 100% Natural", got[0].Name)

	got, err = repo.SearchByName(ctx, "a_c")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Loja_Centro", got[0].Name)

	got, err = repo.SearchByName(ctx, "!")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "LojaXCentro!", got[0].Name)
}

func TestStoreRepository_CreateWithCategory(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	repo := NewGormStoreRepository(db)

	s := &model.Store{Name: "Loja"}
	c := &model.Category{Name: model.DefaultCategoryName}
	require.NoError(t, repo.CreateWithCategory(ctx, s, c))
	assert.Equal(t, s.ID, c.StoreID)

	got, err := repo.GetByIDWithCategories(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, c.ID, got.Categories[0].ID)

	// повтор первичного ключа категории: loja тоже не сохраняется
	err = repo.CreateWithCategory(ctx, &model.Store{Name: "Outra"}, &model.Category{ID: c.ID, Name: "Dup"})
	require.Error(t, err)
	assert.Equal(t, int64(1), countRows(t, db, &model.Store{}))
	assert.Equal(t, int64(1), countRows(t, db, &model.Category{}))
}
