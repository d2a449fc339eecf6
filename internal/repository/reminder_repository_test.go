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

func TestReminderRepository_DueAndOverdue(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	repo := NewGormReminderRepository(db)

	seedStore(t, db, "Loja", 1, 1, 0)
	notes, err := NewGormNoteRepository(db).List(ctx)
	require.NoError(t, err)
	noteID := notes[0].ID

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	add := func(title string, at time.Time, active, notified bool) {
		r := &model.Reminder{Title: title, RemindAt: at, Active: active, Notified: notified, NoteID: noteID}
		require.NoError(t, repo.Create(ctx, r))
	}
	add("now", now, true, false)
	add("in-1h", now.Add(time.Hour), true, false)
	add("edge", now.Add(model.UpcomingWindow), true, false)
	add("too-late", now.Add(model.UpcomingWindow+time.Minute), true, false)
	add("past", now.Add(-time.Hour), true, false)
	add("inactive", now.Add(time.Hour), false, false)
	add("notified", now.Add(time.Hour), true, true)
	add("past-notified", now.Add(-time.Hour), true, true)

	due, err := repo.ListDue(ctx, now, now.Add(model.UpcomingWindow), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"now", "in-1h", "edge"}, titles(due))

	limited, err := repo.ListDue(ctx, now, now.Add(model.UpcomingWindow), 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	overdue, err := repo.ListOverdue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"past"}, titles(overdue))

	active, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), active)

	count, err := repo.CountDue(ctx, now, now.Add(model.UpcomingWindow))
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestReminderRepository_Toggles(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	repo := NewGormReminderRepository(db)

	seedStore(t, db, "Loja", 1, 1, 1)
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	r := all[0]

	require.NoError(t, repo.SetActive(ctx, r.ID, false))
	require.NoError(t, repo.SetNotified(ctx, r.ID, true))

	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
	assert.True(t, got.Notified)
	assert.Equal(t, r.Title, got.Title)

	assert.ErrorIs(t, repo.SetActive(ctx, r.ID+100, true), gorm.ErrRecordNotFound)
}

func TestReminderRepository_NotifiedStaysActive(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	repo := NewGormReminderRepository(db)

	seedStore(t, db, "Loja", 1, 1, 2)
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	require.NoError(t, repo.SetNotified(ctx, all[0].ID, true))
	require.NoError(t, repo.SetActive(ctx, all[1].ID, false))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, all[0].ID, active[0].ID)
	assert.True(t, active[0].Notified)

	count, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestReminderRepository_ListByStore(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	repo := NewGormReminderRepository(db)

	a := seedStore(t, db, "A", 2, 1, 2)
	b := seedStore(t, db, "B", 1, 1, 1)

	got, err := repo.ListByStore(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, got, 4)

	total, err := repo.CountByStore(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func titles(rs []model.Reminder) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Title)
	}
	return out
}
