package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Leganyst/store-notes/internal/model"
	"github.com/Leganyst/store-notes/internal/validate"
)

func newNote(t *testing.T, svc *services) *model.Note {
	t.Helper()
	c := newCategory(t, svc)
	n, err := svc.notes.Create(context.Background(), NoteInput{Title: "nota", CategoryID: c.ID})
	if err != nil {
		t.Fatalf("create note: %v", err)
	}
	return n
}

func TestReminderService_CreateDefaults(t *testing.T) {
	svc := newServices(t, false)
	ctx := context.Background()
	n := newNote(t, svc)

	r, err := svc.reminders.Create(ctx, ReminderInput{Title: "ligar", RemindAt: fixedNow.Add(time.Hour), NoteID: n.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !r.Active || r.Notified {
		t.Fatalf("flags = active:%v notified:%v, want true/false", r.Active, r.Notified)
	}

	inactive := false
	r2, err := svc.reminders.Create(ctx, ReminderInput{RemindAt: fixedNow, Active: &inactive, NoteID: n.ID})
	if err != nil {
		t.Fatalf("create inactive: %v", err)
	}
	got, err := svc.reminders.Get(ctx, r2.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Active {
		t.Fatalf("explicit active=false was not persisted")
	}

	if _, err := svc.reminders.Create(ctx, ReminderInput{NoteID: n.ID}); !errors.Is(err, validate.ErrInvalid) {
		t.Fatalf("missing datetime: err = %v, want validation error", err)
	}
	if _, err := svc.reminders.Create(ctx, ReminderInput{RemindAt: fixedNow, NoteID: n.ID + 100}); !errors.Is(err, ErrMissingParent) {
		t.Fatalf("missing note: err = %v, want ErrMissingParent", err)
	}
}

func TestReminderService_UpcomingAndOverdue(t *testing.T) {
	svc := newServices(t, false)
	ctx := context.Background()
	n := newNote(t, svc)

	mk := func(title string, at time.Time) *model.Reminder {
		r, err := svc.reminders.Create(ctx, ReminderInput{Title: title, RemindAt: at, NoteID: n.ID})
		if err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
		return r
	}
	mk("soon", fixedNow.Add(2*time.Hour))
	mk("later", fixedNow.Add(48*time.Hour))
	mk("late", fixedNow.Add(-2*time.Hour))
	done := mk("done", fixedNow.Add(3*time.Hour))

	if _, err := svc.reminders.MarkNotified(ctx, done.ID); err != nil {
		t.Fatalf("mark notified: %v", err)
	}

	upcoming, err := svc.reminders.ListUpcoming(ctx)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].Title != "soon" {
		t.Fatalf("upcoming = %+v, want [soon]", upcoming)
	}

	overdue, err := svc.reminders.ListOverdue(ctx)
	if err != nil {
		t.Fatalf("overdue: %v", err)
	}
	if len(overdue) != 1 || overdue[0].Title != "late" {
		t.Fatalf("overdue = %+v, want [late]", overdue)
	}

	count, err := svc.reminders.CountUpcoming(ctx)
	if err != nil {
		t.Fatalf("count upcoming: %v", err)
	}
	if count != 1 {
		t.Fatalf("count upcoming = %d, want 1", count)
	}

	active, err := svc.reminders.CountActive(ctx)
	if err != nil {
		t.Fatalf("count active: %v", err)
	}
	// отправленное напоминание остаётся активным
	if active != 4 {
		t.Fatalf("count active = %d, want 4", active)
	}
}

func TestReminderService_Toggles(t *testing.T) {
	svc := newServices(t, false)
	ctx := context.Background()
	n := newNote(t, svc)

	r, err := svc.reminders.Create(ctx, ReminderInput{Title: "t", RemindAt: fixedNow, NoteID: n.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	off, err := svc.reminders.SetActive(ctx, r.ID, false)
	if err != nil {
		t.Fatalf("set active: %v", err)
	}
	if off.Active || off.Title != "t" {
		t.Fatalf("after SetActive(false) = %+v", off)
	}

	notified, err := svc.reminders.MarkNotified(ctx, r.ID)
	if err != nil {
		t.Fatalf("mark notified: %v", err)
	}
	if !notified.Notified || notified.Active {
		t.Fatalf("after MarkNotified = %+v", notified)
	}

	if _, err := svc.reminders.MarkNotified(ctx, r.ID+100); !errors.Is(err, ErrNotFound) {
		t.Fatalf("mark missing: err = %v, want ErrNotFound", err)
	}

	// Update без ativo сохраняет текущее значение
	up, err := svc.reminders.Update(ctx, r.ID, ReminderInput{Title: "t2", RemindAt: fixedNow.Add(time.Hour)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if up.Active {
		t.Fatalf("update without ativo re-enabled reminder")
	}
}

func TestReminderIsUpcomingBoundsAreExclusive(t *testing.T) {
	r := model.Reminder{Active: true, RemindAt: fixedNow}
	if r.IsUpcoming(fixedNow) {
		t.Fatalf("reminder at now must not be upcoming")
	}
	r.RemindAt = fixedNow.Add(model.UpcomingWindow)
	if r.IsUpcoming(fixedNow) {
		t.Fatalf("reminder at now+24h must not be upcoming")
	}
	r.RemindAt = fixedNow.Add(time.Minute)
	if !r.IsUpcoming(fixedNow) {
		t.Fatalf("reminder in a minute must be upcoming")
	}
	r.Notified = true
	if r.IsUpcoming(fixedNow) {
		t.Fatalf("notified reminder must not be upcoming")
	}
}
