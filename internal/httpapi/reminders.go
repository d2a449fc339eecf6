package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Leganyst/store-notes/internal/validate"
)

func (a *API) reminderRoutes(r chi.Router) {
	r.Get("/", a.listReminders)
	r.Post("/", a.createReminder)
	r.Get("/ativos", a.listActiveReminders)
	r.Get("/proximos", a.listUpcomingReminders)
	r.Get("/vencidos", a.listOverdueReminders)
	r.Get("/periodo", a.listRemindersBetween)
	r.Get("/count/ativos", a.countActiveReminders)
	r.Get("/count/proximos", a.countUpcomingReminders)
	r.Get("/nota/{notaId}", a.listRemindersByNote)
	r.Get("/loja/{lojaId}", a.listRemindersByStore)
	r.Get("/{id}", a.getReminder)
	r.Put("/{id}", a.updateReminder)
	r.Patch("/{id}/notificar", a.markReminderNotified)
	r.Patch("/{id}/ativo", a.setReminderActive)
	r.Delete("/{id}", a.deleteReminder)
}

func (a *API) listReminders(w http.ResponseWriter, r *http.Request) {
	rems, err := a.svc.Reminders.List(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapReminders(rems))
}

func (a *API) listRemindersByNote(w http.ResponseWriter, r *http.Request) {
	noteID, err := pathID(r, "notaId")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	rems, err := a.svc.Reminders.ListByNote(r.Context(), noteID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapReminders(rems))
}

func (a *API) listRemindersByStore(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "lojaId")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	rems, err := a.svc.Reminders.ListByStore(r.Context(), storeID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapReminders(rems))
}

func (a *API) listActiveReminders(w http.ResponseWriter, r *http.Request) {
	rems, err := a.svc.Reminders.ListActive(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapReminders(rems))
}

func (a *API) listUpcomingReminders(w http.ResponseWriter, r *http.Request) {
	rems, err := a.svc.Reminders.ListUpcoming(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapReminders(rems))
}

func (a *API) listOverdueReminders(w http.ResponseWriter, r *http.Request) {
	rems, err := a.svc.Reminders.ListOverdue(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapReminders(rems))
}

func (a *API) listRemindersBetween(w http.ResponseWriter, r *http.Request) {
	from, err := a.queryTime(r, "inicio")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	to, err := a.queryTime(r, "fim")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	rems, err := a.svc.Reminders.ListBetween(r.Context(), from, to)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapReminders(rems))
}

func (a *API) getReminder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	rem, err := a.svc.Reminders.Get(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapReminder(rem))
}

func (a *API) createReminder(w http.ResponseWriter, r *http.Request) {
	var req reminderRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	in, err := a.reminderInput(req)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	rem, err := a.svc.Reminders.Create(r.Context(), in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a.mapReminder(rem))
}

func (a *API) updateReminder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	var req reminderRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	in, err := a.reminderInput(req)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	rem, err := a.svc.Reminders.Update(r.Context(), id, in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapReminder(rem))
}

func (a *API) markReminderNotified(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	rem, err := a.svc.Reminders.MarkNotified(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapReminder(rem))
}

func (a *API) setReminderActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	raw := r.URL.Query().Get("ativo")
	active, err := strconv.ParseBool(raw)
	if err != nil {
		a.writeError(w, r, validate.Fail("ativo", "must be true or false"))
		return
	}
	rem, err := a.svc.Reminders.SetActive(r.Context(), id, active)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapReminder(rem))
}

func (a *API) deleteReminder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := a.svc.Reminders.Delete(r.Context(), id); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) countActiveReminders(w http.ResponseWriter, r *http.Request) {
	n, err := a.svc.Reminders.CountActive(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (a *API) countUpcomingReminders(w http.ResponseWriter, r *http.Request) {
	n, err := a.svc.Reminders.CountUpcoming(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}
