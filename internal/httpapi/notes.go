package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Leganyst/store-notes/internal/model"
	"github.com/Leganyst/store-notes/internal/service"
)

func (a *API) noteRoutes(r chi.Router) {
	r.Get("/", a.listNotes)
	r.Post("/", a.createNote)
	r.Get("/buscar", a.searchNotes)
	r.Get("/periodo", a.listNotesBetween)
	r.Get("/com-lembretes-ativos", a.listNotesWithActiveReminders)
	r.Get("/count/pendentes", a.countPendingNotes)
	r.Get("/count/status/{status}", a.countNotesByStatus)
	r.Get("/categoria/{categoriaId}", a.listNotesByCategory)
	r.Get("/loja/{lojaId}", a.listNotesByStore)
	r.Get("/status/{status}", a.listNotesByStatus)
	r.Get("/status/{status}/loja/{lojaId}", a.listNotesByStatusAndStore)
	r.Get("/{id}", a.getNote)
	r.Get("/{id}/lembretes", a.getNoteWithReminders)
	r.Put("/{id}", a.updateNote)
	r.Delete("/{id}", a.deleteNote)
}

func pathStatus(r *http.Request) (model.NoteStatus, error) {
	return service.ParseStatus(chi.URLParam(r, "status"))
}

func (a *API) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := a.svc.Notes.List(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapNotes(notes))
}

func (a *API) listNotesByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoriaId")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	notes, err := a.svc.Notes.ListByCategory(r.Context(), categoryID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapNotes(notes))
}

func (a *API) listNotesByStore(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "lojaId")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	notes, err := a.svc.Notes.ListByStore(r.Context(), storeID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapNotes(notes))
}

func (a *API) getNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	n, err := a.svc.Notes.Get(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapNote(n))
}

func (a *API) getNoteWithReminders(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	n, err := a.svc.Notes.GetWithReminders(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapNoteWithReminders(n))
}

func (a *API) createNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	in, err := a.noteInput(req)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	n, err := a.svc.Notes.Create(r.Context(), in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a.mapNote(n))
}

func (a *API) updateNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	in, err := a.noteInput(req)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	n, err := a.svc.Notes.Update(r.Context(), id, in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapNote(n))
}

func (a *API) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := a.svc.Notes.Delete(r.Context(), id); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) searchNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := a.svc.Notes.Search(r.Context(), r.URL.Query().Get("texto"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapNotes(notes))
}

func (a *API) listNotesByStatus(w http.ResponseWriter, r *http.Request) {
	status, err := pathStatus(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	notes, err := a.svc.Notes.ListByStatus(r.Context(), status)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapNotes(notes))
}

func (a *API) listNotesByStatusAndStore(w http.ResponseWriter, r *http.Request) {
	status, err := pathStatus(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	storeID, err := pathID(r, "lojaId")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	notes, err := a.svc.Notes.ListByStatusAndStore(r.Context(), status, storeID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapNotes(notes))
}

func (a *API) listNotesBetween(w http.ResponseWriter, r *http.Request) {
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
	notes, err := a.svc.Notes.ListBetween(r.Context(), from, to)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapNotes(notes))
}

func (a *API) listNotesWithActiveReminders(w http.ResponseWriter, r *http.Request) {
	notes, err := a.svc.Notes.ListWithActiveReminders(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapNotes(notes))
}

func (a *API) countPendingNotes(w http.ResponseWriter, r *http.Request) {
	n, err := a.svc.Notes.CountPending(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (a *API) countNotesByStatus(w http.ResponseWriter, r *http.Request) {
	status, err := pathStatus(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	n, err := a.svc.Notes.CountByStatus(r.Context(), status)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}
