package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Leganyst/store-notes/internal/service"
)

func (a *API) contactRoutes(r chi.Router) {
	r.Get("/", a.listContacts)
	r.Post("/", a.createContact)
	r.Get("/cargo/{cargo}", a.listContactsByRole)
	r.Get("/loja/{lojaId}", a.listContactsByStore)
	r.Get("/loja/{lojaId}/buscar", a.searchContactsInStore)
	r.Get("/loja/{lojaId}/cargo/{cargo}", a.listContactsByStoreAndRole)
	r.Get("/{id}", a.getContact)
	r.Put("/{id}", a.updateContact)
	r.Delete("/{id}", a.deleteContact)
}

func (a *API) listContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := a.svc.Contacts.List(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapContacts(contacts))
}

func (a *API) listContactsByStore(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "lojaId")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	contacts, err := a.svc.Contacts.ListByStore(r.Context(), storeID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapContacts(contacts))
}

func (a *API) searchContactsInStore(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "lojaId")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	contacts, err := a.svc.Contacts.SearchInStore(r.Context(), storeID, r.URL.Query().Get("nome"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapContacts(contacts))
}

func (a *API) listContactsByRole(w http.ResponseWriter, r *http.Request) {
	role, err := service.ParseRole(chi.URLParam(r, "cargo"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	contacts, err := a.svc.Contacts.ListByRole(r.Context(), role)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapContacts(contacts))
}

func (a *API) listContactsByStoreAndRole(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "lojaId")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	role, err := service.ParseRole(chi.URLParam(r, "cargo"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	contacts, err := a.svc.Contacts.ListByStoreAndRole(r.Context(), storeID, role)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapContacts(contacts))
}

func (a *API) getContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	c, err := a.svc.Contacts.Get(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapContact(c))
}

func (a *API) createContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	c, err := a.svc.Contacts.Create(r.Context(), req.input())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a.mapContact(c))
}

func (a *API) updateContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	c, err := a.svc.Contacts.Update(r.Context(), id, req.input())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapContact(c))
}

func (a *API) deleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := a.svc.Contacts.Delete(r.Context(), id); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
