package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (a *API) categoryRoutes(r chi.Router) {
	r.Get("/", a.listCategories)
	r.Post("/", a.createCategory)
	r.Get("/buscar", a.searchCategories)
	r.Get("/count", a.countCategories)
	r.Get("/count/loja/{lojaId}", a.countCategoriesByStore)
	r.Get("/loja/{lojaId}", a.listCategoriesByStore)
	r.Get("/loja/{lojaId}/notas", a.listCategoriesByStoreWithNotes)
	r.Get("/{id}", a.getCategory)
	r.Get("/{id}/notas", a.getCategoryWithNotes)
	r.Put("/{id}", a.updateCategory)
	r.Delete("/{id}", a.deleteCategory)
}

func (a *API) listCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := a.svc.Categories.List(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapCategories(cats))
}

func (a *API) listCategoriesByStore(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "lojaId")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	cats, err := a.svc.Categories.ListByStore(r.Context(), storeID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapCategories(cats))
}

func (a *API) listCategoriesByStoreWithNotes(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "lojaId")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	cats, err := a.svc.Categories.ListByStoreWithNotes(r.Context(), storeID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	out := make([]categoryWithNotesResponse, 0, len(cats))
	for i := range cats {
		out = append(out, a.mapCategoryWithNotes(&cats[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	c, err := a.svc.Categories.Get(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapCategory(c))
}

func (a *API) getCategoryWithNotes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	c, err := a.svc.Categories.GetWithNotes(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapCategoryWithNotes(c))
}

func (a *API) createCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	c, err := a.svc.Categories.Create(r.Context(), req.input())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a.mapCategory(c))
}

func (a *API) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	c, err := a.svc.Categories.Update(r.Context(), id, req.input())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapCategory(c))
}

func (a *API) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := a.svc.Categories.Delete(r.Context(), id); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) searchCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := a.svc.Categories.Search(r.Context(), r.URL.Query().Get("nome"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapCategories(cats))
}

func (a *API) countCategories(w http.ResponseWriter, r *http.Request) {
	n, err := a.svc.Categories.Count(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (a *API) countCategoriesByStore(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "lojaId")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	n, err := a.svc.Categories.CountByStore(r.Context(), storeID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}
