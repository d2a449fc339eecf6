package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (a *API) storeRoutes(r chi.Router) {
	r.Get("/", a.listStores)
	r.Post("/", a.createStore)
	r.Get("/com-categorias", a.listStoresWithCategories)
	r.Get("/buscar", a.searchStores)
	r.Get("/buscar-endereco", a.searchStoresByAddress)
	r.Get("/count", a.countStores)
	r.Post("/criar-categorias-padrao", a.backfillDefaultCategories)
	r.Get("/{id}", a.getStore)
	r.Get("/{id}/categorias", a.getStoreWithCategories)
	r.Put("/{id}", a.updateStore)
	r.Delete("/{id}", a.deleteStore)
}

func (a *API) listStores(w http.ResponseWriter, r *http.Request) {
	stores, err := a.svc.Stores.List(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapStores(stores))
}

func (a *API) listStoresWithCategories(w http.ResponseWriter, r *http.Request) {
	stores, err := a.svc.Stores.ListWithCategories(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	out := make([]storeWithCategoriesResponse, 0, len(stores))
	for i := range stores {
		out = append(out, a.mapStoreWithCategories(&stores[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) getStore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	st, err := a.svc.Stores.Get(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapStore(st))
}

func (a *API) getStoreWithCategories(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	st, err := a.svc.Stores.GetWithCategories(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapStoreWithCategories(st))
}

func (a *API) createStore(w http.ResponseWriter, r *http.Request) {
	var req storeRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	st, err := a.svc.Stores.Create(r.Context(), req.input())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a.mapStore(st))
}

func (a *API) updateStore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	var req storeRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	st, err := a.svc.Stores.Update(r.Context(), id, req.input())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapStore(st))
}

func (a *API) deleteStore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := a.svc.Stores.Delete(r.Context(), id); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) searchStores(w http.ResponseWriter, r *http.Request) {
	stores, err := a.svc.Stores.Search(r.Context(), r.URL.Query().Get("nome"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapStores(stores))
}

func (a *API) searchStoresByAddress(w http.ResponseWriter, r *http.Request) {
	stores, err := a.svc.Stores.SearchByAddress(r.Context(), r.URL.Query().Get("endereco"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapStores(stores))
}

func (a *API) countStores(w http.ResponseWriter, r *http.Request) {
	n, err := a.svc.Stores.Count(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (a *API) backfillDefaultCategories(w http.ResponseWriter, r *http.Request) {
	n, err := a.svc.Stores.BackfillDefaultCategories(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, backfillResponse{
		Mensagem:         fmt.Sprintf("Categorias padrão criadas para %d lojas", n),
		LojasAtualizadas: n,
	})
}
