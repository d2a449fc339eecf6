package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (a *API) dashboardRoutes(r chi.Router) {
	r.Get("/resumo", a.dashboardSummary)
	r.Get("/estatisticas/notas", a.dashboardNoteStats)
	r.Get("/estatisticas/loja/{lojaId}", a.dashboardStoreStats)
	r.Get("/atividades-recentes", a.dashboardRecentActivity)
	r.Get("/graficos", a.dashboardCharts)
}

func (a *API) dashboardSummary(w http.ResponseWriter, r *http.Request) {
	s, err := a.svc.Dashboard.Summary(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{
		TotalLojas:        s.Stores,
		TotalCategorias:   s.Categories,
		NotasPendentes:    s.PendingNotes,
		LembretesAtivos:   s.ActiveReminders,
		LembretesProximos: s.UpcomingReminders,
	})
}

func (a *API) dashboardNoteStats(w http.ResponseWriter, r *http.Request) {
	s, err := a.svc.Dashboard.NoteStats(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, noteStatsResponse{
		Pendentes:   s.Pending,
		EmAndamento: s.InProgress,
		Concluidas:  s.Done,
		Total:       s.Total,
	})
}

func (a *API) dashboardStoreStats(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "lojaId")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	s, err := a.svc.Dashboard.StoreStats(r.Context(), storeID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, storeStatsResponse{
		TotalCategorias:  s.Categories,
		NotasPendentes:   s.Pending,
		NotasEmAndamento: s.InProgress,
		NotasConcluidas:  s.Done,
		TotalNotas:       s.Notes,
		TotalLembretes:   s.Reminders,
	})
}

func (a *API) dashboardRecentActivity(w http.ResponseWriter, r *http.Request) {
	act, err := a.svc.Dashboard.RecentActivity(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recentActivityResponse{
		UltimasNotas:      a.mapNotes(act.Notes),
		ProximosLembretes: a.mapReminders(act.Reminders),
	})
}

func (a *API) dashboardCharts(w http.ResponseWriter, r *http.Request) {
	c, err := a.svc.Dashboard.Charts(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCharts(c))
}
