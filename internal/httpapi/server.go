// Package httpapi: JSON/REST-интерфейс поверх сервисов.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/Leganyst/store-notes/internal/service"
)

// Services: зависимости обработчиков.
type Services struct {
	Stores     *service.StoreService
	Categories *service.CategoryService
	Contacts   *service.ContactService
	Notes      *service.NoteService
	Reminders  *service.ReminderService
	Dashboard  *service.DashboardService
}

type API struct {
	svc Services
	loc *time.Location
	log *slog.Logger
}

// NewAPI; loc: часовой пояс, в котором клиент видит и передаёт даты.
func NewAPI(svc Services, loc *time.Location, log *slog.Logger) *API {
	if loc == nil {
		loc = time.UTC
	}
	return &API{svc: svc, loc: loc, log: log}
}

// Router собирает chi-маршрутизатор со всеми middleware и маршрутами /api.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(logRequests(a.log))
	r.Use(recoverPanics(a.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/lojas", a.storeRoutes)
		r.Route("/categorias", a.categoryRoutes)
		r.Route("/contatos", a.contactRoutes)
		r.Route("/notas", a.noteRoutes)
		r.Route("/lembretes", a.reminderRoutes)
		r.Route("/dashboard", a.dashboardRoutes)
	})
	return r
}
