package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Leganyst/store-notes/internal/db"
	"github.com/Leganyst/store-notes/internal/report"
	"github.com/Leganyst/store-notes/internal/repository"
	"github.com/Leganyst/store-notes/internal/service"
	"github.com/Leganyst/store-notes/internal/testutil"
)

var (
	fixedNow = time.Date(2025, 5, 20, 14, 30, 0, 0, time.UTC)
	saoPaulo = time.FixedZone("BRT", -3*60*60)
)

func newHandler(t *testing.T, gdb *gorm.DB, sx *sqlx.DB) http.Handler {
	t.Helper()
	clock := func() time.Time { return fixedNow }

	stores := repository.NewGormStoreRepository(gdb)
	categories := repository.NewGormCategoryRepository(gdb)
	contacts := repository.NewGormContactRepository(gdb)
	notes := repository.NewGormNoteRepository(gdb)
	reminders := repository.NewGormReminderRepository(gdb)

	api := NewAPI(Services{
		Stores:     service.NewStoreService(stores, categories, false),
		Categories: service.NewCategoryService(categories, stores),
		Contacts:   service.NewContactService(contacts, stores),
		Notes:      service.NewNoteService(notes, categories, clock),
		Reminders:  service.NewReminderService(reminders, notes, clock),
		Dashboard:  service.NewDashboardService(stores, categories, notes, reminders, report.NewSqlxReader(sx), clock),
	}, saoPaulo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return api.Router()
}

func newSQLiteHandler(t *testing.T) http.Handler {
	t.Helper()
	gdb := testutil.NewSQLiteDB(t)
	sx, err := db.NewSqlxDB(gdb)
	require.NoError(t, err)
	return newHandler(t, gdb, sx)
}

// call выполняет запрос и возвращает статус и тело ответа.
func call(t *testing.T, h http.Handler, method, path string, body any) (int, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code, rec.Body.Bytes()
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func TestAPI_EndToEnd(t *testing.T) {
	h := newSQLiteHandler(t)

	code, body := call(t, h, http.MethodPost, "/api/lojas", map[string]any{"nome": "Loja A"})
	require.Equal(t, http.StatusCreated, code, string(body))
	store := decode[storeResponse](t, body)
	require.NotZero(t, store.ID)

	code, body = call(t, h, http.MethodPost, "/api/categorias", map[string]any{"nome": "Bebidas", "lojaId": store.ID})
	require.Equal(t, http.StatusCreated, code, string(body))
	cat := decode[categoryResponse](t, body)

	code, _ = call(t, h, http.MethodPost, "/api/categorias", map[string]any{"nome": "bebidas", "loja": map[string]any{"id": store.ID}})
	assert.Equal(t, http.StatusConflict, code)

	code, body = call(t, h, http.MethodPost, "/api/notas", map[string]any{"titulo": "Repor estoque", "categoriaId": cat.ID})
	require.Equal(t, http.StatusCreated, code, string(body))
	note := decode[noteResponse](t, body)
	assert.Equal(t, "PENDENTE", note.Status)
	assert.Equal(t, "2025-05-20T11:30:00", note.DataNota)

	code, body = call(t, h, http.MethodPost, "/api/lembretes", map[string]any{
		"titulo":           "Ligar fornecedor",
		"dataHoraLembrete": "2025-05-20T12:30:00",
		"notaId":           note.ID,
	})
	require.Equal(t, http.StatusCreated, code, string(body))
	rem := decode[reminderResponse](t, body)
	assert.True(t, rem.Ativo)
	assert.False(t, rem.Notificado)
	assert.Equal(t, "2025-05-20T12:30:00", rem.DataHoraLembrete)

	code, body = call(t, h, http.MethodGet, "/api/notas/"+itoa(note.ID)+"/lembretes", nil)
	require.Equal(t, http.StatusOK, code, string(body))
	withRems := decode[noteWithRemindersResponse](t, body)
	require.Len(t, withRems.Lembretes, 1)
	assert.Equal(t, rem.ID, withRems.Lembretes[0].ID)

	code, body = call(t, h, http.MethodGet, "/api/lembretes/proximos", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]reminderResponse](t, body), 1)

	code, body = call(t, h, http.MethodGet, "/api/lembretes/count/proximos", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(1), decode[int64](t, body))

	code, body = call(t, h, http.MethodPatch, "/api/lembretes/"+itoa(rem.ID)+"/notificar", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decode[reminderResponse](t, body).Notificado)

	code, body = call(t, h, http.MethodGet, "/api/lembretes/ativos", nil)
	require.Equal(t, http.StatusOK, code)
	active := decode[[]reminderResponse](t, body)
	require.Len(t, active, 1)
	assert.Equal(t, rem.ID, active[0].ID)

	code, body = call(t, h, http.MethodGet, "/api/lembretes/count/ativos", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(1), decode[int64](t, body))

	code, body = call(t, h, http.MethodGet, "/api/lembretes/proximos", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]reminderResponse](t, body))

	code, body = call(t, h, http.MethodGet, "/api/dashboard/resumo", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, summaryResponse{TotalLojas: 1, TotalCategorias: 1, NotasPendentes: 1, LembretesAtivos: 1}, decode[summaryResponse](t, body))

	code, _ = call(t, h, http.MethodDelete, "/api/lojas/"+itoa(store.ID), nil)
	assert.Equal(t, http.StatusNoContent, code)
	code, _ = call(t, h, http.MethodGet, "/api/notas/"+itoa(note.ID), nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAPI_ClientErrors(t *testing.T) {
	h := newSQLiteHandler(t)

	code, body := call(t, h, http.MethodPost, "/api/categorias", map[string]any{"nome": "Orfã", "lojaId": 999})
	assert.Equal(t, http.StatusBadRequest, code, string(body))

	code, body = call(t, h, http.MethodPost, "/api/lojas", map[string]any{"nome": ""})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "nome", decode[errorResponse](t, body).Field)

	code, _ = call(t, h, http.MethodGet, "/api/notas/status/ARQUIVADA", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, h, http.MethodGet, "/api/contatos/cargo/CEO", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, h, http.MethodGet, "/api/notas/status/pending", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = call(t, h, http.MethodDelete, "/api/lembretes/12345", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = call(t, h, http.MethodGet, "/api/lojas/abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, h, http.MethodPatch, "/api/lembretes/1/ativo?ativo=talvez", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, h, http.MethodGet, "/api/dashboard/estatisticas/loja/77", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = call(t, h, http.MethodGet, "/api/notas/periodo?inicio=ontem&fim=hoje", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAPI_Contacts(t *testing.T) {
	h := newSQLiteHandler(t)

	code, body := call(t, h, http.MethodPost, "/api/lojas", map[string]any{"nome": "Loja"})
	require.Equal(t, http.StatusCreated, code)
	store := decode[storeResponse](t, body)

	contact := map[string]any{"nome": "Ana", "matricula": "T1234567", "cargo": "GERENTE", "email": "ana@loja.com", "loja": map[string]any{"id": store.ID}}
	code, body = call(t, h, http.MethodPost, "/api/contatos", contact)
	require.Equal(t, http.StatusCreated, code, string(body))
	assert.Equal(t, "GERENTE", decode[contactResponse](t, body).Cargo)

	code, _ = call(t, h, http.MethodPost, "/api/contatos", contact)
	assert.Equal(t, http.StatusConflict, code)

	contact["matricula"] = "T123456"
	code, _ = call(t, h, http.MethodPost, "/api/contatos", contact)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = call(t, h, http.MethodGet, "/api/contatos/loja/"+itoa(store.ID)+"/cargo/gerente", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]contactResponse](t, body), 1)
}

func TestAPI_UnexpectedErrorIs500(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               gormlogger.Discard,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "lojas"`).WillReturnError(errors.New("connection refused"))

	h := newHandler(t, gdb, sqlx.NewDb(sqlDB, "postgres"))
	code, body := call(t, h, http.MethodGet, "/api/lojas", nil)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "internal server error", decode[errorResponse](t, body).Error)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAPI_RequestIDAndCORS(t *testing.T) {
	h := newSQLiteHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/lojas", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/lojas", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}
