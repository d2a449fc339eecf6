package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/Leganyst/store-notes/internal/service"
	"github.com/Leganyst/store-notes/internal/utils"
	"github.com/Leganyst/store-notes/internal/validate"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// writeError: единственное место, где ошибки превращаются в HTTP-статусы.
func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *validate.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Error(), Field: ve.Field})
	case errors.Is(err, service.ErrMissingParent):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		a.log.ErrorContext(r.Context(), "request failed",
			slog.String("request_id", RequestIDFrom(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("err", err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return validate.Fail("", fmt.Sprintf("malformed JSON body: %v", err))
	}
	return nil
}

// pathID читает целочисленный параметр маршрута.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, validate.Fail(name, fmt.Sprintf("invalid id %q", raw))
	}
	return id, nil
}

// queryTime читает обязательный query-параметр с local date-time.
func (a *API) queryTime(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, validate.Fail(name, "is required")
	}
	t, err := utils.ParseLocalDateTime(raw, a.loc)
	if err != nil {
		return time.Time{}, validate.Fail(name, fmt.Sprintf("invalid date-time %q", raw))
	}
	return t, nil
}

// parseTime разбирает необязательное поле даты из тела запроса.
func (a *API) parseTime(field, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := utils.ParseLocalDateTime(raw, a.loc)
	if err != nil {
		return nil, validate.Fail(field, fmt.Sprintf("invalid date-time %q", raw))
	}
	return &t, nil
}

// idRef: вложенная ссылка на родителя вида {"id": 1}.
type idRef struct {
	ID int64 `json:"id"`
}

// parentID: явное поле xxxId имеет приоритет над вложенным объектом.
func parentID(flat int64, nested *idRef) int64 {
	if flat != 0 {
		return flat
	}
	if nested != nil {
		return nested.ID
	}
	return 0
}
