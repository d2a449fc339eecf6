// Package report содержит агрегатные запросы для графиков dashboard.
// Запросы строятся squirrel и выполняются через sqlx поверх пула GORM.
package report

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/Leganyst/store-notes/internal/model"
)

// StoreNoteCount: число заметок одной loja.
type StoreNoteCount struct {
	StoreID int64  `db:"loja_id"`
	Name    string `db:"nome"`
	Total   int64  `db:"total"`
}

type statusCount struct {
	Status string `db:"status"`
	Total  int64  `db:"total"`
}

type Reader interface {
	// Число заметок по каждому статусу; отсутствующие статусы дают 0.
	NotesByStatus(ctx context.Context) (map[model.NoteStatus]int64, error)
	// Число заметок каждой loja, включая loja без заметок.
	NotesPerStore(ctx context.Context) ([]StoreNoteCount, error)
}

type SqlxReader struct {
	db *sqlx.DB
	sb squirrel.StatementBuilderType
}

func NewSqlxReader(db *sqlx.DB) *SqlxReader {
	return &SqlxReader{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(placeholderFor(db.DriverName())),
	}
}

func (r *SqlxReader) NotesByStatus(ctx context.Context) (map[model.NoteStatus]int64, error) {
	query, args, err := r.sb.
		Select("status", "COUNT(*) AS total").
		From("notas").
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build notes by status: %w", err)
	}

	var rows []statusCount
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("notes by status: %w", err)
	}

	out := make(map[model.NoteStatus]int64, len(model.NoteStatuses))
	for _, st := range model.NoteStatuses {
		out[st] = 0
	}
	for _, row := range rows {
		out[model.NoteStatus(row.Status)] = row.Total
	}
	return out, nil
}

func (r *SqlxReader) NotesPerStore(ctx context.Context) ([]StoreNoteCount, error) {
	query, args, err := r.sb.
		Select("lojas.id AS loja_id", "lojas.nome AS nome", "COUNT(notas.id) AS total").
		From("lojas").
		LeftJoin("categorias ON categorias.loja_id = lojas.id").
		LeftJoin("notas ON notas.categoria_id = categorias.id").
		GroupBy("lojas.id", "lojas.nome").
		OrderBy("lojas.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build notes per store: %w", err)
	}

	out := []StoreNoteCount{}
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("notes per store: %w", err)
	}
	return out, nil
}

func placeholderFor(driver string) squirrel.PlaceholderFormat {
	switch driver {
	case "pgx", "postgres":
		return squirrel.Dollar
	default:
		return squirrel.Question
	}
}
