package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrNotFound: целевая сущность не существует.
	ErrNotFound = errors.New("not found")
	// ErrMissingParent: указанный родитель (loja, categoria, nota) не существует.
	ErrMissingParent = errors.New("parent not found")
	// ErrConflict: нарушение уникальности.
	ErrConflict = errors.New("conflict")
)

// Clock возвращает текущее время; подменяется в тестах.
type Clock func() time.Time

// notFound переводит gorm.ErrRecordNotFound в ErrNotFound, остальные ошибки оборачивает.
func notFound(err error, what string, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("get %s %d: %w", what, id, err)
}

// mustExist возвращает ErrNotFound, если сущности нет.
func mustExist(ok bool, err error, what string, id int64) error {
	if err != nil {
		return fmt.Errorf("check %s %d: %w", what, id, err)
	}
	if !ok {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}

// parentExists возвращает ErrMissingParent, если родителя нет.
func parentExists(ok bool, err error, what string, id int64) error {
	if err != nil {
		return fmt.Errorf("check %s %d: %w", what, id, err)
	}
	if !ok {
		return fmt.Errorf("%s %d: %w", what, id, ErrMissingParent)
	}
	return nil
}

// duplicate переводит нарушение уникального индекса в ErrConflict.
func duplicate(err error, op string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", op, ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}
