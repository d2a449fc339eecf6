package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Leganyst/store-notes/internal/model"
)

// ErrInvalid: общий признак ошибки валидации входных данных.
var ErrInvalid = errors.New("validation failed")

// ValidationError описывает конкретное нарушенное правило.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is позволяет проверять ошибку через errors.Is(err, ErrInvalid).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Fail создаёт ValidationError.
func Fail(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Required: строка не пустая и не состоит из одних пробелов.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return Fail(field, "is required")
	}
	return nil
}

// MaxLen: длина в символах (не байтах) не превышает max.
func MaxLen(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return Fail(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return nil
}

// RequiredMax: Required + MaxLen.
func RequiredMax(field, value string, max int) error {
	if err := Required(field, value); err != nil {
		return err
	}
	return MaxLen(field, value, max)
}

// Registration проверяет формат matricula: "T" и ровно 7 цифр, регистр важен.
func Registration(value string) error {
	if value == "" {
		return Fail("matricula", "is required")
	}
	if !model.RegistrationPattern.MatchString(value) {
		return Fail("matricula", "must match T followed by 7 digits")
	}
	return nil
}

// First возвращает первую ненулевую ошибку.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
