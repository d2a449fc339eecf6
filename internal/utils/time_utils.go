package utils

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrInvalidDateTime  = errors.New("invalid date-time")
)

// LocalDateTimeLayout: ISO-8601 local date-time без зоны, формат ответа API.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// Допустимые входные форматы без зоны (в порядке убывания точности).
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	LocalDateTimeLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// TimeRange представляет временной интервал [Start, End].
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NormalizeTimeRange нормализует интервал:
//   - меняет местами границы, если они перепутаны;
//   - переводит обе границы в UTC (в таком виде время хранится в БД).
func NormalizeTimeRange(start, end time.Time) (TimeRange, error) {
	if start.IsZero() || end.IsZero() {
		return TimeRange{}, ErrInvalidTimeRange
	}

	// Перестановка границ при необходимости.
	if end.Before(start) {
		start, end = end, start
	}

	return TimeRange{Start: start.UTC(), End: end.UTC()}, nil
}

// WindowFrom возвращает интервал [now, now+d] в UTC.
func WindowFrom(now time.Time, d time.Duration) TimeRange {
	now = now.UTC()
	return TimeRange{Start: now, End: now.Add(d)}
}

// Contains проверяет попадание t в интервал.
// inclusive = true: границы входят в интервал.
func (tr TimeRange) Contains(t time.Time, inclusive bool) bool {
	if inclusive {
		return !t.Before(tr.Start) && !t.After(tr.End)
	}
	return t.After(tr.Start) && t.Before(tr.End)
}

// ParseLocalDateTime разбирает ISO-8601 local date-time в часовом поясе loc.
// Строки с явной зоной (RFC 3339) принимаются как есть. Результат в UTC.
func ParseLocalDateTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDateTime
	}
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDateTime
}

// FormatLocalDateTime форматирует момент как local date-time в поясе loc.
// Нулевое время даёт пустую строку.
func FormatLocalDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(LocalDateTimeLayout)
}
