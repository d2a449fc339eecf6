package utils

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, year int, month time.Month, day, hour, min int) time.Time {
	t.Helper()
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

//
// Тесты для NormalizeTimeRange
//

func TestNormalizeTimeRange_SwappedBounds(t *testing.T) {
	start := mustTime(t, 2025, 1, 1, 12, 0)
	end := mustTime(t, 2025, 1, 1, 10, 0)

	tr, err := NormalizeTimeRange(start, end)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !tr.Start.Equal(end) || !tr.End.Equal(start) {
		t.Fatalf("expected Start=%v End=%v, got %v", end, start, tr)
	}
}

func TestNormalizeTimeRange_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, loc)
	end := time.Date(2025, 1, 1, 10, 0, 0, 0, loc)

	tr, err := NormalizeTimeRange(start, end)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tr.Start.Location() != time.UTC || tr.Start.Hour() != 12 {
		t.Fatalf("expected 12:00 UTC, got %v", tr.Start)
	}
}

func TestNormalizeTimeRange_InvalidZero(t *testing.T) {
	_, err := NormalizeTimeRange(time.Time{}, time.Time{})
	if err == nil {
		t.Fatalf("expected error for zero times, got nil")
	}
}

//
// Тесты для WindowFrom / Contains
//

func TestWindowFrom_Contains(t *testing.T) {
	now := mustTime(t, 2025, 3, 10, 8, 0)
	w := WindowFrom(now, 24*time.Hour)

	cases := []struct {
		name      string
		at        time.Time
		inclusive bool
		want      bool
	}{
		{"start inclusive", now, true, true},
		{"start exclusive", now, false, false},
		{"end inclusive", now.Add(24 * time.Hour), true, true},
		{"end exclusive", now.Add(24 * time.Hour), false, false},
		{"inside", now.Add(time.Hour), false, true},
		{"before", now.Add(-time.Minute), true, false},
		{"after", now.Add(25 * time.Hour), true, false},
	}
	for _, tc := range cases {
		if got := w.Contains(tc.at, tc.inclusive); got != tc.want {
			t.Errorf("%s: Contains(%v, %v) = %v, want %v", tc.name, tc.at, tc.inclusive, got, tc.want)
		}
	}
}

//
// Тесты для ParseLocalDateTime / FormatLocalDateTime
//

func TestParseLocalDateTime_Layouts(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	want := time.Date(2025, 6, 1, 17, 30, 0, 0, time.UTC)

	inputs := []string{
		"2025-06-01T14:30:00",
		"2025-06-01T14:30",
		"2025-06-01 14:30:00",
		"2025-06-01T14:30:00.000",
		"2025-06-01T17:30:00Z",
		"2025-06-01T14:30:00-03:00",
	}
	for _, in := range inputs {
		got, err := ParseLocalDateTime(in, loc)
		if err != nil {
			t.Fatalf("ParseLocalDateTime(%q): %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseLocalDateTime(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseLocalDateTime_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "01/06/2025 14:30", "2025-13-01T00:00:00"} {
		if _, err := ParseLocalDateTime(in, time.UTC); err != ErrInvalidDateTime {
			t.Fatalf("ParseLocalDateTime(%q): expected ErrInvalidDateTime, got %v", in, err)
		}
	}
}

func TestFormatLocalDateTime(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	ts := time.Date(2025, 6, 1, 17, 30, 15, 500, time.UTC)

	if got := FormatLocalDateTime(ts, loc); got != "2025-06-01T14:30:15" {
		t.Fatalf("unexpected format: %q", got)
	}
	if got := FormatLocalDateTime(time.Time{}, loc); got != "" {
		t.Fatalf("expected empty string for zero time, got %q", got)
	}
}
