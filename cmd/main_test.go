package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestVersion(t *testing.T) {
	got := execute(t, "version")
	if !strings.HasPrefix(got, "notasd ") {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestMigrateAndBackfill_SQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", filepath.Join(t.TempDir(), "notas.db")+"?_foreign_keys=1")
	t.Setenv("LOG_LEVEL", "error")

	execute(t, "migrate")
	if cfg == nil || cfg.DB.Driver != "sqlite" {
		t.Fatalf("config not loaded: %+v", cfg)
	}

	got := execute(t, "backfill-categories")
	if !strings.Contains(got, "0 store(s) updated") {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestNewLogger(t *testing.T) {
	l := newLogger("debug", "json")
	if _, ok := l.Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected json handler, got %T", l.Handler())
	}
	if !l.Enabled(t.Context(), slog.LevelDebug) {
		t.Fatal("debug level must be enabled")
	}

	l = newLogger("nonsense", "text")
	if _, ok := l.Handler().(*slog.TextHandler); !ok {
		t.Fatalf("expected text handler, got %T", l.Handler())
	}
	if l.Enabled(t.Context(), slog.LevelDebug) {
		t.Fatal("unknown level falls back to info")
	}
}
