// Package main содержит CLI сервиса заметок по lojas: HTTP API, миграции и служебные команды.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Leganyst/store-notes/internal/config"
)

var (
	// configFile задаётся флагом --config.
	configFile string

	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "notasd",
	Short: "Notas API: lojas, categorias, contatos, notas e lembretes",
	Long: `notasd serves the JSON API for stores, their categories, contacts,
notes and reminders, and provides maintenance commands for the database.

Configuration is read from the file given by --config (yaml/json/toml) and
from environment variables (db.host -> DB_HOST).`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json or toml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(backfillCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	v := config.New()
	if err := config.ReadFile(v, configFile); err != nil {
		return err
	}
	c, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = c
	logger = newLogger(c.LogLevel, c.LogFormat)
	slog.SetDefault(logger)
	return nil
}

func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
