package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		gormDB, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(gormDB)

		logger.Info("schema is up to date", "driver", cfg.DB.Driver)
		return nil
	},
}
