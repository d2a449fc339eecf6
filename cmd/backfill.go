package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backfillCmd = &cobra.Command{
	Use:   "backfill-categories",
	Short: `Give every store without categories a default "Geral" category`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		gormDB, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(gormDB)

		svc, err := newServices(gormDB)
		if err != nil {
			return err
		}

		n, err := svc.stores.BackfillDefaultCategories(cmd.Context())
		if err != nil {
			return err
		}
		logger.Info("default categories backfilled", "stores", n)
		fmt.Fprintf(cmd.OutOrStdout(), "%d store(s) updated\n", n)
		return nil
	},
}
