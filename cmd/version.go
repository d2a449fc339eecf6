package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version подставляется при сборке: -ldflags "-X main.version=..."
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	// конфиг не нужен
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "notasd %s\n", version)
	},
}
