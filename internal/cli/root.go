package cli

import (
	"fmt"
	"os"

	"driveway_xpto/internal/config"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the driveway command tree.
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "driveway",
		Short: "Driveway Service - contractor workflow backend",
		Long: `Driveway Service tracks clients, driveway requests, quotes and their
negotiations, work orders and bills for a driveway contractor.

Run "serve" to start the HTTP API, "migrate" to manage the MySQL schema and
"report" to print a business report to the terminal.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./deploy/config.yaml, ./config.yaml or $HOME/.driveway/config.yaml)")

	load := func() (*config.Config, error) {
		if configPath != "" {
			return config.LoadConfigFile(configPath)
		}
		return config.LoadConfig()
	}

	root.AddCommand(
		newServeCmd(load),
		newMigrateCmd(load),
		newReportCmd(load),
	)
	return root
}

type configLoader func() (*config.Config, error)

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
