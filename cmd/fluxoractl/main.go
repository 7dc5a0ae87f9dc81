package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/fluxora_app/internal/platform/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fluxoractl",
		Short: "Operate the Fluxora database and inspect user data",
		Long: `fluxoractl runs schema migrations against the Fluxora database and prints
per-user summaries without going through the HTTP API. It reads the same
environment variables and .env file as the server.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil)))
		},
	}
	root.AddCommand(newMigrateCmd(config.LoadConfig), newSummaryCmd(config.LoadConfig))
	return root
}

// configLoader is swapped out by tests.
type configLoader func() (*config.Config, error)
