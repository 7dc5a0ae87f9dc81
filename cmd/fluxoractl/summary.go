package main

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/fluxora_app/internal/core/services"
	"github.com/SscSPs/fluxora_app/internal/dto"
	"github.com/SscSPs/fluxora_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/fluxora_app/pkg/database"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newSummaryCmd(load configLoader) *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard summary of a user as JSON",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := uuid.Parse(userID); err != nil {
				return fmt.Errorf("--user must be a UUID: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
			if err != nil {
				return err
			}
			defer database.ClosePgxPool(pool)

			repos := pgsql.NewRepositoryProvider(pool)
			dashboard := services.NewDashboardService(repos.PlanningRepo, repos.ShoppingRepo, repos.ProductRepo)
			summary, err := dashboard.GetDashboard(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to build summary: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.ToDashboardResponse(summary))
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "ID of the user to summarize")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
