package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/DAAT-RI/quipu/internal/adapter/postgres"
	"github.com/DAAT-RI/quipu/internal/app"
	"github.com/DAAT-RI/quipu/internal/category"
)

func aliasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aliases",
		Short: "Stakeholder alias maintenance",
	}

	var timeout time.Duration
	backfill := &cobra.Command{
		Use:   "backfill",
		Short: "Recompute alias_normalized for every alias",
		Long: `Recompute the normalized form of every stored alias and update the rows
whose stored value differs. The run is a single transaction.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)

			registry, err := category.Default()
			if err != nil {
				return err
			}

			pool, err := postgres.NewPool(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			res, err := app.NewServices(logger, pool, registry, cfg).Aliases.Backfill(ctx)
			if err != nil {
				return fmt.Errorf("backfill: %w", err)
			}

			logger.Info("alias backfill completed",
				slog.Int("scanned", res.Scanned),
				slog.Int("updated", res.Updated),
			)
			return nil
		},
	}
	backfill.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall deadline")
	cmd.AddCommand(backfill)

	return cmd
}
