package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"iptrack/internal/adapter/repo"
	"iptrack/internal/infra"
	"iptrack/internal/seed"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the default verticals and countries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			pool, err := openPool(ctx)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer pool.Close()

			res, err := seed.Run(ctx, repo.NewRefDataRepository(infra.NewSQLRunner(pool, logger)))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seed complete: %d verticals, %d countries\n", res.Verticals, res.Countries)
			return nil
		},
	}
}
