// Package commands implements the ipctl admin CLI.
package commands

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"iptrack/internal/infra"
)

var (
	databaseURL string
	timeout     time.Duration
	logger      zerolog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:          "ipctl",
		Short:        "Administer the IP asset tracker",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			logger = infra.NewLogger("cli").With().Str("cmd", cmd.Name()).Logger()
			if databaseURL == "" {
				databaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&databaseURL, "database-url", "", "postgres URL (default $DATABASE_URL)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "overall deadline for the command")

	root.AddCommand(migrateCmd(), seedCmd(), tokenCmd())
	return root.ExecuteContext(context.Background())
}

// openPool connects to the database named by --database-url.
func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
