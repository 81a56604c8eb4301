package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/MannerMan/rocket-fuel/pkg/repository/postgres"
	"github.com/MannerMan/rocket-fuel/pkg/utils/logging"
)

func cmdMigrate() *cli.Command {
	var dsn string

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Migrate database schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "database-dsn",
				Usage:       "PostgreSQL DSN (required)",
				Required:    true,
				Sources:     cli.EnvVars("ROCKETFUEL_DATABASE_DSN"),
				Destination: &dsn,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			repo, err := postgres.New(dsn)
			if err != nil {
				return goerr.Wrap(err, "failed to connect to database")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Error("failed to close repository", "error", err.Error())
				}
			}()

			logger.Info("Applying migrations")
			if err := repo.Migrate(ctx); err != nil {
				return goerr.Wrap(err, "failed to apply migrations")
			}
			logger.Info("Migrations applied successfully")

			return nil
		},
	}
}
