package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/MannerMan/rocket-fuel/pkg/domain/interfaces"
	"github.com/MannerMan/rocket-fuel/pkg/repository/memory"
	"github.com/MannerMan/rocket-fuel/pkg/repository/postgres"
	"github.com/MannerMan/rocket-fuel/pkg/utils/logging"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend string
	dsn     string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (postgres or memory)",
			Category:    "Database",
			Value:       "postgres",
			Sources:     cli.EnvVars("ROCKETFUEL_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "database-dsn",
			Usage:       "PostgreSQL DSN (required when using postgres backend)",
			Category:    "Database",
			Sources:     cli.EnvVars("ROCKETFUEL_DATABASE_DSN"),
			Destination: &r.dsn,
		},
	}
}

// DSN returns the configured database DSN
func (r *Repository) DSN() string {
	return r.dsn
}

// Configure initializes and returns a repository based on the configured backend.
// The caller is responsible for calling Close() on the returned repository.
func (r *Repository) Configure() (interfaces.Repository, error) {
	switch r.backend {
	case "postgres":
		if r.dsn == "" {
			return nil, goerr.New("database-dsn is required when using postgres backend")
		}
		repo, err := postgres.New(r.dsn)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize postgres repository")
		}
		logging.Default().Info("Using PostgreSQL repository")
		return repo, nil

	case "memory":
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.New("invalid repository backend", goerr.V("backend", r.backend))
	}
}
