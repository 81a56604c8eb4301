package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/MannerMan/rocket-fuel/pkg/cli/config"
	"github.com/MannerMan/rocket-fuel/pkg/domain/interfaces"
)

func runFlags(t *testing.T, flags []cli.Flag, action func() error, args ...string) error {
	t.Helper()

	var actionErr error
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			actionErr = action()
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...))).Required()
	return actionErr
}

func TestLoggerConfig(t *testing.T) {
	t.Run("defaults configure successfully", func(t *testing.T) {
		var cfg config.Logger
		err := runFlags(t, cfg.Flags(), func() error {
			closer, err := cfg.Configure()
			if closer != nil {
				closer()
			}
			return err
		})
		gt.NoError(t, err).Required()
	})

	t.Run("invalid level is rejected", func(t *testing.T) {
		var cfg config.Logger
		err := runFlags(t, cfg.Flags(), func() error {
			_, err := cfg.Configure()
			return err
		}, "--log-level", "loud")
		gt.Value(t, err).NotNil()
	})

	t.Run("invalid format is rejected", func(t *testing.T) {
		var cfg config.Logger
		err := runFlags(t, cfg.Flags(), func() error {
			_, err := cfg.Configure()
			return err
		}, "--log-format", "xml")
		gt.Value(t, err).NotNil()
	})
}

func TestRepositoryConfig(t *testing.T) {
	t.Run("memory backend needs no DSN", func(t *testing.T) {
		var cfg config.Repository
		var repo interfaces.Repository
		err := runFlags(t, cfg.Flags(), func() error {
			var err error
			repo, err = cfg.Configure()
			return err
		}, "--repository-backend", "memory")
		gt.NoError(t, err).Required()
		gt.Value(t, repo).NotNil()
	})

	t.Run("postgres backend requires a DSN", func(t *testing.T) {
		var cfg config.Repository
		err := runFlags(t, cfg.Flags(), func() error {
			_, err := cfg.Configure()
			return err
		}, "--repository-backend", "postgres")
		gt.Value(t, err).NotNil()
	})

	t.Run("unknown backend is rejected", func(t *testing.T) {
		var cfg config.Repository
		err := runFlags(t, cfg.Flags(), func() error {
			_, err := cfg.Configure()
			return err
		}, "--repository-backend", "etcd")
		gt.Value(t, err).NotNil()
	})
}
