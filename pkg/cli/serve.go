package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/MannerMan/rocket-fuel/pkg/cli/config"
	httpctrl "github.com/MannerMan/rocket-fuel/pkg/controller/http"
	"github.com/MannerMan/rocket-fuel/pkg/service/notify"
	"github.com/MannerMan/rocket-fuel/pkg/usecase"
	"github.com/MannerMan/rocket-fuel/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var baseURL string
	var repoCfg config.Repository
	var slackCfg config.Slack
	var authCfg config.Auth

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("ROCKETFUEL_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "Base URL for answer links in notifications (e.g. https://rocket-fuel.example.com)",
			Sources:     cli.EnvVars("ROCKETFUEL_BASE_URL"),
			Destination: &baseURL,
		},
	}

	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, authCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			var ucOpts []usecase.Option
			if slackCfg.IsConfigured() {
				chat, err := slackCfg.Configure()
				if err != nil {
					return goerr.Wrap(err, "failed to initialize slack service")
				}
				ucOpts = append(ucOpts, usecase.WithNotifier(notify.New(repo, chat, baseURL)))
				logging.Default().Info("Slack notifications enabled", "base_url", baseURL)
			} else {
				logging.Default().Info("Slack Bot Token not configured, answer notifications disabled")
			}

			uc := usecase.New(repo, ucOpts...)

			verifier, err := authCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure authentication")
			}

			handler := httpctrl.New(uc, httpctrl.WithVerifier(verifier))
			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
